package services

import (
	"fmt"
	"strings"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/catalog"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/models"
)

// riskScores maps catalog risk levels to their base numeric score.
var riskScores = map[string]int{
	models.RiskSafe:     0,
	models.RiskLow:      1,
	models.RiskModerate: 2,
	models.RiskHigh:     3,
	models.RiskSevere:   4,
}

// sensitivityMultipliers scales the score when an ingredient affects the
// profile's skin type. Applied only in that case, never unconditionally.
var sensitivityMultipliers = map[string]float64{
	models.SensitivityNone:     1.0,
	models.SensitivityMild:     1.3,
	models.SensitivityModerate: 1.6,
	models.SensitivitySevere:   2.0,
}

// allergenBonus is added to the score when the record's category matches a
// declared allergy.
const allergenBonus = 2

// cautionThreshold and notRecommendedThreshold are the score cut-offs for
// the caution and not_recommended verdicts when no override fires.
const (
	cautionThreshold        = 2
	notRecommendedThreshold = 4
)

// Scorer evaluates a single ingredient name against a skin profile.
type Scorer struct {
	catalog *catalog.Catalog
}

// NewScorer creates a scorer backed by the given catalog.
func NewScorer(c *catalog.Catalog) *Scorer {
	return &Scorer{catalog: c}
}

// NormalizeAllergies lower-cases each allergy and strips one trailing "s"
// ("parabens" -> "paraben"). Normalization is idempotent for already
// singular terms.
func NormalizeAllergies(allergies []string) map[string]struct{} {
	normalized := make(map[string]struct{}, len(allergies))
	for _, a := range allergies {
		normalized[strings.TrimSuffix(strings.ToLower(a), "s")] = struct{}{}
	}
	return normalized
}

// Score evaluates one ingredient against the profile and returns its
// verdict. An allergy match or skin-type applicability forces
// not_recommended regardless of the numeric score; the score only decides
// the verdict when neither override fires. Unknown ingredients resolve to
// the zero-risk default record and can never trip an override.
func (s *Scorer) Score(ingredientName string, profile models.SkinProfile) models.IngredientAnalysis {
	record, found := s.catalog.Lookup(ingredientName)
	if !found {
		record = catalog.DefaultRecord()
	}

	allergies := NormalizeAllergies(profile.Allergies)
	_, isAllergen := allergies[strings.ToLower(record.Category)]
	if record.Category == "" {
		isAllergen = false
	}

	affectsSkinType := record.AffectsSkinType(profile.SkinType)
	score := numericScore(record, profile.Sensitivity, isAllergen, affectsSkinType)

	var status, reason string
	switch {
	case isAllergen || affectsSkinType || score >= notRecommendedThreshold:
		status = models.StatusNotRecommended
		switch {
		case isAllergen:
			reason = "Known allergen for you"
		case affectsSkinType:
			reason = fmt.Sprintf("Unsuitable for %s skin", profile.SkinType)
		default:
			reason = fmt.Sprintf("High risk for %s skin with %s sensitivity", profile.SkinType, profile.Sensitivity)
		}
	case score >= cautionThreshold:
		status = models.StatusCaution
		if len(record.Concerns) > 0 {
			reason = fmt.Sprintf("May cause %s", strings.Join(firstN(record.Concerns, 2), ", "))
		} else {
			reason = "Potential irritation or sensitivity"
		}
	default:
		status = models.StatusSafe
		reason = "Low risk based on your profile"
	}

	return models.IngredientAnalysis{
		Name:      ingredientName,
		RiskLevel: record.RiskLevel,
		Status:    status,
		Concerns:  record.Concerns,
		Reason:    reason,
		Category:  strings.ToLower(record.Category),
		IsUnsafe:  status != models.StatusSafe,
	}
}

// numericScore computes the raw risk score for a record under the given
// sensitivity. The sensitivity multiplier applies only when the ingredient
// affects the profile's skin type, and the result truncates toward zero.
func numericScore(record models.IngredientRecord, sensitivity string, isAllergen, affectsSkinType bool) int {
	score := riskScores[record.RiskLevel]
	if isAllergen {
		score += allergenBonus
	}
	if affectsSkinType {
		multiplier := sensitivityMultipliers[sensitivity]
		if multiplier == 0 {
			multiplier = 1.0
		}
		score = int(float64(score) * multiplier)
	}
	return score
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
