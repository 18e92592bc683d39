package models

// Risk level values attached to catalog records, ordered by severity.
const (
	RiskSafe     = "safe"
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
	RiskSevere   = "severe"
)

// ValidRiskLevels contains all valid risk level values.
var ValidRiskLevels = []string{RiskSafe, RiskLow, RiskModerate, RiskHigh, RiskSevere}

// IngredientRecord is one entry in the ingredient risk catalog. Name is the
// canonical lower-case lookup key. AffectedSkinTypes may contain the
// SkinTypeAll sentinel. Category is the grouping matched against profile
// allergies ("fragrance", "sulfate", "paraben", ...).
type IngredientRecord struct {
	Name              string   `json:"name"`
	RiskLevel         string   `json:"risk_level"`
	Concerns          []string `json:"concerns"`
	AffectedSkinTypes []string `json:"affected_skin_types"`
	Category          string   `json:"category"`
}

// AffectsSkinType reports whether the record applies to the given skin type,
// either directly or through the "all" sentinel.
func (r *IngredientRecord) AffectsSkinType(skinType string) bool {
	for _, t := range r.AffectedSkinTypes {
		if t == skinType || t == SkinTypeAll {
			return true
		}
	}
	return false
}
