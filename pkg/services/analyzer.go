package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/llm"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/models"
)

// maxSafeIngredients caps how many safe analyses are reported separately.
const maxSafeIngredients = 5

// maxExplanationLen is the sanity bound on provider output; anything longer
// is replaced with the local fallback sentence.
const maxExplanationLen = 2000

// fallbackExplanation substitutes for the provider when it fails outright.
const fallbackExplanation = "Unable to generate detailed explanation at this time."

// ProductAnalyzer parses an ingredient list, scores every entry and folds
// the per-ingredient verdicts into one product-level verdict.
type ProductAnalyzer struct {
	scorer         *Scorer
	provider       llm.ExplanationProvider
	explainTimeout time.Duration
	logger         *zap.Logger
}

// NewProductAnalyzer creates an analyzer. explainTimeout bounds the
// explanation provider call; zero means 20 seconds.
func NewProductAnalyzer(scorer *Scorer, provider llm.ExplanationProvider, explainTimeout time.Duration, logger *zap.Logger) *ProductAnalyzer {
	if explainTimeout <= 0 {
		explainTimeout = 20 * time.Second
	}
	return &ProductAnalyzer{
		scorer:         scorer,
		provider:       provider,
		explainTimeout: explainTimeout,
		logger:         logger.Named("analyzer"),
	}
}

// ParseIngredients splits a raw ingredient string on commas and semicolons,
// trims each token and drops empty ones. Order is preserved and duplicates
// are kept.
func ParseIngredients(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})

	ingredients := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	return ingredients
}

// Analyze scores every ingredient in the raw string against the profile
// and assembles the product-level verdict. It never fails: unknown
// ingredients default to safe, an empty ingredient string yields a
// trivially safe result, and explanation provider errors degrade to a
// fallback sentence.
func (a *ProductAnalyzer) Analyze(ctx context.Context, profile models.SkinProfile, rawIngredients string) models.ProductAnalysis {
	ingredients := ParseIngredients(rawIngredients)

	analyzed := make([]models.IngredientAnalysis, 0, len(ingredients))
	for _, name := range ingredients {
		analyzed = append(analyzed, a.scorer.Score(name, profile))
	}

	flagged := make([]models.IngredientAnalysis, 0)
	safe := make([]models.IngredientAnalysis, 0)
	unsafeNames := make([]string, 0)
	notRecommendedCount := 0
	cautionCount := 0

	for _, ing := range analyzed {
		switch ing.Status {
		case models.StatusNotRecommended:
			notRecommendedCount++
			flagged = append(flagged, ing)
			unsafeNames = append(unsafeNames, ing.Name)
		case models.StatusCaution:
			cautionCount++
			flagged = append(flagged, ing)
		default:
			safe = append(safe, ing)
		}
	}

	overall, recommendation := overallSafety(notRecommendedCount, cautionCount)
	explanation := a.explain(ctx, profile, ingredients, unsafeNames)

	if len(safe) > maxSafeIngredients {
		safe = safe[:maxSafeIngredients]
	}

	return models.ProductAnalysis{
		OverallSafety:       overall,
		IsSafe:              overall == models.StatusSafe,
		Recommendation:      recommendation,
		Explanation:         explanation,
		TotalIngredients:    len(ingredients),
		FlaggedIngredients:  flagged,
		SafeIngredients:     safe,
		AnalysisTimestamp:   time.Now().UTC().Format(time.RFC3339),
		NotRecommendedCount: notRecommendedCount,
		CautionCount:        cautionCount,
		AnalyzedIngredients: analyzed,
	}
}

// overallSafety reduces the status counts to the product verdict and its
// recommendation text.
func overallSafety(notRecommendedCount, cautionCount int) (string, string) {
	switch {
	case notRecommendedCount > 0:
		return models.StatusNotRecommended, fmt.Sprintf(
			"This product contains %d high-risk ingredient(s) that may cause adverse reactions. "+
				"We strongly recommend avoiding this product and choosing alternatives without these ingredients.",
			notRecommendedCount)
	case cautionCount >= 3:
		return models.StatusCaution, fmt.Sprintf(
			"This product contains %d ingredients that require caution. "+
				"We recommend patch testing on a small area before full application and monitoring for any adverse reactions.",
			cautionCount)
	case cautionCount > 0:
		return models.StatusCaution, fmt.Sprintf(
			"This product contains %d ingredient(s) that may require caution. "+
				"Consider patch testing and use as directed.",
			cautionCount)
	default:
		return models.StatusSafe,
			"This product appears safe for your skin type and profile. No problematic ingredients detected."
	}
}

// explain requests supplementary text from the provider under a bounded
// timeout. Provider panics, empty output and oversized output all degrade
// to the fallback sentence; the analysis itself always succeeds.
func (a *ProductAnalyzer) explain(ctx context.Context, profile models.SkinProfile, ingredients, unsafeNames []string) (explanation string) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Explanation provider panicked", zap.Any("panic", r))
			explanation = fallbackExplanation
		}
	}()

	explainCtx, cancel := context.WithTimeout(ctx, a.explainTimeout)
	defer cancel()

	explanation = strings.TrimSpace(a.provider.Explain(explainCtx, profile.SkinType, profile.Sensitivity, ingredients, unsafeNames))
	if explanation == "" || len(explanation) > maxExplanationLen {
		a.logger.Warn("Explanation provider returned malformed output, using fallback",
			zap.Int("length", len(explanation)))
		return fallbackExplanation
	}
	return explanation
}
