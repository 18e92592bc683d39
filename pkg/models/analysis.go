package models

// Per-ingredient verdict values.
const (
	StatusSafe           = "safe"
	StatusCaution        = "caution"
	StatusNotRecommended = "not_recommended"
)

// IngredientAnalysis is the verdict for a single ingredient against one
// profile. Name is reported as supplied by the caller, not normalized.
type IngredientAnalysis struct {
	Name      string   `json:"name"`
	RiskLevel string   `json:"risk_level"`
	Status    string   `json:"status"`
	Concerns  []string `json:"concerns"`
	Reason    string   `json:"reason"`
	Category  string   `json:"category"`
	IsUnsafe  bool     `json:"is_unsafe"`
}

// ProductAnalysis is the aggregate verdict for one product. FlaggedIngredients
// holds every non-safe analysis in input order; SafeIngredients is truncated
// to the first five safe analyses.
type ProductAnalysis struct {
	OverallSafety       string               `json:"overall_safety"`
	IsSafe              bool                 `json:"is_safe"`
	Recommendation      string               `json:"recommendation"`
	Explanation         string               `json:"llm_explanation"`
	TotalIngredients    int                  `json:"total_ingredients"`
	FlaggedIngredients  []IngredientAnalysis `json:"flagged_ingredients"`
	SafeIngredients     []IngredientAnalysis `json:"safe_ingredients"`
	AnalysisTimestamp   string               `json:"analysis_timestamp"`
	NotRecommendedCount int                  `json:"not_recommended_count"`
	CautionCount        int                  `json:"caution_count"`
	AnalyzedIngredients []IngredientAnalysis `json:"analyzed_ingredients"`
}
