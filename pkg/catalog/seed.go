package catalog

import "github.com/dermasafe-inc/dermasafe-engine/pkg/models"

// seedRecords is the built-in risk catalog. Order matters: Lookup's
// partial-match scan walks this slice front to back, so more specific keys
// must stay ahead of the generic keys they contain.
var seedRecords = []models.IngredientRecord{
	// Fragrances and perfumes
	{
		Name:              "fragrance",
		RiskLevel:         models.RiskHigh,
		Concerns:          []string{"allergic reactions", "irritation", "sensitivity"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive, models.SkinTypeDry},
		Category:          "fragrance",
	},
	{
		Name:              "parfum",
		RiskLevel:         models.RiskHigh,
		Concerns:          []string{"allergic reactions", "irritation", "sensitivity"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive, models.SkinTypeDry},
		Category:          "fragrance",
	},

	// Alcohols
	{
		Name:              "alcohol denat",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"dryness", "irritation", "barrier disruption"},
		AffectedSkinTypes: []string{models.SkinTypeDry, models.SkinTypeSensitive},
		Category:          "alcohol",
	},
	{
		Name:              "denatured alcohol",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"dryness", "irritation", "barrier disruption"},
		AffectedSkinTypes: []string{models.SkinTypeDry, models.SkinTypeSensitive},
		Category:          "alcohol",
	},
	{
		Name:              "ethanol",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"dryness", "irritation"},
		AffectedSkinTypes: []string{models.SkinTypeDry, models.SkinTypeSensitive},
		Category:          "alcohol",
	},

	// Sulfates
	{
		Name:              "sodium lauryl sulfate",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"dryness", "irritation", "oil stripping"},
		AffectedSkinTypes: []string{models.SkinTypeDry, models.SkinTypeSensitive, models.SkinTypeNormal},
		Category:          "sulfate",
	},
	{
		Name:              "sodium laureth sulfate",
		RiskLevel:         models.RiskLow,
		Concerns:          []string{"mild dryness", "potential irritation"},
		AffectedSkinTypes: []string{models.SkinTypeDry, models.SkinTypeSensitive},
		Category:          "sulfate",
	},
	{
		Name:              "sls",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"dryness", "irritation", "oil stripping"},
		AffectedSkinTypes: []string{models.SkinTypeDry, models.SkinTypeSensitive, models.SkinTypeNormal},
		Category:          "sulfate",
	},
	{
		Name:              "sles",
		RiskLevel:         models.RiskLow,
		Concerns:          []string{"mild dryness", "potential irritation"},
		AffectedSkinTypes: []string{models.SkinTypeDry, models.SkinTypeSensitive},
		Category:          "sulfate",
	},

	// Parabens
	{
		Name:              "methylparaben",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"hormone disruption", "allergic reactions"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive},
		Category:          "paraben",
	},
	{
		Name:              "propylparaben",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"hormone disruption", "allergic reactions"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive},
		Category:          "paraben",
	},
	{
		Name:              "butylparaben",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"hormone disruption", "allergic reactions"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive},
		Category:          "paraben",
	},

	// Essential oils
	{
		Name:              "essential oil",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"allergic reactions", "photosensitivity", "irritation"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive},
		Category:          "essential-oil",
	},
	{
		Name:              "lavender oil",
		RiskLevel:         models.RiskLow,
		Concerns:          []string{"allergic reactions", "sensitivity"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive},
		Category:          "essential-oil",
	},
	{
		Name:              "tea tree oil",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"irritation", "allergic reactions"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive, models.SkinTypeDry},
		Category:          "essential-oil",
	},
	{
		Name:              "peppermint oil",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"irritation", "tingling sensation"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive},
		Category:          "essential-oil",
	},

	// Retinoids
	{
		Name:              "retinol",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"increased sensitivity", "dryness", "peeling"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive, models.SkinTypeDry},
		Category:          "retinoid",
	},
	{
		Name:              "retinyl palmitate",
		RiskLevel:         models.RiskLow,
		Concerns:          []string{"mild sensitivity", "photosensitivity"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive},
		Category:          "retinoid",
	},
	{
		Name:              "tretinoin",
		RiskLevel:         models.RiskHigh,
		Concerns:          []string{"severe irritation", "peeling", "photosensitivity"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive, models.SkinTypeDry, models.SkinTypeNormal},
		Category:          "retinoid",
	},

	// Acids
	{
		Name:              "salicylic acid",
		RiskLevel:         models.RiskLow,
		Concerns:          []string{"mild dryness", "sensitivity"},
		AffectedSkinTypes: []string{models.SkinTypeDry, models.SkinTypeSensitive},
		Category:          "acid",
	},
	{
		Name:              "glycolic acid",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"irritation", "photosensitivity", "dryness"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive, models.SkinTypeDry},
		Category:          "acid",
	},
	{
		Name:              "lactic acid",
		RiskLevel:         models.RiskLow,
		Concerns:          []string{"mild sensitivity", "photosensitivity"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive},
		Category:          "acid",
	},

	// Preservatives
	{
		Name:              "formaldehyde",
		RiskLevel:         models.RiskHigh,
		Concerns:          []string{"allergic reactions", "irritation", "carcinogenic"},
		AffectedSkinTypes: []string{models.SkinTypeAll},
		Category:          "preservative",
	},
	{
		Name:              "dmdm hydantoin",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"formaldehyde release", "allergic reactions"},
		AffectedSkinTypes: []string{models.SkinTypeSensitive},
		Category:          "preservative",
	},

	// Comedogenic ingredients
	{
		Name:              "coconut oil",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"pore clogging", "acne breakouts"},
		AffectedSkinTypes: []string{models.SkinTypeOily, models.SkinTypeCombination},
		Category:          "oil",
	},
	{
		Name:              "isopropyl myristate",
		RiskLevel:         models.RiskModerate,
		Concerns:          []string{"pore clogging", "acne"},
		AffectedSkinTypes: []string{models.SkinTypeOily, models.SkinTypeCombination},
		Category:          "emollient",
	},
}

// seedSafeFragments are name fragments of known-beneficial ingredients,
// kept for reference queries (see Catalog.IsKnownSafe).
var seedSafeFragments = []string{
	"hyaluronic acid", "niacinamide", "ceramide", "peptide", "vitamin c",
	"vitamin e", "glycerin", "squalane", "allantoin", "panthenol",
	"centella asiatica", "green tea extract", "aloe vera", "water",
	"aqua", "dimethicone", "caprylic triglyceride",
}
