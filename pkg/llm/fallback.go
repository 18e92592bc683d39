package llm

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// TemplateSelector picks an index in [0, n). The provider's fallback path
// uses it to vary phrasing; injecting a fixed selector makes output
// deterministic in tests.
type TemplateSelector func(n int) int

// RandomSelector returns a selector backed by a private rand source.
func RandomSelector() TemplateSelector {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(rand.Int63()))
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		return rng.Intn(n)
	}
}

// FixedSelector always returns index mod n. Intended for tests.
func FixedSelector(index int) TemplateSelector {
	return func(n int) int {
		return index % n
	}
}

var positiveNotes = []string{
	"Great choice! This product uses generally safe ingredients.",
	"This formulation looks balanced and suitable for your profile.",
	"A solid option for daily use with minimal risk of irritation.",
}

var warningTemplates = []string{
	"Caution is advised. We detected %s that might not agree with %s skin.",
	"This product contains %s which could trigger reactions for %s sensitivity.",
	"You might want to patch test this first due to the presence of %s.",
}

// FallbackExplanation builds a templated explanation when the model is
// unavailable or returned malformed output.
func FallbackExplanation(skinType, sensitivity string, allIngredients, unsafeIngredients []string, pick TemplateSelector) string {
	if pick == nil {
		pick = RandomSelector()
	}

	if len(unsafeIngredients) == 0 {
		benefit := "gentle"
		if strings.Contains(strings.ToLower(strings.Join(allIngredients, ", ")), "glycerin") {
			benefit = "hydrating"
		}
		return fmt.Sprintf("%s It appears to remain %s for %s skin even with %s sensitivity.",
			positiveNotes[pick(len(positiveNotes))], benefit, skinType, sensitivity)
	}

	riskTerm := "a potential irritant"
	verb := "is"
	if len(unsafeIngredients) > 1 {
		riskTerm = "potential irritants"
		verb = "are"
	}

	var warning string
	switch i := pick(len(warningTemplates)); i {
	case 0:
		warning = fmt.Sprintf(warningTemplates[0], riskTerm, skinType)
	case 1:
		warning = fmt.Sprintf(warningTemplates[1], riskTerm, sensitivity)
	default:
		warning = fmt.Sprintf(warningTemplates[2], riskTerm)
	}

	named := unsafeIngredients
	if len(named) > 3 {
		named = named[:3]
	}
	detail := fmt.Sprintf("Specifically, %s %s known to cause issues.", strings.Join(named, ", "), verb)

	return fmt.Sprintf("%s %s Consider a gentler alternative.", warning, detail)
}

// productPattern maps a product-name keyword to a typical formula. Scanned
// in order; the first keyword contained in the product name wins.
type productPattern struct {
	keyword     string
	ingredients string
}

var productPatterns = []productPattern{
	{"moisturizer", "Water, Glycerin, Dimethicone, Petrolatum, Cetearyl Alcohol, Hyaluronic Acid, Niacinamide"},
	{"moisturizing", "Water, Glycerin, Dimethicone, Petrolatum, Cetearyl Alcohol, Hyaluronic Acid, Niacinamide"},
	{"cleanser", "Water, Glycerin, Cocamidopropyl Betaine, Sodium Lauryl Sulfate, Salicylic Acid, Ceramides"},
	{"cleansing", "Water, Glycerin, Cocamidopropyl Betaine, Sodium Lauryl Sulfate, Salicylic Acid, Ceramides"},
	{"sunscreen", "Water, Zinc Oxide, Titanium Dioxide, Dimethicone, Vitamin E, Aloe Barbadensis Leaf Juice"},
	{"sunblock", "Water, Zinc Oxide, Titanium Dioxide, Dimethicone, Vitamin E, Aloe Barbadensis Leaf Juice"},
	{"serum", "Water, Glycerin, Niacinamide, Vitamin C, Ferulic Acid, Sodium Hyaluronate"},
	{"toner", "Water, Witch Hazel, Glycolic Acid, Panthenol, Allantoin, Tea Tree Oil"},
	{"lip balm", "Beeswax, Shea Butter, Coconut Oil, Vitamin E, Peppermint Oil"},
	{"cream", "Water, Shea Butter, Stearic Acid, Cetyl Alcohol, Vitamin E, Retinol"},
	// "cre" catches OCR-truncated "cream" labels
	{"cre", "Water, Shea Butter, Stearic Acid, Cetyl Alcohol, Vitamin E, Retinol"},
	{"lotion", "Water, Mineral Oil, Glycerin, Carbomer, Phenoxyethanol, Fragrance"},
	{"acne", "Water, Benzoyl Peroxide, Salicylic Acid, Tea Tree Oil, Witch Hazel"},
	{"gel", "Water, Alcohol Denat, Glycerin, Carbomer, Aloe Vera, Salicylic Acid"},
	{"shampoo", "Water, Sodium Laureth Sulfate, Cocamidopropyl Betaine, Citric Acid, Fragrance"},
	{"conditioner", "Water, Cetearyl Alcohol, Behentrimonium Chloride, Panthenol, Dimethicone"},
	{"mask", "Water, Kaolin, Bentone, Glycerin, Aloe Barbadensis, Phenoxyethanol"},
	{"wash", "Water, Sodium Laureth Sulfate, Glycerin, Cocamidopropyl Betaine, Fragrance"},
}

// genericFormula is returned when no keyword matches the product name.
const genericFormula = "Water, Glycerin, Cetearyl Alcohol, Dimethicone, Phenoxyethanol, Ethylhexylglycerin"

// FallbackIngredients predicts a formula for a product name by keyword
// matching.
func FallbackIngredients(productName string) string {
	name := strings.ToLower(productName)
	for _, p := range productPatterns {
		if strings.Contains(name, p.keyword) {
			return p.ingredients
		}
	}
	return genericFormula
}
