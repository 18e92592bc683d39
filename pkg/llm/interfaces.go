// Package llm provides the OpenAI-compatible explanation provider consumed
// by the product analyzer.
package llm

import "context"

// ExplanationProvider produces supplementary natural-language text for an
// analysis. Implementations must return a non-empty string within the
// caller's deadline; internal failures degrade to a local fallback and are
// never surfaced as errors from Explain.
type ExplanationProvider interface {
	// Explain returns a short dermatologist-style explanation of the
	// verdict for the given profile and ingredient lists.
	Explain(ctx context.Context, skinType, sensitivity string, allIngredients, unsafeIngredients []string) string

	// ResolveIngredients predicts a comma-separated ingredient list for a
	// product name when the caller did not supply one.
	ResolveIngredients(ctx context.Context, productName string) string
}

// Ensure Provider implements ExplanationProvider at compile time.
var _ ExplanationProvider = (*Provider)(nil)
