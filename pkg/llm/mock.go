package llm

import "context"

// MockProvider is a configurable mock for testing code that consumes the
// explanation provider. Set the function fields to control behavior.
type MockProvider struct {
	// ExplainFunc is called when Explain is invoked. If nil, returns a
	// canned explanation.
	ExplainFunc func(ctx context.Context, skinType, sensitivity string, allIngredients, unsafeIngredients []string) string

	// ResolveIngredientsFunc is called when ResolveIngredients is invoked.
	// If nil, returns the keyword-pattern fallback.
	ResolveIngredientsFunc func(ctx context.Context, productName string) string

	// Call tracking for verification
	ExplainCalls            int
	ResolveIngredientsCalls int
}

// NewMockProvider creates a new mock with sensible defaults.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Explain implements ExplanationProvider.
func (m *MockProvider) Explain(ctx context.Context, skinType, sensitivity string, allIngredients, unsafeIngredients []string) string {
	m.ExplainCalls++
	if m.ExplainFunc != nil {
		return m.ExplainFunc(ctx, skinType, sensitivity, allIngredients, unsafeIngredients)
	}
	return "This is a mock explanation for " + skinType + " skin."
}

// ResolveIngredients implements ExplanationProvider.
func (m *MockProvider) ResolveIngredients(ctx context.Context, productName string) string {
	m.ResolveIngredientsCalls++
	if m.ResolveIngredientsFunc != nil {
		return m.ResolveIngredientsFunc(ctx, productName)
	}
	return FallbackIngredients(productName)
}

// Ensure MockProvider implements ExplanationProvider at compile time.
var _ ExplanationProvider = (*MockProvider)(nil)
