package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Explanation responses outside these bounds are treated as malformed and
// replaced with templated output.
const (
	minExplanationLen = 20
	maxExplanationLen = 500
)

// Config holds configuration for creating an explanation provider.
type Config struct {
	Endpoint   string        // Base URL, e.g. "http://localhost:11434/v1" for a local Ollama-compatible server
	Model      string        // Model name, e.g. "llama3"
	APIKey     string        // Optional for local endpoints
	Timeout    time.Duration // Per-request deadline; DefaultTimeout if zero
	RetryAfter time.Duration // How long the availability gate stays down after a failure
}

// DefaultTimeout is the maximum time to wait for one model request.
const DefaultTimeout = 20 * time.Second

// Provider generates explanations and ingredient predictions through an
// OpenAI-compatible endpoint, degrading to templated output whenever the
// endpoint is unreachable or returns malformed content.
type Provider struct {
	client   *openai.Client
	endpoint string
	model    string
	timeout  time.Duration
	gate     *AvailabilityGate
	selector TemplateSelector
	logger   *zap.Logger
}

// NewProvider creates an explanation provider for the configured endpoint.
func NewProvider(cfg *Config, logger *zap.Logger) (*Provider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Provider{
		client:   openai.NewClientWithConfig(clientConfig),
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		timeout:  timeout,
		gate:     NewAvailabilityGate(cfg.RetryAfter),
		selector: RandomSelector(),
		logger:   logger.Named("llm"),
	}, nil
}

// SetTemplateSelector overrides how fallback templates are chosen. Tests
// pass a fixed selector to get deterministic output.
func (p *Provider) SetTemplateSelector(selector TemplateSelector) {
	if selector != nil {
		p.selector = selector
	}
}

// IsAvailable reports the memoized endpoint availability.
func (p *Provider) IsAvailable() bool {
	return p.gate.IsAvailable()
}

// Invalidate marks the endpoint unavailable until the gate re-probes.
func (p *Provider) Invalidate() {
	p.gate.Invalidate()
}

// Explain returns a short dermatologist-style explanation for the verdict.
// It never fails: endpoint errors and malformed responses fall back to
// templated text.
func (p *Provider) Explain(ctx context.Context, skinType, sensitivity string, allIngredients, unsafeIngredients []string) string {
	if p.ensureAvailable(ctx) {
		shown := allIngredients
		if len(shown) > 10 {
			shown = shown[:10]
		}
		unsafeList := "none"
		if len(unsafeIngredients) > 0 {
			unsafeList = strings.Join(unsafeIngredients, ", ")
		}

		prompt := fmt.Sprintf(`You are a professional dermatologist providing skincare advice. Analyze this product for a patient.

Patient Profile:
- Skin Type: %s
- Sensitivity Level: %s

Product Ingredients: %s
Flagged Ingredients: %s

Provide a brief, professional explanation (2-3 sentences) about whether this product is suitable for the patient. Be specific about the flagged ingredients if any exist. Keep it concise and actionable.

Explanation:`, skinType, sensitivity, strings.Join(shown, ", "), unsafeList)

		content, err := p.complete(ctx, prompt, 0.7)
		if err != nil {
			p.logger.Warn("Explanation generation failed, using fallback", zap.Error(err))
			p.gate.Invalidate()
		} else if len(content) > minExplanationLen && len(content) < maxExplanationLen {
			return content
		} else {
			p.logger.Warn("Explanation response out of bounds, using fallback",
				zap.Int("length", len(content)))
		}
	}

	return FallbackExplanation(skinType, sensitivity, allIngredients, unsafeIngredients, p.selector)
}

// ResolveIngredients predicts a comma-separated ingredient list for a
// product name, falling back to the keyword pattern table.
func (p *Provider) ResolveIngredients(ctx context.Context, productName string) string {
	if p.ensureAvailable(ctx) {
		prompt := fmt.Sprintf(`You are a cosmetic ingredient expert. Given a product name, list the most common ingredients typically found in such products.

Product Name: %s

Provide ONLY a comma-separated list of ingredients, nothing else. Example format:
Water, Glycerin, Cetearyl Alcohol, Dimethicone, Niacinamide

Ingredients:`, productName)

		content, err := p.complete(ctx, prompt, 0.3)
		if err != nil {
			p.logger.Warn("Ingredient prediction failed, using fallback", zap.Error(err))
			p.gate.Invalidate()
		} else if strings.Contains(content, ",") && len(content) > 10 {
			p.logger.Info("Model predicted ingredients", zap.String("product", productName))
			return content
		} else {
			p.logger.Warn("Ingredient prediction malformed, using fallback",
				zap.String("product", productName))
		}
	}

	return FallbackIngredients(productName)
}

// ensureAvailable probes the endpoint when the gate asks for it and
// reports whether the model may be used.
func (p *Provider) ensureAvailable(ctx context.Context) bool {
	if !p.gate.ShouldProbe() {
		return p.gate.IsAvailable()
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	models, err := p.client.ListModels(probeCtx)
	if err != nil {
		p.logger.Warn("Model endpoint unavailable, using fallback mode",
			zap.String("endpoint", p.endpoint), zap.Error(err))
		p.gate.Invalidate()
		return false
	}

	for _, m := range models.Models {
		if strings.Contains(m.ID, p.model) {
			p.gate.MarkAvailable()
			p.logger.Info("Model endpoint available", zap.String("model", p.model))
			return true
		}
	}

	p.logger.Warn("Endpoint reachable but model not found, using fallback mode",
		zap.String("model", p.model))
	p.gate.Invalidate()
	return false
}

// complete runs one chat completion with the provider's timeout.
func (p *Provider) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	p.logger.Debug("Model request completed",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GetModel returns the configured model name.
func (p *Provider) GetModel() string {
	return p.model
}

// GetEndpoint returns the configured endpoint.
func (p *Provider) GetEndpoint() string {
	return p.endpoint
}
