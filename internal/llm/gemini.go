package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiConfig configures the Google GenAI backend.
type GeminiConfig struct {
	APIKey string
	// BaseURL overrides the SDK endpoint when set.
	BaseURL string
	Model   string
}

// GeminiClient implements Backend with the GenAI SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a GenAI-backed client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: cfg.Model}, nil
}

// GenerateText returns the concatenated text parts of the first candidate.
func (g *GeminiClient) GenerateText(ctx context.Context, req Request) (string, error) {
	return g.generate(ctx, req, generationConfig(req))
}

// GenerateObject asks for application/json constrained by schema.
func (g *GeminiClient) GenerateObject(ctx context.Context, req Request, schema *Schema) ([]byte, error) {
	cfg := generationConfig(req)
	cfg.ResponseMIMEType = "application/json"
	cfg.ResponseSchema = schema.GenAI()

	text, err := g.generate(ctx, req, cfg)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func (g *GeminiClient) generate(ctx context.Context, req Request, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("genai generate failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func generationConfig(req Request) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxOutputTokens),
	}
}
