// Package llm talks to the hosted generation backend. Calls are single-shot:
// one prompt in, one completion out, no retries and no streaming.
package llm

import (
	"context"
	"errors"
	"fmt"

	"devboost/internal/config"
)

var (
	// ErrNotConfigured is returned when the backend has no API key.
	ErrNotConfigured = errors.New("llm: api key not configured")
	// ErrEmptyResponse is returned when the backend answers without content.
	ErrEmptyResponse = errors.New("llm: empty response")
)

// Request is one generation call.
type Request struct {
	Prompt          string
	MaxOutputTokens int
	Temperature     float64
}

// Backend generates free text or schema-constrained JSON.
type Backend interface {
	GenerateText(ctx context.Context, req Request) (string, error)
	// GenerateObject returns raw JSON the backend was asked to shape after schema.
	// Callers still validate it.
	GenerateObject(ctx context.Context, req Request, schema *Schema) ([]byte, error)
}

// New builds the backend selected by cfg.Provider.
func New(ctx context.Context, cfg config.AIConfig) (Backend, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(OpenAIConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.RequestTimeout,
		}), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, GeminiConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

// Unavailable returns a Backend whose every call fails with err. It keeps the
// server up when the configured provider cannot be constructed.
func Unavailable(err error) Backend {
	return unavailable{err: err}
}

type unavailable struct{ err error }

func (u unavailable) GenerateText(context.Context, Request) (string, error) { return "", u.err }

func (u unavailable) GenerateObject(context.Context, Request, *Schema) ([]byte, error) {
	return nil, u.err
}
