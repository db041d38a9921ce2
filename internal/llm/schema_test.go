package llm

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"devboost/internal/config"
)

var testSchema = &Schema{
	Type:     TypeObject,
	Order:    []string{"items"},
	Required: []string{"items"},
	Properties: map[string]*Schema{
		"items": {
			Type: TypeArray,
			Items: &Schema{
				Type:     TypeObject,
				Order:    []string{"level", "note"},
				Required: []string{"level", "note"},
				Properties: map[string]*Schema{
					"level": {Type: TypeString, Enum: []string{"high", "low"}},
					"note":  {Type: TypeString, Description: "free text"},
				},
			},
		},
	},
}

func TestSchema_JSONSchema(t *testing.T) {
	want := map[string]any{
		"type":                 "object",
		"required":             []string{"items"},
		"additionalProperties": false,
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"required":             []string{"level", "note"},
					"additionalProperties": false,
					"properties": map[string]any{
						"level": map[string]any{"type": "string", "enum": []string{"high", "low"}},
						"note":  map[string]any{"type": "string", "description": "free text"},
					},
				},
			},
		},
	}

	if diff := cmp.Diff(want, testSchema.JSONSchema()); diff != "" {
		t.Errorf("JSONSchema() mismatch (-want +got):\n%s", diff)
	}
}

func TestSchema_GenAI(t *testing.T) {
	want := &genai.Schema{
		Type:             genai.TypeObject,
		Required:         []string{"items"},
		PropertyOrdering: []string{"items"},
		Properties: map[string]*genai.Schema{
			"items": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:             genai.TypeObject,
					Required:         []string{"level", "note"},
					PropertyOrdering: []string{"level", "note"},
					Properties: map[string]*genai.Schema{
						"level": {Type: genai.TypeString, Enum: []string{"high", "low"}, Format: "enum"},
						"note":  {Type: genai.TypeString, Description: "free text"},
					},
				},
			},
		},
	}

	if diff := cmp.Diff(want, testSchema.GenAI()); diff != "" {
		t.Errorf("GenAI() mismatch (-want +got):\n%s", diff)
	}
}

func TestSchema_Nil(t *testing.T) {
	var s *Schema
	assert.Nil(t, s.JSONSchema())
	assert.Nil(t, s.GenAI())
}

func TestNew_SelectsProvider(t *testing.T) {
	backend, err := New(context.Background(), config.AIConfig{Provider: config.ProviderOpenAI, APIKey: "k", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, backend)

	_, err = New(context.Background(), config.AIConfig{Provider: config.ProviderGemini})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = New(context.Background(), config.AIConfig{Provider: "mystery"})
	assert.Error(t, err)
}

func TestUnavailable(t *testing.T) {
	backend := Unavailable(ErrNotConfigured)

	_, err := backend.GenerateText(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = backend.GenerateObject(context.Background(), Request{}, testSchema)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
