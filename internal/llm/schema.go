package llm

import "google.golang.org/genai"

// Schema types.
const (
	TypeObject = "object"
	TypeArray  = "array"
	TypeString = "string"
)

// Schema is the provider-neutral subset of JSON Schema used for structured output.
type Schema struct {
	Type        string
	Description string
	Properties  map[string]*Schema
	// Order keeps property order stable for providers that care about it.
	Order    []string
	Required []string
	Enum     []string
	Items    *Schema
}

// JSONSchema renders s as a strict JSON Schema document. Objects forbid
// additional properties, which strict structured output requires.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": s.Type}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		out["enum"] = append([]string(nil), s.Enum...)
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if s.Type == TypeObject {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
		out["required"] = append([]string{}, s.Required...)
		out["additionalProperties"] = false
	}
	return out
}

// GenAI converts s to the Gemini SDK schema type.
func (s *Schema) GenAI() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             genaiType(s.Type),
		Description:      s.Description,
		Enum:             s.Enum,
		Required:         s.Required,
		PropertyOrdering: s.Order,
		Items:            s.Items.GenAI(),
	}
	if len(s.Enum) > 0 {
		out.Format = "enum"
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.GenAI()
		}
	}
	return out
}

func genaiType(t string) genai.Type {
	switch t {
	case TypeObject:
		return genai.TypeObject
	case TypeArray:
		return genai.TypeArray
	default:
		return genai.TypeString
	}
}
