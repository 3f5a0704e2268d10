package formschema

import (
	"github.com/aretw0/espalier/pkg/domain"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

// Fixed shape expressions for fields that carry no authored pattern.
const (
	emailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	// Permissive on purpose: international prefixes, spaces, dashes, parens.
	phonePattern = `^\+?[0-9 ()\-]{7,20}$`
)

// JSONSchema is the Draft-07 data-shape artifact for one form.
type JSONSchema struct {
	Schema     string               `json:"$schema"`
	Type       string               `json:"type"`
	Title      string               `json:"title"`
	Properties map[string]*Property `json:"properties"`
	Required   []string             `json:"required"`
}

// Property is one field's schema entry. EnumNames is the common non-standard
// companion to Enum carrying display labels, order-preserved.
type Property struct {
	Type        string   `json:"type"`
	Format      string   `json:"format,omitempty"`
	Description string   `json:"description,omitempty"`
	Default     any      `json:"default,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
	MinLength   *int     `json:"minLength,omitempty"`
	MaxLength   *int     `json:"maxLength,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	EnumNames   []string `json:"enumNames,omitempty"`
}

func buildJSONSchema(form domain.Form, fields []domain.Field) *JSONSchema {
	schema := &JSONSchema{
		Schema:     draft07,
		Type:       "object",
		Title:      form.Name,
		Properties: make(map[string]*Property, len(fields)),
		Required:   []string{},
	}

	for _, field := range fields {
		schema.Properties[field.Name] = buildProperty(field)
		if field.Required {
			schema.Required = append(schema.Required, field.Name)
		}
	}

	return schema
}

func buildProperty(field domain.Field) *Property {
	props := field.Props()

	prop := &Property{
		Description: props.HelpText,
		Default:     props.Default,
	}

	switch field.Type {
	case domain.FieldNumber:
		prop.Type = "number"
		prop.Minimum = props.Minimum
		prop.Maximum = props.Maximum

	case domain.FieldCheckbox:
		prop.Type = "boolean"

	case domain.FieldText, domain.FieldTextarea:
		prop.Type = "string"
		prop.MinLength = props.MinLength
		prop.MaxLength = props.MaxLength
		prop.Pattern = props.Pattern

	case domain.FieldEmail:
		prop.Type = "string"
		prop.Format = "email"
		prop.Pattern = emailPattern

	case domain.FieldPhone:
		prop.Type = "string"
		prop.Pattern = phonePattern

	case domain.FieldDate:
		prop.Type = "string"
		prop.Format = "date"

	case domain.FieldSelect, domain.FieldRadio:
		prop.Type = "string"
		for _, opt := range props.Options {
			prop.Enum = append(prop.Enum, opt.Value)
			prop.EnumNames = append(prop.EnumNames, opt.Label)
		}

	case domain.FieldFile:
		prop.Type = "string"
		prop.Format = "data-url"

	default:
		// Unknown types degrade to plain strings.
		prop.Type = "string"
	}

	return prop
}
