package domain

import (
	"github.com/mitchellh/mapstructure"
)

// FieldProps is the decoded view of a field's type-specific properties bag.
// Optionals are pointers so "not set" is distinguishable from zero.
type FieldProps struct {
	HelpText  string   `mapstructure:"helpText"`
	Default   any      `mapstructure:"default"`
	Minimum   *float64 `mapstructure:"minimum"`
	Maximum   *float64 `mapstructure:"maximum"`
	MinLength *int     `mapstructure:"minLength"`
	MaxLength *int     `mapstructure:"maxLength"`
	Pattern   string   `mapstructure:"pattern"`
	Options   []Option `mapstructure:"options"`
}

// Props decodes the properties bag. Malformed bags degrade to zero props —
// the pipeline is total over its input, so decoding never fails the caller.
func (f Field) Props() FieldProps {
	var props FieldProps
	if len(f.Properties) == 0 {
		return props
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &props,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return FieldProps{}
	}
	if err := decoder.Decode(f.Properties); err != nil {
		return FieldProps{}
	}
	return props
}
