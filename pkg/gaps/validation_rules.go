package gaps

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
)

func baseValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Name:        "email-pattern",
			Severity:    domain.SeverityWarning,
			Types:       []domain.FieldType{domain.FieldEmail},
			Requirement: "pattern",
			Satisfied: func(_ domain.Field, props domain.FieldProps) bool {
				return props.Pattern != ""
			},
			Describe: func(f domain.Field) string {
				return fmt.Sprintf("Email field %q has no validation pattern", f.Name)
			},
		},
		{
			Name:        "phone-pattern",
			Severity:    domain.SeverityWarning,
			Types:       []domain.FieldType{domain.FieldPhone, domain.FieldType("tel")},
			Requirement: "pattern",
			Satisfied: func(_ domain.Field, props domain.FieldProps) bool {
				return props.Pattern != ""
			},
			Describe: func(f domain.Field) string {
				return fmt.Sprintf("Phone field %q has no validation pattern", f.Name)
			},
		},
		{
			Name:        "text-length-bounds",
			Severity:    domain.SeveritySuggestion,
			Types:       []domain.FieldType{domain.FieldText, domain.FieldTextarea},
			Requirement: "maxLength",
			Satisfied: func(_ domain.Field, props domain.FieldProps) bool {
				return props.MinLength != nil || props.MaxLength != nil
			},
			Describe: func(f domain.Field) string {
				return fmt.Sprintf("Text field %q has no length bounds", f.Name)
			},
		},
		{
			Name:        "number-range",
			Severity:    domain.SeveritySuggestion,
			Types:       []domain.FieldType{domain.FieldNumber},
			Requirement: "minimum",
			Satisfied: func(_ domain.Field, props domain.FieldProps) bool {
				return props.Minimum != nil || props.Maximum != nil
			},
			Describe: func(f domain.Field) string {
				return fmt.Sprintf("Number field %q has no range limits", f.Name)
			},
		},
	}
}
