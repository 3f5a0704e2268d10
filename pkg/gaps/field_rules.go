package gaps

import (
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// Service-type tags with dedicated rule extensions.
const ServiceBusinessRegistration = "business_registration"

// baseFieldRules apply to every design regardless of service type.
func baseFieldRules() []FieldRule {
	return []FieldRule{
		{
			Name:     "applicant-name",
			Severity: domain.SeverityCritical,
			Message:  "No field collects the applicant's name",
			Satisfied: anyField(func(f domain.Field) bool {
				return nameLike(f, "name") && !nameLike(f, "business", "company", "file")
			}),
			Fix: &FieldFixTemplate{
				FieldName: "full_name",
				FieldType: domain.FieldText,
				Label:     "Full Name",
				Required:  true,
				Validation: map[string]any{
					"minLength": 2,
					"maxLength": 120,
				},
			},
		},
		{
			Name:     "contact-email",
			Severity: domain.SeverityWarning,
			Message:  "No field collects a contact email address",
			Satisfied: anyField(func(f domain.Field) bool {
				return f.Type == domain.FieldEmail || nameLike(f, "email", "e-mail")
			}),
			Fix: &FieldFixTemplate{
				FieldName: "contact_email",
				FieldType: domain.FieldEmail,
				Label:     "Contact Email",
				Required:  true,
			},
		},
		{
			Name:     "contact-phone",
			Severity: domain.SeveritySuggestion,
			Message:  "No field collects a contact phone number",
			Satisfied: anyField(func(f domain.Field) bool {
				return f.Type == domain.FieldPhone || f.Type == domain.FieldType("tel") ||
					nameLike(f, "phone", "mobile", "telefone")
			}),
			Fix: &FieldFixTemplate{
				FieldName: "contact_phone",
				FieldType: domain.FieldPhone,
				Label:     "Contact Phone",
			},
		},
	}
}

// businessRegistrationRules extend the base set when the caller tags the
// design as a business registration service.
func businessRegistrationRules() []FieldRule {
	return []FieldRule{
		{
			Name:     "business-name",
			Severity: domain.SeverityCritical,
			Message:  "No field collects the business name",
			Satisfied: anyField(func(f domain.Field) bool {
				return nameLike(f, "business name", "business_name", "company", "trade name", "razao social")
			}),
			Fix: &FieldFixTemplate{
				FieldName: "business_name",
				FieldType: domain.FieldText,
				Label:     "Business Name",
				Required:  true,
				Validation: map[string]any{
					"minLength": 2,
					"maxLength": 200,
				},
			},
		},
		{
			Name:     "tax-id",
			Severity: domain.SeverityCritical,
			Message:  "No field collects a tax identification number",
			Satisfied: anyField(func(f domain.Field) bool {
				return nameLike(f, "tax", "tin", "ein", "cnpj", "vat")
			}),
			Fix: &FieldFixTemplate{
				FieldName: "tax_id",
				FieldType: domain.FieldText,
				Label:     "Tax ID",
				Required:  true,
				Validation: map[string]any{
					"pattern": `^[0-9A-Za-z\-./]{6,20}$`,
				},
			},
		},
		{
			Name:     "business-address",
			Severity: domain.SeverityWarning,
			Message:  "No field collects the business address",
			Satisfied: anyField(func(f domain.Field) bool {
				return nameLike(f, "address", "endereco", "street")
			}),
			Fix: &FieldFixTemplate{
				FieldName: "business_address",
				FieldType: domain.FieldTextarea,
				Label:     "Business Address",
				Required:  true,
			},
		},
	}
}

func fieldRulesFor(serviceType string) []FieldRule {
	rules := baseFieldRules()
	if serviceType == ServiceBusinessRegistration {
		rules = append(rules, businessRegistrationRules()...)
	}
	return rules
}

func anyField(match func(domain.Field) bool) func([]domain.Field) bool {
	return func(fields []domain.Field) bool {
		for _, f := range fields {
			if match(f) {
				return true
			}
		}
		return false
	}
}

// nameLike matches the field's machine name or label, case-insensitively.
func nameLike(f domain.Field, needles ...string) bool {
	name := strings.ToLower(f.Name)
	label := strings.ToLower(f.Label)
	for _, n := range needles {
		if strings.Contains(name, n) || strings.Contains(label, n) {
			return true
		}
	}
	return false
}
