package gaps

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/google/uuid"
)

// Options tune one analysis call. The zero value runs all three rule
// families with the built-in rule sets.
type Options struct {
	// ServiceType appends the matching service-specific field rules
	// (e.g. ServiceBusinessRegistration).
	ServiceType string

	SkipFieldRules      bool
	SkipValidationRules bool
	SkipTopologyRules   bool

	// Extra rules are merged after the built-ins; a rule whose name is
	// already taken is discarded.
	ExtraFieldRules      []FieldRule
	ExtraValidationRules []ValidationRule
	ExtraTopologyRules   []TopologyRule
}

// Analyze runs the three rule families over a configuration snapshot and
// merges the results into one severity-partitioned report. The families are
// independent; disabling one never affects the others. Output is
// deterministic for identical input: rule-declaration order, stable gap ids.
func Analyze(design domain.Design, opts Options) *Report {
	var gaps []domain.Gap

	if !opts.SkipFieldRules {
		gaps = append(gaps, runFieldRules(design, opts)...)
	}
	if !opts.SkipValidationRules {
		gaps = append(gaps, runValidationRules(design, opts)...)
	}
	if !opts.SkipTopologyRules {
		gaps = append(gaps, runTopologyRules(design, opts)...)
	}

	return newReport(gaps)
}

func runFieldRules(design domain.Design, opts Options) []domain.Gap {
	if len(design.Forms) == 0 {
		return nil
	}

	fields := flattenFields(design.Forms)
	location := domain.Location{
		EntityType: "form",
		EntityID:   design.Forms[0].ID,
		EntityName: design.Forms[0].Name,
	}

	rules := mergeFieldRules(fieldRulesFor(opts.ServiceType), opts.ExtraFieldRules)

	var gaps []domain.Gap
	for _, rule := range rules {
		if rule.Satisfied(fields) {
			continue
		}
		gap := domain.Gap{
			ID:       gapID(rule.Name, location.EntityID),
			Type:     domain.GapMissingField,
			Severity: rule.Severity,
			Message:  rule.Message,
			Location: location,
		}
		if rule.Fix != nil {
			gap.Fix = &domain.Fix{
				Action: domain.FixAddField,
				Params: map[string]any{
					"name":       rule.Fix.FieldName,
					"type":       string(rule.Fix.FieldType),
					"label":      rule.Fix.Label,
					"required":   rule.Fix.Required,
					"validation": rule.Fix.Validation,
				},
				Description: fmt.Sprintf("Add a %q field to %q", rule.Fix.Label, location.EntityName),
			}
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

func runValidationRules(design domain.Design, opts Options) []domain.Gap {
	rules := mergeValidationRules(baseValidationRules(), opts.ExtraValidationRules)

	var gaps []domain.Gap
	for _, rule := range rules {
		for _, form := range design.Forms {
			for _, field := range form.Fields {
				if !rule.Applies(field) || rule.Satisfied(field, field.Props()) {
					continue
				}
				gaps = append(gaps, domain.Gap{
					ID:       gapID(rule.Name, field.ID),
					Type:     domain.GapMissingValidation,
					Severity: rule.Severity,
					Message:  rule.Describe(field),
					Location: domain.Location{
						EntityType: "field",
						EntityID:   field.ID,
						EntityName: field.Name,
						Parent:     form.Name,
					},
					Fix: &domain.Fix{
						Action: domain.FixAddValidation,
						Params: map[string]any{
							"fieldId":     field.ID,
							"requirement": rule.Requirement,
						},
						Description: fmt.Sprintf("Add %s validation to field %q", rule.Requirement, field.Name),
					},
				})
			}
		}
	}
	return gaps
}

func runTopologyRules(design domain.Design, opts Options) []domain.Gap {
	if len(design.Steps) == 0 {
		return nil
	}

	rules := mergeTopologyRules(baseTopologyRules(), opts.ExtraTopologyRules)

	var gaps []domain.Gap
	for _, rule := range rules {
		for _, finding := range rule.Evaluate(design.Steps, design.StepTransitions) {
			gaps = append(gaps, domain.Gap{
				ID:       gapID(rule.Name, finding.Location.EntityID),
				Type:     rule.GapType,
				Severity: rule.Severity,
				Message:  finding.Message,
				Location: finding.Location,
				Fix:      finding.Fix,
			})
		}
	}
	return gaps
}

func flattenFields(forms []domain.Form) []domain.Field {
	var fields []domain.Field
	for _, form := range forms {
		fields = append(fields, form.Fields...)
	}
	return fields
}

// gapID derives a stable identifier from rule and location so identical
// input yields identical output across calls.
func gapID(rule, entityID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("gap:"+rule+":"+entityID)).String()
}
