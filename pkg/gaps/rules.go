package gaps

import (
	"github.com/aretw0/espalier/pkg/domain"
)

// Rule descriptors are plain data: a name, a fixed severity, a pure
// predicate reference, and an optional fix template. Custom rules supplied
// through Options use the same shapes and are merged by name, later
// duplicates discarded.

// FieldRule checks the flattened set of all fields for the presence of
// something (an applicant name, a contact email, ...). A failing rule
// yields one gap with an add_field fix built from the template.
type FieldRule struct {
	Name      string
	Severity  domain.Severity
	Message   string
	Satisfied func(fields []domain.Field) bool
	Fix       *FieldFixTemplate
}

// FieldFixTemplate is the suggested field for an add_field fix.
type FieldFixTemplate struct {
	FieldName  string
	FieldType  domain.FieldType
	Label      string
	Required   bool
	Validation map[string]any
}

// ValidationRule checks each field whose type is in Types against a
// required-validation shape (pattern present, length bounds set, ...).
// Each unsatisfied field yields one gap with an add_validation fix.
type ValidationRule struct {
	Name        string
	Severity    domain.Severity
	Types       []domain.FieldType
	Requirement string // validation key the fix should add, e.g. "pattern"
	Satisfied   func(field domain.Field, props domain.FieldProps) bool
	Describe    func(field domain.Field) string
}

// Applies reports whether the rule's type set covers the field.
func (r ValidationRule) Applies(field domain.Field) bool {
	for _, t := range r.Types {
		if field.Type == t {
			return true
		}
	}
	return false
}

// Finding is an offending location produced by a topology rule. The
// analyzer wraps findings into gaps, stamping rule severity and type.
type Finding struct {
	Message  string
	Location domain.Location
	Fix      *domain.Fix
}

// TopologyRule evaluates the simplified Step/Transition pair, so designs
// not yet promoted to the full Role model still get start/end/orphan
// analysis.
type TopologyRule struct {
	Name     string
	GapType  domain.GapType
	Severity domain.Severity
	Evaluate func(steps []domain.Step, transitions []domain.StepTransition) []Finding
}

func mergeFieldRules(base, extra []FieldRule) []FieldRule {
	seen := make(map[string]bool, len(base))
	for _, r := range base {
		seen[r.Name] = true
	}
	merged := base
	for _, r := range extra {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		merged = append(merged, r)
	}
	return merged
}

func mergeValidationRules(base, extra []ValidationRule) []ValidationRule {
	seen := make(map[string]bool, len(base))
	for _, r := range base {
		seen[r.Name] = true
	}
	merged := base
	for _, r := range extra {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		merged = append(merged, r)
	}
	return merged
}

func mergeTopologyRules(base, extra []TopologyRule) []TopologyRule {
	seen := make(map[string]bool, len(base))
	for _, r := range base {
		seen[r.Name] = true
	}
	merged := base
	for _, r := range extra {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		merged = append(merged, r)
	}
	return merged
}
