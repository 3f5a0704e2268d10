package formschema

import (
	"github.com/aretw0/espalier/pkg/domain"
)

// Rules-engine export shapes. The consumer evaluates conditions against
// field machine names (facts), so source field ids are resolved here.
type (
	// Condition is one fact/operator/value check.
	Condition struct {
		Fact     string `json:"fact"`
		Operator string `json:"operator"`
		Value    any    `json:"value"`
	}

	// Conditions composes checks. Each target currently yields exactly one
	// condition (single-source dependency); multi-condition composition is
	// a known limitation.
	Conditions struct {
		All []Condition `json:"all"`
	}

	// Event fires when the conditions hold.
	Event struct {
		Type string `json:"type"`
	}

	// EngineRule is the conditions/event pair the rule evaluator consumes.
	EngineRule struct {
		Conditions Conditions `json:"conditions"`
		Event      Event      `json:"event"`
	}

	// RuleMapping binds an engine rule to the field or section it shows.
	RuleMapping struct {
		TargetID   string     `json:"targetId"`
		TargetName string     `json:"targetName"`
		TargetType string     `json:"targetType"`
		Rule       EngineRule `json:"rule"`
	}
)

// Target entity types in rule mappings.
const (
	TargetField   = "field"
	TargetSection = "section"
)

// buildRules exports every stored visibility rule whose source field
// resolves. Unresolvable sources are dropped silently: an authoring
// inconsistency, not a compiler failure.
func buildRules(form domain.Form, fields []domain.Field, sections []domain.Section) []RuleMapping {
	rules := []RuleMapping{}

	for _, field := range fields {
		if mapping, ok := exportRule(form, field.Visibility, field.ID, field.Name, TargetField); ok {
			rules = append(rules, mapping)
		}
	}
	for _, section := range sections {
		if mapping, ok := exportRule(form, section.Visibility, section.ID, section.Name, TargetSection); ok {
			rules = append(rules, mapping)
		}
	}

	return rules
}

func exportRule(form domain.Form, rule *domain.VisibilityRule, targetID, targetName, targetType string) (RuleMapping, bool) {
	if rule == nil {
		return RuleMapping{}, false
	}

	source := form.FieldByID(rule.SourceFieldID)
	if source == nil {
		return RuleMapping{}, false
	}

	operator, value, ok := mapOperator(rule.Operator, rule.Value)
	if !ok {
		return RuleMapping{}, false
	}

	return RuleMapping{
		TargetID:   targetID,
		TargetName: targetName,
		TargetType: targetType,
		Rule: EngineRule{
			Conditions: Conditions{All: []Condition{{
				Fact:     source.Name,
				Operator: operator,
				Value:    value,
			}}},
			Event: Event{Type: "visible"},
		},
	}, true
}

// mapOperator translates the stored vocabulary to the rules-engine one.
// isEmpty/isNotEmpty degrade to an equality check against the empty string,
// discarding any stored value.
func mapOperator(op domain.Operator, value any) (string, any, bool) {
	switch op {
	case domain.OpEquals:
		return "equal", value, true
	case domain.OpNotEquals:
		return "notEqual", value, true
	case domain.OpGreaterThan:
		return "greaterThan", value, true
	case domain.OpGreaterThanOrEquals:
		return "greaterThanInclusive", value, true
	case domain.OpLessThan:
		return "lessThan", value, true
	case domain.OpLessThanOrEquals:
		return "lessThanInclusive", value, true
	case domain.OpContains:
		return "contains", value, true
	case domain.OpIsEmpty:
		return "equal", "", true
	case domain.OpIsNotEmpty:
		return "notEqual", "", true
	}
	return "", nil, false
}
