package formschema

import (
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibilityForm() domain.Form {
	return domain.Form{
		ID: "form-vis", Name: "Visibility",
		Sections: []domain.Section{
			{
				ID: "sec-details", Name: "Company Details", SortOrder: 1,
				Visibility: &domain.VisibilityRule{
					SourceFieldID: "f-kind",
					Operator:      domain.OpEquals,
					Value:         "company",
				},
			},
		},
		Fields: []domain.Field{
			{ID: "f-kind", Name: "applicant_kind", Type: domain.FieldSelect, SortOrder: 1},
			{
				ID: "f-vat", Name: "vat_number", Type: domain.FieldText, SortOrder: 2,
				SectionID: "sec-details",
				Visibility: &domain.VisibilityRule{
					SourceFieldID: "f-kind",
					Operator:      domain.OpNotEquals,
					Value:         "individual",
				},
			},
		},
	}
}

func TestBuildRules_Export(t *testing.T) {
	rules := Compile(visibilityForm()).Rules
	require.Len(t, rules, 2)

	// Fields export before sections.
	field := rules[0]
	assert.Equal(t, "f-vat", field.TargetID)
	assert.Equal(t, "vat_number", field.TargetName)
	assert.Equal(t, TargetField, field.TargetType)
	require.Len(t, field.Rule.Conditions.All, 1)
	cond := field.Rule.Conditions.All[0]
	assert.Equal(t, "applicant_kind", cond.Fact)
	assert.Equal(t, "notEqual", cond.Operator)
	assert.Equal(t, "individual", cond.Value)
	assert.Equal(t, "visible", field.Rule.Event.Type)

	section := rules[1]
	assert.Equal(t, TargetSection, section.TargetType)
	assert.Equal(t, "Company Details", section.TargetName)
	assert.Equal(t, "equal", section.Rule.Conditions.All[0].Operator)
}

func TestBuildRules_UnresolvableSourceIsDropped(t *testing.T) {
	form := domain.Form{
		ID: "f", Name: "Dangling",
		Fields: []domain.Field{
			{
				ID: "f-1", Name: "a", Type: domain.FieldText,
				Visibility: &domain.VisibilityRule{
					SourceFieldID: "ghost",
					Operator:      domain.OpEquals,
					Value:         "x",
				},
			},
		},
	}

	assert.Empty(t, Compile(form).Rules)
}

func TestMapOperator_Table(t *testing.T) {
	tests := []struct {
		op       domain.Operator
		value    any
		wantOp   string
		wantVal  any
		resolved bool
	}{
		{domain.OpEquals, "x", "equal", "x", true},
		{domain.OpNotEquals, "x", "notEqual", "x", true},
		{domain.OpGreaterThan, 5, "greaterThan", 5, true},
		{domain.OpGreaterThanOrEquals, 5, "greaterThanInclusive", 5, true},
		{domain.OpLessThan, 5, "lessThan", 5, true},
		{domain.OpLessThanOrEquals, 5, "lessThanInclusive", 5, true},
		{domain.OpContains, "x", "contains", "x", true},
		{domain.OpIsEmpty, "ignored", "equal", "", true},
		{domain.OpIsNotEmpty, "ignored", "notEqual", "", true},
		{domain.Operator("between"), 1, "", nil, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			op, val, ok := mapOperator(tt.op, tt.value)
			assert.Equal(t, tt.resolved, ok)
			assert.Equal(t, tt.wantOp, op)
			assert.Equal(t, tt.wantVal, val)
		})
	}
}
