package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDesign = `
service_type: business_registration
workflow:
  roles:
    - id: intake
      name: Intake
      kind: SYSTEM
      is_start: true
      statuses:
        - id: s1
          code: PENDING
        - id: s2
          code: PASSED
          transitions:
            - id: t1
              to: review
              condition: "amount > 100"
              sort_order: 1
    - id: review
      name: Review
      institution_ids: [inst-1]
  registrations:
    - id: reg-1
      name: Standard
      role_ids: [intake, review]
forms:
  - id: f1
    name: Application
    updated_at: "2026-01-02T03:04:05Z"
    sections:
      - id: sec-1
        name: Contact
        sort_order: 1
    fields:
      - id: fld-1
        name: email
        label: Email
        type: EMAIL
        required: true
        section_id: sec-1
        sort_order: 1
        properties:
          helpText: Work address preferred
      - id: fld-2
        name: details
        type: TEXTAREA
        visibility:
          source_field_id: fld-1
          operator: isNotEmpty
steps:
  - id: st-1
    name: Submit
    is_start: true
  - id: st-2
    name: Done
    is_end: true
step_transitions:
  - from: st-1
    to: st-2
`

func TestParseDesign(t *testing.T) {
	design, err := ParseDesign([]byte(sampleDesign))
	require.NoError(t, err)

	assert.Equal(t, "business_registration", design.ServiceType)

	require.Len(t, design.Workflow.Roles, 2)
	intake := design.Workflow.Roles[0]
	assert.Equal(t, domain.RoleKindSystem, intake.Kind)
	assert.True(t, intake.IsStart)
	require.Len(t, intake.Statuses, 2)
	require.Len(t, intake.Statuses[1].Transitions, 1)
	assert.Equal(t, "review", intake.Statuses[1].Transitions[0].TargetRoleID)
	assert.Equal(t, "amount > 100", intake.Statuses[1].Transitions[0].Condition)

	// Kind defaults to USER when the document omits it.
	assert.Equal(t, domain.RoleKindUser, design.Workflow.Roles[1].Kind)
	assert.Equal(t, []string{"inst-1"}, design.Workflow.Roles[1].InstitutionIDs)

	require.Len(t, design.Workflow.Registrations, 1)
	assert.Equal(t, []string{"intake", "review"}, design.Workflow.Registrations[0].RoleIDs)

	require.Len(t, design.Forms, 1)
	form := design.Forms[0]
	assert.Equal(t, "2026-01-02T03:04:05Z", form.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"))
	require.Len(t, form.Fields, 2)
	assert.Equal(t, domain.FieldEmail, form.Fields[0].Type)
	assert.Equal(t, "Work address preferred", form.Fields[0].Properties["helpText"])
	require.NotNil(t, form.Fields[1].Visibility)
	assert.Equal(t, domain.OpIsNotEmpty, form.Fields[1].Visibility.Operator)
	assert.Nil(t, form.Fields[0].Visibility)

	require.Len(t, design.Steps, 2)
	assert.True(t, design.Steps[0].IsStart)
	assert.True(t, design.Steps[1].IsEnd)
	require.Len(t, design.StepTransitions, 1)
	assert.Equal(t, "st-1", design.StepTransitions[0].FromStepID)
}

func TestParseDesign_InvalidYAML(t *testing.T) {
	_, err := ParseDesign([]byte("workflow: [unbalanced"))
	assert.ErrorContains(t, err, "invalid YAML")
}

func TestParseDesign_BadTimestamp(t *testing.T) {
	design, err := ParseDesign([]byte("forms:\n  - id: f1\n    updated_at: yesterday\n"))
	require.NoError(t, err)
	require.Len(t, design.Forms, 1)
	assert.True(t, design.Forms[0].UpdatedAt.IsZero())
}

func TestLoadDesign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDesign), 0o644))

	design, err := LoadDesign(path)
	require.NoError(t, err)
	assert.Len(t, design.Workflow.Roles, 2)

	_, err = LoadDesign(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read design file")
}
