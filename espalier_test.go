package espalier

import (
	"testing"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/gaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoDesign() domain.Design {
	return domain.Design{
		ServiceType: gaps.ServiceBusinessRegistration,
		Workflow: domain.Workflow{
			Roles: []domain.Role{
				{
					ID: "intake", Name: "Intake", Kind: domain.RoleKindSystem, IsStart: true,
					Statuses: []domain.Status{
						{ID: "s1", Code: domain.StatusPending},
						{ID: "s2", Code: domain.StatusPassed, Transitions: []domain.Transition{
							{ID: "t1", TargetRoleID: "review"},
						}},
					},
				},
				{ID: "review", Name: "Review", Kind: domain.RoleKindSystem},
			},
		},
		Forms: []domain.Form{{
			ID: "f1", Name: "Application", UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Fields: []domain.Field{
				{ID: "fld-1", Name: "business_name", Type: domain.FieldText, Required: true},
			},
		}},
	}
}

func TestReviewer_Review(t *testing.T) {
	result := New().Review(demoDesign())

	// Intake -> Review with Review terminal: structurally sound.
	for _, issue := range result.Issues {
		assert.NotEqual(t, "ERROR", string(issue.Severity))
	}

	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, "f1", result.Artifacts[0].FormID)
	assert.Contains(t, result.Artifacts[0].JSONSchema.Required, "business_name")

	// ServiceType comes from the design when options leave it unset.
	require.NotNil(t, result.Report)
	var sawTaxID bool
	for _, gap := range result.Report.All() {
		if gap.Message == "No field collects a tax identification number" {
			sawTaxID = true
		}
	}
	assert.True(t, sawTaxID)
}

func TestReviewer_OptionOverridesServiceType(t *testing.T) {
	r := New(WithServiceType("generic"))
	result := r.Review(demoDesign())

	for _, gap := range result.Report.All() {
		assert.NotEqual(t, "No field collects a tax identification number", gap.Message)
	}
}
