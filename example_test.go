package espalier_test

import (
	"fmt"
	"time"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/report"
)

// ExampleReviewer_Review demonstrates a full review of a small design: one
// two-role workflow and one form with a single field.
func ExampleReviewer_Review() {
	design := domain.Design{
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
			ID:        "f1",
			Name:      "Application",
			UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Fields: []domain.Field{
				{ID: "fld-1", Name: "full_name", Label: "Full Name", Type: domain.FieldText, Required: true},
			},
		}},
	}

	result := espalier.New().Review(design)

	fmt.Println("issues:", len(result.Issues))
	fmt.Println("artifact version:", result.Artifacts[0].Version)
	fmt.Println("summary:", report.Summarize(result.Report).Headline != "")
	// Output:
	// issues: 0
	// artifact version: 2026-01-02T03:04:05Z
	// summary: true
}
