package workflow

import (
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(issues []Issue) []IssueCode {
	out := make([]IssueCode, len(issues))
	for i, issue := range issues {
		out[i] = issue.Code
	}
	return out
}

func startRole(id string, targets ...string) domain.Role {
	r := roleWithEdges(id, targets...)
	r.IsStart = true
	return r
}

func TestValidate_EmptyWorkflow(t *testing.T) {
	issues := Validate(domain.Workflow{})
	require.Len(t, issues, 1)
	assert.Equal(t, CodeNoRoles, issues[0].Code)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestValidate_StartRole(t *testing.T) {
	t.Run("Missing Start", func(t *testing.T) {
		issues := Validate(domain.Workflow{Roles: []domain.Role{roleWithEdges("a")}})
		assert.Contains(t, codes(issues), CodeNoStartRole)
	})

	t.Run("Multiple Starts", func(t *testing.T) {
		issues := Validate(domain.Workflow{Roles: []domain.Role{
			startRole("intake"),
			startRole("review"),
		}})
		require.Contains(t, codes(issues), CodeMultipleStartRoles)
		for _, issue := range issues {
			if issue.Code == CodeMultipleStartRoles {
				assert.Contains(t, issue.Message, "intake")
				assert.Contains(t, issue.Message, "review")
			}
		}
	})

	t.Run("Exactly One Start Is Clean", func(t *testing.T) {
		issues := Validate(domain.Workflow{Roles: []domain.Role{
			startRole("intake", "review"),
			roleWithEdges("review"),
		}})
		assert.NotContains(t, codes(issues), CodeNoStartRole)
		assert.NotContains(t, codes(issues), CodeMultipleStartRoles)
	})
}

func TestValidate_Topology(t *testing.T) {
	t.Run("No Transitions", func(t *testing.T) {
		issues := Validate(domain.Workflow{Roles: []domain.Role{
			startRole("a"),
			roleWithEdges("b"),
		}})
		assert.Contains(t, codes(issues), CodeNoTransitions)
	})

	t.Run("Terminal Role Suppresses End Warning", func(t *testing.T) {
		// Intake (start, PASSED -> Review) and Review with no outgoing
		// edges: zero errors, no NO_END_ROLE warning.
		issues := Validate(domain.Workflow{Roles: []domain.Role{
			startRole("intake", "review"),
			roleWithEdges("review"),
		}})
		assert.False(t, HasErrors(issues))
		assert.NotContains(t, codes(issues), CodeNoEndRole)
	})

	t.Run("No Terminal Role", func(t *testing.T) {
		issues := Validate(domain.Workflow{Roles: []domain.Role{
			startRole("a", "b"),
			roleWithEdges("b", "a"),
		}})
		assert.Contains(t, codes(issues), CodeNoEndRole)
	})

	t.Run("Unreachable Role", func(t *testing.T) {
		issues := Validate(domain.Workflow{Roles: []domain.Role{
			startRole("a", "b"),
			roleWithEdges("b"),
			roleWithEdges("island", "b"),
		}})
		var unreachable []string
		for _, issue := range issues {
			if issue.Code == CodeUnreachableRole {
				unreachable = append(unreachable, issue.RoleID)
			}
		}
		assert.Equal(t, []string{"island"}, unreachable)
	})

	t.Run("Disconnecting An Edge Surfaces It", func(t *testing.T) {
		connected := domain.Workflow{Roles: []domain.Role{
			startRole("a", "b"),
			roleWithEdges("b", "c"),
			roleWithEdges("c"),
		}}
		assert.NotContains(t, codes(Validate(connected)), CodeUnreachableRole)

		// Drop b -> c.
		broken := domain.Workflow{Roles: []domain.Role{
			startRole("a", "b"),
			roleWithEdges("b"),
			roleWithEdges("c"),
		}}
		assert.Contains(t, codes(Validate(broken)), CodeUnreachableRole)
	})

	t.Run("Orphan Role", func(t *testing.T) {
		issues := Validate(domain.Workflow{Roles: []domain.Role{
			startRole("a", "b"),
			roleWithEdges("b"),
			roleWithEdges("orphan", "b"),
		}})
		var orphans []string
		for _, issue := range issues {
			if issue.Code == CodeOrphanRole {
				orphans = append(orphans, issue.RoleID)
			}
		}
		assert.Equal(t, []string{"orphan"}, orphans)
	})
}

func TestValidate_Bindings(t *testing.T) {
	t.Run("Unbound Registration", func(t *testing.T) {
		issues := Validate(domain.Workflow{
			Roles: []domain.Role{startRole("a")},
			Registrations: []domain.Registration{
				{ID: "r1", Name: "Trade License", RoleIDs: []string{"a"}},
				{ID: "r2", Name: "Vacant Permit"},
			},
		})
		var unbound []string
		for _, issue := range issues {
			if issue.Code == CodeUnboundRegistration {
				unbound = append(unbound, issue.RegistrationID)
			}
		}
		assert.Equal(t, []string{"r2"}, unbound)
	})

	t.Run("Unassigned Institution Only For Humans", func(t *testing.T) {
		human := startRole("clerk")
		human.Kind = domain.RoleKindUser

		bot := roleWithEdges("notifier")
		bot.Kind = domain.RoleKindSystem

		issues := Validate(domain.Workflow{Roles: []domain.Role{human, bot}})
		var unassigned []string
		for _, issue := range issues {
			if issue.Code == CodeUnassignedInstitution {
				unassigned = append(unassigned, issue.RoleID)
				assert.Equal(t, SeverityError, issue.Severity)
			}
		}
		assert.Equal(t, []string{"clerk"}, unassigned)
	})
}
