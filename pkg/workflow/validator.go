package workflow

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// IssueSeverity grades a validator issue.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "ERROR"
	SeverityWarning IssueSeverity = "WARNING"
)

// IssueCode identifies the failed check.
type IssueCode string

const (
	CodeNoRoles               IssueCode = "NO_ROLES"
	CodeNoStartRole           IssueCode = "NO_START_ROLE"
	CodeMultipleStartRoles    IssueCode = "MULTIPLE_START_ROLES"
	CodeNoTransitions         IssueCode = "NO_TRANSITIONS"
	CodeNoEndRole             IssueCode = "NO_END_ROLE"
	CodeUnreachableRole       IssueCode = "UNREACHABLE_ROLE"
	CodeOrphanRole            IssueCode = "ORPHAN_ROLE"
	CodeUnboundRegistration   IssueCode = "UNBOUND_REGISTRATION"
	CodeUnassignedInstitution IssueCode = "UNASSIGNED_INSTITUTION"
)

// Issue is a single structural finding. The list a validation run returns is
// ordered by check, then by role declaration order within a check.
type Issue struct {
	Code           IssueCode     `json:"code"`
	Severity       IssueSeverity `json:"severity"`
	Message        string        `json:"message"`
	RoleID         string        `json:"role_id,omitempty"`
	RegistrationID string        `json:"registration_id,omitempty"`
}

// Validate runs the structural checks over one workflow. It is a total
// function: malformed input produces issues, never errors.
func Validate(w domain.Workflow) []Issue {
	if len(w.Roles) == 0 {
		return []Issue{{
			Code:     CodeNoRoles,
			Severity: SeverityError,
			Message:  "workflow has no roles",
		}}
	}

	var issues []Issue

	starts := w.StartRoles()
	switch {
	case len(starts) == 0:
		issues = append(issues, Issue{
			Code:     CodeNoStartRole,
			Severity: SeverityError,
			Message:  "no role is designated as the workflow start",
		})
	case len(starts) > 1:
		names := make([]string, len(starts))
		for i, r := range starts {
			names[i] = r.Name
		}
		issues = append(issues, Issue{
			Code:     CodeMultipleStartRoles,
			Severity: SeverityError,
			Message:  fmt.Sprintf("multiple roles are designated as start: %s", strings.Join(names, ", ")),
		})
	}

	adj := BuildAdjacency(w.Roles)

	if adj.EdgeCount() == 0 && len(w.Roles) > 1 {
		issues = append(issues, Issue{
			Code:     CodeNoTransitions,
			Severity: SeverityWarning,
			Message:  "workflow has multiple roles but no transitions between them",
		})
	}

	if adj.EdgeCount() > 0 && !hasTerminalRole(w.Roles, adj) {
		issues = append(issues, Issue{
			Code:     CodeNoEndRole,
			Severity: SeverityWarning,
			Message:  "every role has outgoing transitions; the workflow never terminates",
		})
	}

	if len(starts) == 1 {
		visited := adj.ReachableFrom(starts[0].ID)
		for _, r := range w.Roles {
			if !visited[r.ID] {
				issues = append(issues, Issue{
					Code:     CodeUnreachableRole,
					Severity: SeverityError,
					Message:  fmt.Sprintf("role %q cannot be reached from the start role %q", r.Name, starts[0].Name),
					RoleID:   r.ID,
				})
			}
		}
	}

	if adj.EdgeCount() > 0 {
		for _, r := range w.Roles {
			if r.IsStart {
				continue
			}
			if len(adj.Incoming[r.ID]) == 0 {
				issues = append(issues, Issue{
					Code:     CodeOrphanRole,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("role %q has no incoming transitions", r.Name),
					RoleID:   r.ID,
				})
			}
		}
	}

	for _, reg := range w.Registrations {
		if len(reg.RoleIDs) == 0 {
			issues = append(issues, Issue{
				Code:           CodeUnboundRegistration,
				Severity:       SeverityWarning,
				Message:        fmt.Sprintf("registration %q is not bound to any role", reg.Name),
				RegistrationID: reg.ID,
			})
		}
	}

	for _, r := range w.Roles {
		if r.Kind == domain.RoleKindUser && len(r.InstitutionIDs) == 0 {
			issues = append(issues, Issue{
				Code:     CodeUnassignedInstitution,
				Severity: SeverityError,
				Message:  fmt.Sprintf("human role %q has no institution assigned", r.Name),
				RoleID:   r.ID,
			})
		}
	}

	return issues
}

// HasErrors reports whether any issue is ERROR severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

func hasTerminalRole(roles []domain.Role, adj *Adjacency) bool {
	for _, r := range roles {
		if len(adj.Outgoing[r.ID]) == 0 {
			return true
		}
	}
	return false
}
