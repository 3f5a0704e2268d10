package domain

// RoleKind distinguishes human participants from automated ones.
// The values match the codes the upstream loader stores.
type RoleKind string

const (
	// RoleKindUser is a human participant (requires institution assignment).
	RoleKindUser RoleKind = "USER"
	// RoleKindSystem is an automated participant.
	RoleKindSystem RoleKind = "SYSTEM"
)

// StatusCode is one of the four fixed per-role outcome codes.
type StatusCode string

const (
	StatusPending  StatusCode = "PENDING"
	StatusPassed   StatusCode = "PASSED"
	StatusReturned StatusCode = "RETURNED"
	StatusRejected StatusCode = "REJECTED"
)

// Originates reports whether transitions may leave a role through this code.
// PENDING is the entry state and never originates a transition.
func (c StatusCode) Originates() bool {
	switch c {
	case StatusPending:
		return false
	case StatusPassed, StatusReturned, StatusRejected:
		return true
	}
	return false
}

// Role is a workflow participant. It owns a fixed set of outcome statuses
// and carries its institution bindings (who executes the role).
type Role struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Kind           RoleKind `json:"kind"`
	IsStart        bool     `json:"is_start,omitempty"`
	Statuses       []Status `json:"statuses,omitempty"`
	InstitutionIDs []string `json:"institution_ids,omitempty"`
}

// Status is a single outcome code of a role plus the transitions it triggers.
// A role may have at most one Status per code.
type Status struct {
	ID          string       `json:"id"`
	Code        StatusCode   `json:"code"`
	Transitions []Transition `json:"transitions,omitempty"`
}

// Transition is a directed edge from a (role, status) pair to a target role.
// SortOrder disambiguates fan-out; the pair (source status, target role) is
// unique within a workflow.
type Transition struct {
	ID           string `json:"id"`
	TargetRoleID string `json:"target_role_id"`
	Condition    string `json:"condition,omitempty"`
	SortOrder    int    `json:"sort_order,omitempty"`
}

// Registration is a thing being processed, bound to the roles that handle it.
type Registration struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	RoleIDs []string `json:"role_ids,omitempty"`
}

// Workflow is the full role/status/transition set for one process, plus the
// registration bindings used for completeness checks.
type Workflow struct {
	Roles         []Role         `json:"roles,omitempty"`
	Registrations []Registration `json:"registrations,omitempty"`
}

// StartRoles returns the roles flagged as workflow start, in declaration order.
func (w Workflow) StartRoles() []Role {
	var starts []Role
	for _, r := range w.Roles {
		if r.IsStart {
			starts = append(starts, r)
		}
	}
	return starts
}

// RoleByID resolves a role by identifier. Returns nil when absent.
func (w Workflow) RoleByID(id string) *Role {
	for i := range w.Roles {
		if w.Roles[i].ID == id {
			return &w.Roles[i]
		}
	}
	return nil
}
