package domain

// Step is the simplified workflow node used by the topology rule family.
// Designs that have not yet been promoted to the full Role model still get
// start/end/orphan analysis through this shape.
type Step struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsStart bool   `json:"is_start,omitempty"`
	IsEnd   bool   `json:"is_end,omitempty"`
}

// StepTransition is a directed edge between two steps.
type StepTransition struct {
	FromStepID string `json:"from_step_id"`
	ToStepID   string `json:"to_step_id"`
}

// Design is the full analyzable configuration snapshot: one workflow, its
// forms, and (optionally) a pre-promotion step graph. ServiceType selects
// service-specific analysis rules (e.g. "business_registration").
type Design struct {
	ServiceType     string           `json:"service_type,omitempty"`
	Workflow        Workflow         `json:"workflow"`
	Forms           []Form           `json:"forms,omitempty"`
	Steps           []Step           `json:"steps,omitempty"`
	StepTransitions []StepTransition `json:"step_transitions,omitempty"`
}
