package domain

// GapType enumerates the detectable configuration deficiencies.
type GapType string

const (
	GapMissingField      GapType = "MISSING_FIELD"
	GapMissingValidation GapType = "MISSING_VALIDATION"
	GapMissingStartState GapType = "MISSING_START_STATE"
	GapMissingEndState   GapType = "MISSING_END_STATE"
	GapOrphanStep        GapType = "ORPHAN_STEP"
	GapMissingTransition GapType = "MISSING_TRANSITION"
)

// Severity grades a gap. Callers decide which grades block publishing.
type Severity string

const (
	SeverityCritical   Severity = "critical"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// FixAction tags a machine-applicable remediation.
type FixAction string

const (
	FixAddField      FixAction = "add_field"
	FixAddValidation FixAction = "add_validation"
	FixAddTransition FixAction = "add_transition"
)

// Location points at the entity a gap was detected on.
type Location struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id,omitempty"`
	EntityName string `json:"entity_name,omitempty"`
	Parent     string `json:"parent,omitempty"`
}

// Fix is an optional remediation attached to a gap. Params carry whatever
// the action needs (suggested field name/type, target field id, ...).
type Fix struct {
	Action      FixAction      `json:"action"`
	Params      map[string]any `json:"params,omitempty"`
	Description string         `json:"description,omitempty"`
}

// Gap is a detected deficiency. Gaps are computed fresh on every analysis
// call and never persisted; IDs are derived from rule + location so that
// identical input yields identical output.
type Gap struct {
	ID       string   `json:"id"`
	Type     GapType  `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Location Location `json:"location"`
	Fix      *Fix     `json:"fix,omitempty"`
}
