package domain

import "time"

// FieldType enumerates the renderable field kinds. The schema compiler has
// an exhaustive mapping per type; anything it does not recognize degrades
// to a plain string property.
type FieldType string

const (
	FieldText     FieldType = "TEXT"
	FieldTextarea FieldType = "TEXTAREA"
	FieldNumber   FieldType = "NUMBER"
	FieldCheckbox FieldType = "CHECKBOX"
	FieldEmail    FieldType = "EMAIL"
	FieldPhone    FieldType = "PHONE"
	FieldDate     FieldType = "DATE"
	FieldSelect   FieldType = "SELECT"
	FieldRadio    FieldType = "RADIO"
	FieldFile     FieldType = "FILE"
)

// Operator is the stored comparison vocabulary for visibility rules.
// The compiler maps it to the rules-engine vocabulary via a fixed table.
type Operator string

const (
	OpEquals              Operator = "equals"
	OpNotEquals           Operator = "notEquals"
	OpGreaterThan         Operator = "greaterThan"
	OpGreaterThanOrEquals Operator = "greaterThanOrEquals"
	OpLessThan            Operator = "lessThan"
	OpLessThanOrEquals    Operator = "lessThanOrEquals"
	OpContains            Operator = "contains"
	OpIsEmpty             Operator = "isEmpty"
	OpIsNotEmpty          Operator = "isNotEmpty"
)

// VisibilityRule is a conditional show/hide expression: the target is
// visible when the source field's value satisfies (Operator, Value).
type VisibilityRule struct {
	SourceFieldID string   `json:"source_field_id"`
	Operator      Operator `json:"operator"`
	Value         any      `json:"value,omitempty"`
}

// Option is one selectable choice of a SELECT/RADIO field.
type Option struct {
	Value string `json:"value" mapstructure:"value"`
	Label string `json:"label" mapstructure:"label"`
}

// Field is a single data-collection input. Name is the machine name, unique
// within the form; SectionID is empty for top-level fields. Properties is a
// type-specific bag (see Props).
type Field struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Label      string          `json:"label,omitempty"`
	Type       FieldType       `json:"type"`
	Required   bool            `json:"required,omitempty"`
	SectionID  string          `json:"section_id,omitempty"`
	SortOrder  int             `json:"sort_order,omitempty"`
	Properties map[string]any  `json:"properties,omitempty"`
	Visibility *VisibilityRule `json:"visibility,omitempty"`
}

// Section groups fields for rendering. Sections may nest via ParentID, but
// layout treats them as a flat ordered list of groups.
type Section struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ParentID   string          `json:"parent_id,omitempty"`
	SortOrder  int             `json:"sort_order,omitempty"`
	Visibility *VisibilityRule `json:"visibility,omitempty"`
}

// Form owns sections and fields. UpdatedAt doubles as the compiled
// artifact's version token (cheap change detection for caches).
type Form struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
	Sections  []Section `json:"sections,omitempty"`
	Fields    []Field   `json:"fields,omitempty"`
}

// FieldByID resolves a field by identifier. Returns nil when absent.
func (f Form) FieldByID(id string) *Field {
	for i := range f.Fields {
		if f.Fields[i].ID == id {
			return &f.Fields[i]
		}
	}
	return nil
}
