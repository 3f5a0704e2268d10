package formschema

import (
	"sort"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
)

// Artifact is the compiled, renderer-agnostic output for one form: the data
// shape (JSON Schema), the layout (UI Schema) and the visibility rules.
// Version is the form's last-modified timestamp in RFC 3339; caches use it
// as a change-detection token.
type Artifact struct {
	FormID     string        `json:"formId"`
	FormName   string        `json:"formName"`
	Version    string        `json:"version"`
	JSONSchema *JSONSchema   `json:"jsonSchema"`
	UISchema   *UIElement    `json:"uiSchema"`
	Rules      []RuleMapping `json:"rules"`
}

// Compile produces the three artifacts for a form. It is deterministic:
// compiling the same form twice yields byte-identical JSON output.
func Compile(form domain.Form) *Artifact {
	fields := make([]domain.Field, len(form.Fields))
	copy(fields, form.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].SortOrder < fields[j].SortOrder
	})

	sections := make([]domain.Section, len(form.Sections))
	copy(sections, form.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].SortOrder < sections[j].SortOrder
	})

	return &Artifact{
		FormID:     form.ID,
		FormName:   form.Name,
		Version:    form.UpdatedAt.UTC().Format(time.RFC3339),
		JSONSchema: buildJSONSchema(form, fields),
		UISchema:   buildUISchema(fields, sections),
		Rules:      buildRules(form, fields, sections),
	}
}

// CompileAll compiles every form in declaration order.
func CompileAll(forms []domain.Form) []*Artifact {
	artifacts := make([]*Artifact, len(forms))
	for i, form := range forms {
		artifacts[i] = Compile(form)
	}
	return artifacts
}
