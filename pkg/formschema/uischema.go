package formschema

import (
	"github.com/aretw0/espalier/pkg/domain"
)

// UI Schema layout vocabulary.
const (
	LayoutVertical = "VerticalLayout"
	LayoutControl  = "Control"
	LayoutGroup    = "Group"
)

// UIElement is a node of the rendering layout tree.
type UIElement struct {
	Type     string         `json:"type"`
	Scope    string         `json:"scope,omitempty"`
	Label    string         `json:"label,omitempty"`
	Options  map[string]any `json:"options,omitempty"`
	Elements []*UIElement   `json:"elements,omitempty"`
}

// buildUISchema renders one vertical layout: fields without a section first,
// in sort order, then each non-empty section as a labeled group. The orphan
// fields first ordering is a fixed design choice, not configurable.
func buildUISchema(fields []domain.Field, sections []domain.Section) *UIElement {
	root := &UIElement{
		Type:     LayoutVertical,
		Elements: []*UIElement{},
	}

	for _, field := range fields {
		if field.SectionID == "" {
			root.Elements = append(root.Elements, controlFor(field))
		}
	}

	for _, section := range sections {
		group := &UIElement{
			Type:  LayoutGroup,
			Label: section.Name,
		}
		for _, field := range fields {
			if field.SectionID == section.ID {
				group.Elements = append(group.Elements, controlFor(field))
			}
		}
		if len(group.Elements) > 0 {
			root.Elements = append(root.Elements, group)
		}
	}

	return root
}

func controlFor(field domain.Field) *UIElement {
	control := &UIElement{
		Type:  LayoutControl,
		Scope: "#/properties/" + field.Name,
	}
	if field.Type == domain.FieldTextarea {
		control.Options = map[string]any{"multi": true}
	}
	return control
}
