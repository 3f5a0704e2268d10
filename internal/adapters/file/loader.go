package file

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// designDocument mirrors the YAML shape of a design file. It uses
// "mapstructure" tags so the decoded YAML map binds to snake_case keys.
type designDocument struct {
	ServiceType     string              `mapstructure:"service_type"`
	Workflow        workflowDoc         `mapstructure:"workflow"`
	Forms           []formDoc           `mapstructure:"forms"`
	Steps           []stepDoc           `mapstructure:"steps"`
	StepTransitions []stepTransitionDoc `mapstructure:"step_transitions"`
}

type workflowDoc struct {
	Roles         []roleDoc         `mapstructure:"roles"`
	Registrations []registrationDoc `mapstructure:"registrations"`
}

type roleDoc struct {
	ID             string      `mapstructure:"id"`
	Name           string      `mapstructure:"name"`
	Kind           string      `mapstructure:"kind"`
	IsStart        bool        `mapstructure:"is_start"`
	Statuses       []statusDoc `mapstructure:"statuses"`
	InstitutionIDs []string    `mapstructure:"institution_ids"`
}

type statusDoc struct {
	ID          string          `mapstructure:"id"`
	Code        string          `mapstructure:"code"`
	Transitions []transitionDoc `mapstructure:"transitions"`
}

type transitionDoc struct {
	ID        string `mapstructure:"id"`
	To        string `mapstructure:"to"`
	Condition string `mapstructure:"condition"`
	SortOrder int    `mapstructure:"sort_order"`
}

type registrationDoc struct {
	ID      string   `mapstructure:"id"`
	Name    string   `mapstructure:"name"`
	RoleIDs []string `mapstructure:"role_ids"`
}

type formDoc struct {
	ID        string       `mapstructure:"id"`
	Name      string       `mapstructure:"name"`
	UpdatedAt string       `mapstructure:"updated_at"`
	Sections  []sectionDoc `mapstructure:"sections"`
	Fields    []fieldDoc   `mapstructure:"fields"`
}

type sectionDoc struct {
	ID         string             `mapstructure:"id"`
	Name       string             `mapstructure:"name"`
	ParentID   string             `mapstructure:"parent_id"`
	SortOrder  int                `mapstructure:"sort_order"`
	Visibility *visibilityRuleDoc `mapstructure:"visibility"`
}

type fieldDoc struct {
	ID         string             `mapstructure:"id"`
	Name       string             `mapstructure:"name"`
	Label      string             `mapstructure:"label"`
	Type       string             `mapstructure:"type"`
	Required   bool               `mapstructure:"required"`
	SectionID  string             `mapstructure:"section_id"`
	SortOrder  int                `mapstructure:"sort_order"`
	Properties map[string]any     `mapstructure:"properties"`
	Visibility *visibilityRuleDoc `mapstructure:"visibility"`
}

type visibilityRuleDoc struct {
	SourceFieldID string `mapstructure:"source_field_id"`
	Operator      string `mapstructure:"operator"`
	Value         any    `mapstructure:"value"`
}

type stepDoc struct {
	ID      string `mapstructure:"id"`
	Name    string `mapstructure:"name"`
	IsStart bool   `mapstructure:"is_start"`
	IsEnd   bool   `mapstructure:"is_end"`
}

type stepTransitionDoc struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// LoadDesign reads one YAML design document into the domain shape the
// pipeline consumes.
func LoadDesign(path string) (domain.Design, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Design{}, fmt.Errorf("failed to read design file: %w", err)
	}
	return ParseDesign(raw)
}

// ParseDesign decodes raw YAML bytes. Decoding happens in two steps
// (YAML -> map, map -> DTO) so mapstructure owns all key binding.
func ParseDesign(raw []byte) (domain.Design, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return domain.Design{}, fmt.Errorf("invalid YAML: %w", err)
	}

	var doc designDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return domain.Design{}, err
	}
	if err := decoder.Decode(tree); err != nil {
		return domain.Design{}, fmt.Errorf("invalid design document: %w", err)
	}

	return doc.toDomain(), nil
}

func (d designDocument) toDomain() domain.Design {
	design := domain.Design{
		ServiceType: d.ServiceType,
	}

	for _, r := range d.Workflow.Roles {
		role := domain.Role{
			ID:             r.ID,
			Name:           r.Name,
			Kind:           domain.RoleKind(r.Kind),
			IsStart:        r.IsStart,
			InstitutionIDs: r.InstitutionIDs,
		}
		if role.Kind == "" {
			role.Kind = domain.RoleKindUser
		}
		for _, s := range r.Statuses {
			status := domain.Status{ID: s.ID, Code: domain.StatusCode(s.Code)}
			for _, t := range s.Transitions {
				status.Transitions = append(status.Transitions, domain.Transition{
					ID:           t.ID,
					TargetRoleID: t.To,
					Condition:    t.Condition,
					SortOrder:    t.SortOrder,
				})
			}
			role.Statuses = append(role.Statuses, status)
		}
		design.Workflow.Roles = append(design.Workflow.Roles, role)
	}

	for _, reg := range d.Workflow.Registrations {
		design.Workflow.Registrations = append(design.Workflow.Registrations, domain.Registration{
			ID:      reg.ID,
			Name:    reg.Name,
			RoleIDs: reg.RoleIDs,
		})
	}

	for _, f := range d.Forms {
		form := domain.Form{
			ID:        f.ID,
			Name:      f.Name,
			UpdatedAt: parseTimestamp(f.UpdatedAt),
		}
		for _, s := range f.Sections {
			form.Sections = append(form.Sections, domain.Section{
				ID:         s.ID,
				Name:       s.Name,
				ParentID:   s.ParentID,
				SortOrder:  s.SortOrder,
				Visibility: s.Visibility.toDomain(),
			})
		}
		for _, fl := range f.Fields {
			form.Fields = append(form.Fields, domain.Field{
				ID:         fl.ID,
				Name:       fl.Name,
				Label:      fl.Label,
				Type:       domain.FieldType(fl.Type),
				Required:   fl.Required,
				SectionID:  fl.SectionID,
				SortOrder:  fl.SortOrder,
				Properties: fl.Properties,
				Visibility: fl.Visibility.toDomain(),
			})
		}
		design.Forms = append(design.Forms, form)
	}

	for _, s := range d.Steps {
		design.Steps = append(design.Steps, domain.Step{
			ID:      s.ID,
			Name:    s.Name,
			IsStart: s.IsStart,
			IsEnd:   s.IsEnd,
		})
	}
	for _, t := range d.StepTransitions {
		design.StepTransitions = append(design.StepTransitions, domain.StepTransition{
			FromStepID: t.From,
			ToStepID:   t.To,
		})
	}

	return design
}

func (v *visibilityRuleDoc) toDomain() *domain.VisibilityRule {
	if v == nil {
		return nil
	}
	return &domain.VisibilityRule{
		SourceFieldID: v.SourceFieldID,
		Operator:      domain.Operator(v.Operator),
		Value:         v.Value,
	}
}

// parseTimestamp tolerates missing or malformed timestamps: the artifact
// version token just becomes the zero time's RFC 3339 rendering.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}
