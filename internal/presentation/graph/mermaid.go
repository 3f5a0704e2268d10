package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/workflow"
)

// Overlay marks validator findings on the rendered graph.
type Overlay struct {
	UnreachableRoles []string
	OrphanRoles      []string
}

// OverlayFromIssues extracts the role-level findings worth highlighting.
func OverlayFromIssues(issues []workflow.Issue) *Overlay {
	o := &Overlay{}
	for _, issue := range issues {
		switch issue.Code {
		case workflow.CodeUnreachableRole:
			o.UnreachableRoles = append(o.UnreachableRoles, issue.RoleID)
		case workflow.CodeOrphanRole:
			o.OrphanRoles = append(o.OrphanRoles, issue.RoleID)
		}
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a workflow.
// It applies semantic styling:
// - Start role: ((Circle))
// - Automated (SYSTEM) role: [[Subroutine]]
// - Default: [Rectangle]
// Edges are labeled with the originating status code plus the condition, if any.
func GenerateMermaid(w domain.Workflow, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, role := range w.Roles {
		safeID := sanitizeMermaidID(role.ID)

		opener, closer := "[", "]"
		switch {
		case role.IsStart:
			opener, closer = "((", "))" // Circle
		case role.Kind == domain.RoleKindSystem:
			opener, closer = "[[", "]]" // Subroutine
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, role.Name, closer))

		for _, status := range role.Statuses {
			if !status.Code.Originates() {
				continue
			}
			for _, t := range status.Transitions {
				safeTo := sanitizeMermaidID(t.TargetRoleID)

				label := string(status.Code)
				if t.Condition != "" {
					// Escape double quotes in condition for Mermaid label
					safeCondition := strings.ReplaceAll(t.Condition, "\"", "'")
					label = fmt.Sprintf("%s: %s", status.Code, safeCondition)
				}
				sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, label, safeTo))
			}
		}
	}

	if overlay != nil && (len(overlay.UnreachableRoles) > 0 || len(overlay.OrphanRoles) > 0) {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef unreachable fill:#ffebee,stroke:#b71c1c,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef orphan fill:#fff8e1,stroke:#f57f17,stroke-width:2px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.UnreachableRoles {
			safeID := sanitizeMermaidID(id)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s unreachable;\n", safeID))
			}
		}
		for _, id := range overlay.OrphanRoles {
			safeID := sanitizeMermaidID(id)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s orphan;\n", safeID))
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
