package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/gaps"
)

// ChatOptions tune the conversational rendering.
type ChatOptions struct {
	// MaxPerGroup caps entries per severity group; 0 means unlimited.
	// Overflow is summarized as "...and N more".
	MaxPerGroup int
	// PlainText strips heading/emphasis markup for surfaces that render
	// no markdown.
	PlainText bool
}

// Chat renders a gap report as conversational text: the summary sentence,
// one heading per non-empty severity group, and a closing prompt offering
// to apply fixes when at least one gap carries one.
func Chat(r *gaps.Report, opts ChatOptions) string {
	var sb strings.Builder

	sb.WriteString(r.Summary)
	sb.WriteString("\n")

	writeGroup(&sb, "Critical issues", r.CriticalGaps, opts)
	writeGroup(&sb, "Warnings", r.WarningGaps, opts)
	writeGroup(&sb, "Suggestions", r.SuggestionGaps, opts)

	if fixable := countFixable(r); fixable > 0 {
		sb.WriteString("\n")
		if opts.PlainText {
			sb.WriteString(fmt.Sprintf("I can apply %d of these fixes automatically. Want me to?\n", fixable))
		} else {
			sb.WriteString(fmt.Sprintf("I can apply **%d** of these fixes automatically. Want me to?\n", fixable))
		}
	}

	return sb.String()
}

func writeGroup(sb *strings.Builder, title string, group []domain.Gap, opts ChatOptions) {
	if len(group) == 0 {
		return
	}

	sb.WriteString("\n")
	if opts.PlainText {
		sb.WriteString(title + ":\n")
	} else {
		sb.WriteString("## " + title + "\n")
	}

	shown := group
	if opts.MaxPerGroup > 0 && len(group) > opts.MaxPerGroup {
		shown = group[:opts.MaxPerGroup]
	}

	for _, gap := range shown {
		where := LocationString(gap.Location)
		if opts.PlainText {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", gap.Message, where))
		} else {
			sb.WriteString(fmt.Sprintf("- **%s** (%s)\n", gap.Message, where))
		}
	}

	if rest := len(group) - len(shown); rest > 0 {
		sb.WriteString(fmt.Sprintf("- ...and %d more\n", rest))
	}
}

func countFixable(r *gaps.Report) int {
	n := 0
	for _, gap := range r.All() {
		if gap.Fix != nil {
			n++
		}
	}
	return n
}
