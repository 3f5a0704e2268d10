package gaps

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
)

// Report is the merged analysis result, partitioned by severity. Report
// order — critical, then warnings, then suggestions, each in detection
// order — is the order every consumer (reporter, fix application) sees.
type Report struct {
	TotalGaps      int          `json:"totalGaps"`
	CriticalGaps   []domain.Gap `json:"criticalGaps"`
	WarningGaps    []domain.Gap `json:"warningGaps"`
	SuggestionGaps []domain.Gap `json:"suggestionGaps"`
	Summary        string       `json:"summary"`
}

func newReport(gaps []domain.Gap) *Report {
	r := &Report{
		CriticalGaps:   []domain.Gap{},
		WarningGaps:    []domain.Gap{},
		SuggestionGaps: []domain.Gap{},
	}

	for _, gap := range gaps {
		switch gap.Severity {
		case domain.SeverityCritical:
			r.CriticalGaps = append(r.CriticalGaps, gap)
		case domain.SeverityWarning:
			r.WarningGaps = append(r.WarningGaps, gap)
		case domain.SeveritySuggestion:
			r.SuggestionGaps = append(r.SuggestionGaps, gap)
		}
	}

	r.TotalGaps = len(r.CriticalGaps) + len(r.WarningGaps) + len(r.SuggestionGaps)
	r.Summary = summarize(r)
	return r
}

// summarize produces the one-sentence verdict. A clean report always
// contains the word "complete" — callers branch on it.
func summarize(r *Report) string {
	if r.TotalGaps == 0 {
		return "Configuration review complete: no gaps found."
	}
	return fmt.Sprintf("Found %d gaps: %d critical, %d warnings, %d suggestions.",
		r.TotalGaps, len(r.CriticalGaps), len(r.WarningGaps), len(r.SuggestionGaps))
}

// All returns every gap in report order.
func (r *Report) All() []domain.Gap {
	all := make([]domain.Gap, 0, r.TotalGaps)
	all = append(all, r.CriticalGaps...)
	all = append(all, r.WarningGaps...)
	all = append(all, r.SuggestionGaps...)
	return all
}
