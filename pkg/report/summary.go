package report

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/gaps"
)

// Summary is the UI-friendly view of a report: counts per severity, a flag
// for whether anything is auto-fixable, and flattened items in report order.
type Summary struct {
	Total       int    `json:"total"`
	Critical    int    `json:"critical"`
	Warnings    int    `json:"warnings"`
	Suggestions int    `json:"suggestions"`
	HasFixable  bool   `json:"hasFixable"`
	Headline    string `json:"headline"`
	Items       []Item `json:"items"`
}

// Item is one gap flattened for display.
type Item struct {
	ID       string          `json:"id"`
	Type     domain.GapType  `json:"type"`
	Severity domain.Severity `json:"severity"`
	Message  string          `json:"message"`
	Location string          `json:"location"`
	Fixable  bool            `json:"fixable"`
}

// Summarize flattens a report for UI consumption.
func Summarize(r *gaps.Report) Summary {
	s := Summary{
		Total:       r.TotalGaps,
		Critical:    len(r.CriticalGaps),
		Warnings:    len(r.WarningGaps),
		Suggestions: len(r.SuggestionGaps),
		Headline:    r.Summary,
		Items:       []Item{},
	}

	for _, gap := range r.All() {
		if gap.Fix != nil {
			s.HasFixable = true
		}
		s.Items = append(s.Items, Item{
			ID:       gap.ID,
			Type:     gap.Type,
			Severity: gap.Severity,
			Message:  gap.Message,
			Location: LocationString(gap.Location),
			Fixable:  gap.Fix != nil,
		})
	}

	return s
}

// LocationString flattens a gap location to `<entityType> "<entityName>"`.
func LocationString(loc domain.Location) string {
	name := loc.EntityName
	if name == "" {
		name = loc.EntityID
	}
	if name == "" {
		return loc.EntityType
	}
	return fmt.Sprintf("%s %q", loc.EntityType, name)
}
