package report

import (
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/gaps"
)

// FixEntry pairs a gap with its remediation for batch application.
type FixEntry struct {
	Gap domain.Gap `json:"gap"`
	Fix domain.Fix `json:"fix"`
}

// Fixes extracts every gap carrying a fix, in report order. When ids are
// given, only those gaps are considered ("apply this one" UI actions).
func Fixes(r *gaps.Report, ids ...string) []FixEntry {
	var wanted map[string]bool
	if len(ids) > 0 {
		wanted = make(map[string]bool, len(ids))
		for _, id := range ids {
			wanted[id] = true
		}
	}

	entries := []FixEntry{}
	for _, gap := range r.All() {
		if gap.Fix == nil {
			continue
		}
		if wanted != nil && !wanted[gap.ID] {
			continue
		}
		entries = append(entries, FixEntry{Gap: gap, Fix: *gap.Fix})
	}
	return entries
}
