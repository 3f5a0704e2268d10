package gaps

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
)

func baseTopologyRules() []TopologyRule {
	return []TopologyRule{
		{
			Name:     "missing-start-step",
			GapType:  domain.GapMissingStartState,
			Severity: domain.SeverityCritical,
			Evaluate: func(steps []domain.Step, _ []domain.StepTransition) []Finding {
				for _, s := range steps {
					if s.IsStart {
						return nil
					}
				}
				return []Finding{{
					Message:  "Workflow has no start step",
					Location: domain.Location{EntityType: "workflow"},
				}}
			},
		},
		{
			Name:     "missing-end-step",
			GapType:  domain.GapMissingEndState,
			Severity: domain.SeverityCritical,
			Evaluate: func(steps []domain.Step, _ []domain.StepTransition) []Finding {
				for _, s := range steps {
					if s.IsEnd {
						return nil
					}
				}
				return []Finding{{
					Message:  "Workflow has no end step",
					Location: domain.Location{EntityType: "workflow"},
				}}
			},
		},
		{
			Name:     "orphan-steps",
			GapType:  domain.GapOrphanStep,
			Severity: domain.SeverityWarning,
			Evaluate: func(steps []domain.Step, transitions []domain.StepTransition) []Finding {
				incoming, outgoing := stepDegrees(transitions)
				var findings []Finding
				for _, s := range steps {
					if s.IsStart || incoming[s.ID] > 0 || outgoing[s.ID] > 0 {
						continue
					}
					findings = append(findings, Finding{
						Message: fmt.Sprintf("Step %q is not connected to the workflow", s.Name),
						Location: domain.Location{
							EntityType: "step",
							EntityID:   s.ID,
							EntityName: s.Name,
						},
					})
				}
				return findings
			},
		},
		{
			Name:     "dead-end-steps",
			GapType:  domain.GapMissingTransition,
			Severity: domain.SeverityWarning,
			Evaluate: func(steps []domain.Step, transitions []domain.StepTransition) []Finding {
				_, outgoing := stepDegrees(transitions)
				var findings []Finding
				for _, s := range steps {
					if s.IsEnd || outgoing[s.ID] > 0 {
						continue
					}
					findings = append(findings, Finding{
						Message: fmt.Sprintf("Step %q has no outgoing transition and is not terminal", s.Name),
						Location: domain.Location{
							EntityType: "step",
							EntityID:   s.ID,
							EntityName: s.Name,
						},
						Fix: &domain.Fix{
							Action:      domain.FixAddTransition,
							Params:      map[string]any{"fromStepId": s.ID},
							Description: fmt.Sprintf("Add a transition out of %q or mark it as an end step", s.Name),
						},
					})
				}
				return findings
			},
		},
	}
}

func stepDegrees(transitions []domain.StepTransition) (incoming, outgoing map[string]int) {
	incoming = make(map[string]int, len(transitions))
	outgoing = make(map[string]int, len(transitions))
	for _, t := range transitions {
		outgoing[t.FromStepID]++
		incoming[t.ToStepID]++
	}
	return incoming, outgoing
}
