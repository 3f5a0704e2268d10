/*
Package espalier analyzes declarative service designs at design time: a
workflow graph of roles connected by status-triggered transitions, plus
data-collection forms with fields, sections and conditional visibility.

The pipeline has five parts, all pure functions over already-loaded
configuration:

  - workflow.BuildAdjacency: the traversal view of the role graph.
  - workflow.Validate: structural soundness (start roles, reachability,
    terminal roles, registration/institution bindings).
  - formschema.Compile: per-form artifacts — Draft-07 JSON Schema, a
    VerticalLayout/Control/Group UI Schema, and a rules-engine visibility
    export.
  - gaps.Analyze: declarative rules detecting missing fields, missing
    validation and workflow dead ends, each gap optionally carrying a
    machine-applicable fix.
  - report: conversational text, UI summaries, and fix extraction over the
    analyzer's output.

Espalier never executes workflows, never touches storage, and performs no
I/O: callers load configuration, hand it in, and forward the results.

# Usage

	design := loadDesign() // domain.Design, from storage or YAML

	result := espalier.New().Review(design)
	for _, issue := range result.Issues {
		log.Println(issue.Severity, issue.Message)
	}
	fmt.Println(report.Chat(result.Report, report.ChatOptions{}))

The cmd/espalier CLI wraps the same pipeline for YAML design documents, and
internal/adapters expose it over HTTP, MCP and a Redis artifact cache.
*/
package espalier
