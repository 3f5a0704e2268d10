package main

import (
	"fmt"
	"os"

	"github.com/aretw0/espalier/internal/presentation/graph"
	"github.com/aretw0/espalier/pkg/workflow"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the workflow graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the workflow, with unreachable and orphan roles highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		design, err := loadDesign(cmd, args)
		if err != nil {
			fmt.Printf("Error loading design: %v\n", err)
			os.Exit(1)
		}

		issues := workflow.Validate(design.Workflow)
		output := graph.GenerateMermaid(design.Workflow, graph.OverlayFromIssues(issues))
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
