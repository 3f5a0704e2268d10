package main

import (
	"fmt"
	"os"

	"github.com/aretw0/espalier/pkg/workflow"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check the workflow for structural problems",
	Long:  `Validates role, status and transition structure: start roles, reachability, orphans, registration bindings and institution assignments.`,
	Run: func(cmd *cobra.Command, args []string) {
		design, err := loadDesign(cmd, args)
		if err != nil {
			fmt.Printf("Error loading design: %v\n", err)
			os.Exit(1)
		}

		issues := workflow.Validate(design.Workflow)
		if len(issues) == 0 {
			fmt.Println("Workflow is valid! ✅")
			return
		}

		for _, issue := range issues {
			fmt.Printf("[%s] %s: %s\n", issue.Severity, issue.Code, issue.Message)
		}
		if workflow.HasErrors(issues) {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
