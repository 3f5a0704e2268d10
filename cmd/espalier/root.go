package main

import (
	"fmt"
	"os"

	"github.com/aretw0/espalier/internal/adapters/file"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "Espalier reviews service configurations before they go live",
	Long: `Espalier analyzes a design document (workflow, forms, steps) and reports
structural problems, compiles form rendering artifacts, and finds gaps a
citizen-facing service should not ship with.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "design.yaml", "Path to the design document")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// loadDesign resolves the design document for a command: the first positional
// argument wins over the --file flag.
func loadDesign(cmd *cobra.Command, args []string) (domain.Design, error) {
	path, _ := cmd.Flags().GetString("file")
	if !cmd.Flags().Changed("file") && len(args) > 0 {
		path = args[0]
	}
	return file.LoadDesign(path)
}
