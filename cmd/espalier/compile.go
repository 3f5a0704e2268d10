package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/espalier/pkg/formschema"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile forms into rendering artifacts",
	Long:  `Compiles every form in the design into a JSON Schema, a UI Schema layout and a visibility rule set, printed as JSON on stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		design, err := loadDesign(cmd, args)
		if err != nil {
			fmt.Printf("Error loading design: %v\n", err)
			os.Exit(1)
		}

		artifacts := formschema.CompileAll(design.Forms)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(artifacts); err != nil {
			fmt.Printf("Error encoding artifacts: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
