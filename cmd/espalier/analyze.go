package main

import (
	"fmt"
	"os"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/presentation/tui"
	"github.com/aretw0/espalier/pkg/report"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Find configuration gaps and suggest fixes",
	Long: `Runs the gap analyzer over the design and prints a severity-graded report.
Service-specific rules activate from the design's service type, or from --service-type.`,
	Run: func(cmd *cobra.Command, args []string) {
		design, err := loadDesign(cmd, args)
		if err != nil {
			fmt.Printf("Error loading design: %v\n", err)
			os.Exit(1)
		}

		serviceType, _ := cmd.Flags().GetString("service-type")
		plain, _ := cmd.Flags().GetBool("plain")

		var opts []espalier.Option
		if serviceType != "" {
			opts = append(opts, espalier.WithServiceType(serviceType))
		}

		result := espalier.New(opts...).Review(design)

		plain = plain || tui.PlainProfile()
		text := report.Chat(result.Report, report.ChatOptions{PlainText: plain})

		if plain {
			fmt.Print(text)
		} else if rendered, err := tui.NewRenderer()(text); err == nil {
			fmt.Print(rendered)
		} else {
			fmt.Print(text)
		}

		if len(result.Report.CriticalGaps) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("service-type", "", "Service type for extended analysis rules")
	analyzeCmd.Flags().Bool("plain", false, "Print plain text without terminal styling")
}
