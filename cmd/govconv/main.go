// Package main provides the CLI entry point for govconv.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv"
	"github.com/arungaikwadgit/AIGov-Sep25/pkg/govconv/output"
)

var (
	outputPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "govconv [workbook.xlsx]",
		Short: "Convert a governance workbook into JSON configuration",
		Long: `govconv reads a governance Excel workbook (gates, artifact schemas,
domain checkpoint mappings) and emits the JSON configuration document
consumed by the review application.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if outputPath != "" {
		if err := govconv.ConvertFile(args[0], outputPath, pretty); err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration generated at %s\n", outputPath)
		return nil
	}

	cfg, err := govconv.Convert(args[0])
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	jsonData, err := output.ToJSON(cfg, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
