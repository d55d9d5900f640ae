package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbuttons"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate CSS for the button classes used in your templates",
	Long: `Scan templates for button-* classes and write a stylesheet with one rule
per class that resolves against the theme. Unresolved classes are reported.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringP("output", "o", "", "Output CSS file (default "+defaultOutputFile+")")
	f.Bool("stdout", false, "Print the stylesheet instead of writing it")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	config := buildConfig(logger)
	toStdout := getBoolWithFallback("stdout", "generate.stdout", false)
	if toStdout {
		config.OutputFile = ""
	}

	result, err := cssbuttons.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	out := cmd.OutOrStdout()

	switch {
	case toStdout:
		fmt.Fprint(out, result.CSS)
	case !quiet:
		fmt.Fprintf(out, "Generated %s\n", config.OutputFile)
		fmt.Fprintf(out, "  Files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(out, "  Button classes found: %d\n", result.CandidatesFound)
		fmt.Fprintf(out, "  Rules generated: %d\n", result.RulesGenerated)
		if len(result.Unmatched) > 0 {
			fmt.Fprintf(out, "  Unresolved: %s\n", strings.Join(result.Unmatched, ", "))
		}

		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  Warning: %s\n", w)
		}
	}

	// Run lint after generate if --lint flag set
	if getBoolWithFallback("lint", "generate.lint", false) {
		return runLint(cmd, nil)
	}

	return nil
}
