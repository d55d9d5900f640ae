package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbuttons"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report button classes that no rule resolves",
	Long: `Check every button-* class in the scanned files against the theme.
Unknown colors, unknown shades and empty or invalid arbitrary values are errors;
button-* classes with no rule shape are warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runLint,
}

func init() {
	f := lintCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (buttonlint) suffix on issues")
}

// runLint is shared between `cssbuttons lint` and `cssbuttons generate --lint`.
func runLint(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	lintConfig := buildLintConfig(logger)

	lintResult, err := cssbuttons.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := cssbuttons.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		cssbuttons.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig)
	}

	// "Soft Gate": only errors fail the build unless strict
	if cssbuttons.ExitCode(lintResult, lintConfig.Strict) != 0 {
		return errCheckFailed
	}

	return nil
}
