// Package cssbuttons generates button utility CSS on demand for Go/templ
// projects.
//
// Templates use classes such as button-blue-500, button-ghost-blue-500,
// button-[#1e40af] or button-ghost-[rgb(30,64,175)]. cssbuttons scans the
// templates, resolves every button-* class against a color theme and writes a
// stylesheet containing only the buttons that are actually used. Text color is
// picked for contrast: by shade for theme colors, by WCAG relative luminance
// for literal colors.
//
// # Generation
//
//	config := cssbuttons.Config{
//		ScanPaths:  []string{"internal/web/**/*.templ"},
//		ThemeFile:  "theme.yaml",
//		OutputFile: "web/static/css/buttons.css",
//	}
//	result, err := cssbuttons.Generate(config)
//
// # Linting
//
// Report button classes that no rule resolves:
//
//	lintConfig := cssbuttons.LintConfig{Config: config}
//	result, err := cssbuttons.Lint(lintConfig)
//	cssbuttons.WriteOutput(os.Stdout, result, cssbuttons.OutputIssues, lintConfig)
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssbuttons/cmd/cssbuttons@latest
package cssbuttons

import (
	"io"

	"github.com/yacobolo/cssbuttons/internal/color"
	"github.com/yacobolo/cssbuttons/internal/cssbuttons"
	"github.com/yacobolo/cssbuttons/internal/theme"
)

// Config holds generator configuration.
type Config = cssbuttons.Config

// GenerateResult contains generation stats.
type GenerateResult = cssbuttons.GenerateResult

// LintConfig holds linting configuration.
type LintConfig = cssbuttons.LintConfig

// LintResult contains linting analysis results.
type LintResult = cssbuttons.LintResult

// Issue is a single lint finding.
type Issue = cssbuttons.Issue

// OutputFormat selects how lint results are written.
type OutputFormat = cssbuttons.OutputFormat

// Output formats.
const (
	OutputIssues  = cssbuttons.OutputIssues
	OutputSummary = cssbuttons.OutputSummary
	OutputFull    = cssbuttons.OutputFull
	OutputJSON    = cssbuttons.OutputJSON
)

// Generate scans the configured files and renders CSS for every button class
// found, writing it to config.OutputFile when set.
func Generate(config Config) (*GenerateResult, error) {
	return cssbuttons.Generate(config)
}

// Lint reports button classes that no rule resolves.
func Lint(config LintConfig) (*LintResult, error) {
	return cssbuttons.Lint(config)
}

// DetermineOutputFormat maps a format name to an OutputFormat.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	return cssbuttons.DetermineOutputFormat(formatFlag, quiet)
}

// WriteOutput writes a lint result in the given format.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) {
	cssbuttons.WriteOutput(w, result, format, config)
}

// ExitCode maps a lint result to a process exit code.
func ExitCode(result *LintResult, strict bool) int {
	return cssbuttons.ExitCode(result, strict)
}

// ResolveContrast returns dark for light colors and light otherwise.
// Colors that cannot be parsed (hsl(), named colors, variables) get light.
func ResolveContrast(candidate, dark, light string) string {
	return color.ResolveContrast(candidate, dark, light)
}

// Flatten turns a nested colors tree into dash-joined names, collapsing
// DEFAULT keys onto their parent.
func Flatten(colors map[string]any) map[string]any {
	return theme.Flatten(theme.FromMap(colors))
}
