package cssbuttons

import (
	"go.uber.org/zap"
)

// ClassPrefix is the prefix every button candidate starts with.
const ClassPrefix = "button-"

// Config holds generator configuration
type Config struct {
	ScanPaths  []string       // ["internal/web/**/*.templ", "web/**/*.html"]
	OutputFile string         // "web/static/buttons.css" (empty: don't write)
	ThemeFile  string         // "theme.yaml", "theme.json" or "theme.css"
	Colors     map[string]any // Inline colors tree, overlays ThemeFile groups
	DarkText   string         // Text color for light backgrounds (default: "#000")
	LightText  string         // Text color for dark backgrounds (default: "#fff")
	Verbose    bool
	Logger     *zap.Logger // Diagnostic logger (default: no-op)
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesScanned    int
	FilesSkipped    int      // Generated or gitignored files
	CandidatesFound int      // Unique button-* classes seen
	RulesGenerated  int      // Candidates resolved into CSS
	Unmatched       []string // Candidates no rule resolves
	CSS             string   // Rendered stylesheet
	Warnings        []string
}

// LintConfig holds linting configuration
type LintConfig struct {
	Config

	Strict bool // Exit with code 1 on any issue, not only errors

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (buttonlint) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting analysis results
type LintResult struct {
	Issues []Issue

	FilesScanned    int
	References      int // button-* occurrences
	CandidatesFound int // Unique button-* classes
	Resolved        int // Unique classes a rule resolves
	Unresolved      int // Unique classes no rule resolves
	ErrorCount      int
	TruncatedCount  int // Issues removed due to limits

	Warnings []string
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
