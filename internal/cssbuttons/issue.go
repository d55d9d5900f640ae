package cssbuttons

// LinterName is reported as the source of every issue.
const LinterName = "buttonlint"

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "buttonlint"
	Text        string   `json:"Text"`        // "unknown button class \"button-blue-950\": shade 950 of \"blue\" is not in the theme"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "internal/web/features/checkout/pages/cart.templ"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the class)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue texts
const (
	IssueUnknownColor = "unknown button class %q: color %q is not in the theme"
	IssueUnknownShade = "unknown button class %q: shade %s of %q is not in the theme"
	IssueInvalidValue = "unknown button class %q: empty or invalid arbitrary value"
	IssueNoRule       = "unknown button class %q: no button rule matches"
)
