package cssbuttons

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssbuttons/internal/rules"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag  string
		quiet bool
		want  OutputFormat
	}{
		{"", false, OutputIssues},
		{"issues", false, OutputIssues},
		{"summary", false, OutputSummary},
		{"full", false, OutputFull},
		{"json", false, OutputJSON},
		{"json", true, OutputIssues},
		{"markdown", false, OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet))
		})
	}
}

func sampleLintResult() *LintResult {
	return &LintResult{
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Text:        `unknown button class "button-blue-999": shade 999 of "blue" is not in the theme`,
				Severity:    SeverityError,
				SourceLines: []string{`<a class="button-blue-999">`},
				Pos:         IssuePos{Filename: "page.templ", Line: 4, Column: 11},
			},
			{
				FromLinter: LinterName,
				Text:       `unknown button class "button-primary": no button rule matches`,
				Severity:   SeverityWarning,
				Pos:        IssuePos{Filename: "page.templ", Line: 5, Column: 11},
			},
		},
		FilesScanned:    2,
		References:      5,
		CandidatesFound: 4,
		Resolved:        2,
		Unresolved:      2,
		ErrorCount:      1,
		TruncatedCount:  1,
		Warnings:        []string{"no theme configured"},
	}
}

func TestWriteOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	WriteOutput(&buf, sampleLintResult(), OutputJSON, LintConfig{})

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 2, Errors: 1, Warnings: 1, Truncated: 1, FilesScanned: 2}, out.Summary)
	assert.Equal(t, JSONStats{References: 5, UniqueClasses: 4, Resolved: 2, Unresolved: 2, ResolvedPercentage: 50}, out.Stats)
	require.Len(t, out.Issues, 2)
	assert.Equal(t, JSONIssue{
		File:     "page.templ",
		Line:     4,
		Column:   11,
		Severity: SeverityError,
		Message:  `unknown button class "button-blue-999": shade 999 of "blue" is not in the theme`,
		Linter:   LinterName,
		Source:   `<a class="button-blue-999">`,
	}, out.Issues[0])
	assert.Empty(t, out.Issues[1].Source)
	assert.Equal(t, []string{"no theme configured"}, out.Warnings)
}

func TestWriteOutput_Issues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	WriteOutput(&buf, sampleLintResult(), OutputIssues, LintConfig{PrintLinterName: true})

	out := buf.String()
	assert.Contains(t, out, `page.templ:4:11: unknown button class "button-blue-999": shade 999 of "blue" is not in the theme (buttonlint)`)
	assert.Contains(t, out, "2 issues (1 error, 1 warning; 1 issue truncated):")
	assert.NotContains(t, out, "Button Statistics")
}

func TestWriteOutput_Summary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	WriteOutput(&buf, sampleLintResult(), OutputSummary, LintConfig{})

	out := buf.String()
	assert.Contains(t, out, "Button Statistics")
	assert.Contains(t, out, "• no theme configured")
	assert.NotContains(t, out, "page.templ:4:11")
}

func TestWriteOutput_Full(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	WriteOutput(&buf, sampleLintResult(), OutputFull, LintConfig{})

	out := buf.String()
	assert.Contains(t, out, "page.templ:4:11")
	assert.Contains(t, out, "Button Statistics")
}

func TestWriteSuggestionsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSuggestionsJSON(&buf, nil))
	assert.JSONEq(t, "[]", buf.String())

	buf.Reset()
	require.NoError(t, WriteSuggestionsJSON(&buf, []rules.Suggestion{
		{Class: "button-blue-500", Rule: rules.RuleSolid, Color: "#3b82f6"},
	}))

	var got []rules.Suggestion
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "button-blue-500", got[0].Class)
	assert.Equal(t, "#3b82f6", got[0].Color)
}
