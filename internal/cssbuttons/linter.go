package cssbuttons

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yacobolo/cssbuttons/internal/theme"
	"go.uber.org/zap"
)

var (
	namedShape     = regexp.MustCompile(`^button-([\w-]+)-(\d+)$`)
	arbitraryShape = regexp.MustCompile(`^button-(?:ghost-)?\[(.*)\]$`)
)

// Lint reports every button-* class in the scanned files that no rule
// resolves. Each occurrence becomes one issue.
func Lint(config LintConfig) (*LintResult, error) {
	log := config.logger()
	result := &LintResult{}

	th, warnings, err := LoadTheme(config.Config)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, warnings...)

	refs, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	result.FilesScanned = stats.FilesScanned

	candidates := Candidates(refs)
	result.CandidatesFound = len(candidates)

	matcher := NewMatcher(th, config.Config)
	for _, c := range candidates {
		result.References += len(c.Locations)

		if _, ok := matcher.Match(c.Class); ok {
			result.Resolved++
			continue
		}
		result.Unresolved++

		text, severity := Diagnose(c.Class, th)
		log.Debug("unresolved button class",
			zap.String("class", c.Class),
			zap.Int("occurrences", len(c.Locations)),
			zap.String("reason", text))

		for _, loc := range c.Locations {
			result.Issues = append(result.Issues, Issue{
				FromLinter:  LinterName,
				Text:        text,
				Severity:    severity,
				SourceLines: []string{loc.Text},
				Pos: IssuePos{
					Filename: loc.File,
					Line:     loc.Line,
					Column:   loc.Column,
				},
			})
			if severity == SeverityError {
				result.ErrorCount++
			}
		}
	}

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// Diagnose explains why class resolves to nothing.
// Classes shaped like a named button point at the theme; anything else may be
// a hand-written class that happens to share the prefix, so it is a warning.
func Diagnose(class string, th *theme.Theme) (string, string) {
	if arbitraryShape.MatchString(class) {
		return fmt.Sprintf(IssueInvalidValue, class), SeverityError
	}

	m := namedShape.FindStringSubmatch(class)
	if m == nil {
		return fmt.Sprintf(IssueNoRule, class), SeverityWarning
	}

	name, shade := m[1], m[2]
	if ghostName, ok := strings.CutPrefix(name, "ghost-"); ok {
		if _, exists := th.Group(name); !exists {
			name = ghostName
		}
	}

	if _, exists := th.Group(name); !exists {
		return fmt.Sprintf(IssueUnknownColor, class, name), SeverityError
	}
	return fmt.Sprintf(IssueUnknownShade, class, shade, name), SeverityError
}

// ExitCode maps a lint result to the process exit code.
// Without strict mode only errors fail the run.
func ExitCode(result *LintResult, strict bool) int {
	if result.ErrorCount > 0 {
		return 1
	}
	if strict && len(result.Issues)+result.TruncatedCount > 0 {
		return 1
	}
	return 0
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
