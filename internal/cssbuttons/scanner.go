package cssbuttons

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference represents a class attribute value found in code
type ClassReference struct {
	FullClassValue string       // Full attribute: "button-blue-500 w-full"
	Location       FileLocation // Where it was found
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (exact start of the class value)
	Text   string // Full line content for source display
}

// Candidate is a unique button class with every place it occurs.
type Candidate struct {
	Class     string
	Locations []FileLocation
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern represents a regex pattern for finding class values
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Ordered from most specific to least specific
	patterns = []scanPattern{
		{
			name:  "class attribute with double quotes",
			regex: regexp.MustCompile(`class="([^"]+)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`class='([^']+)'`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`class=\{\s*"([^"]+)"`),
		},
	}

	// Openings of templ.Classes and templ.KV calls; arguments are read by
	// callArgs so literals like "button-[rgb(0,0,0)]" stay whole
	templClassesCall = regexp.MustCompile(`templ\.Classes\(`)
	templKVCall      = regexp.MustCompile(`templ\.KV\(`)

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file
// Handles both _templ.go and .templ.go suffix variations
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
// templ-generated files are always skipped; relative paths are also checked
// against .gitignore.
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	// Absolute paths (like /tmp/...) should not be affected by project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for class references.
// Files that cannot be read are skipped.
func ScanFiles(scanPatterns []string) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands globs and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class references
func scanFile(filePath string) ([]ClassReference, error) {
	// #nosec G304 - path comes from trusted configuration
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		refs = append(refs, extractClassesFromLine(line, lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractClassesFromLine extracts all class values from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference

	hasTemplClasses := strings.Contains(line, "templ.Classes(")
	hasTemplKV := strings.Contains(line, "templ.KV(")

	if hasTemplClasses {
		refs = append(refs, extractFromTemplClasses(line, lineNum, file)...)
	}
	if hasTemplKV && !hasTemplClasses {
		refs = append(refs, extractFromTemplKV(line, lineNum, file)...)
	}

	// templ functions already handled, skip the attribute patterns to avoid
	// duplicates
	if hasTemplClasses || hasTemplKV {
		return refs
	}

	for _, pattern := range patterns {
		matches := pattern.regex.FindAllStringSubmatchIndex(line, -1)
		for _, match := range matches {
			if len(match) < 4 {
				continue
			}

			refs = append(refs, ClassReference{
				FullClassValue: line[match[2]:match[3]],
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: match[2] + 1,
					Text:   line,
				},
			})
		}
	}

	return refs
}

// extractFromTemplClasses extracts class values from templ.Classes(...) calls
// Handles: templ.Classes("foo", "bar", templ.KV("baz", cond))
func extractFromTemplClasses(line string, lineNum int, file string) []ClassReference {
	var refs []ClassReference

	for _, loc := range templClassesCall.FindAllStringIndex(line, -1) {
		content, ok := callArgs(line, loc[1])
		if !ok {
			continue
		}

		for _, part := range splitTemplArgs(content) {
			part = strings.TrimSpace(part)
			if inner, ok := strings.CutPrefix(part, "templ.KV("); ok {
				args := splitTemplArgs(strings.TrimSuffix(inner, ")"))
				if len(args) > 0 {
					part = strings.TrimSpace(args[0])
				}
			}
			refs = append(refs, parseTemplString(part, lineNum, file, line)...)
		}
	}

	return refs
}

// extractFromTemplKV extracts class names from templ.KV(...) calls
// Handles: templ.KV("foo", condition)
func extractFromTemplKV(line string, lineNum int, file string) []ClassReference {
	var refs []ClassReference

	for _, loc := range templKVCall.FindAllStringIndex(line, -1) {
		content, ok := callArgs(line, loc[1])
		if !ok {
			continue
		}

		// For KV, only the first argument is the class name
		parts := splitTemplArgs(content)
		if len(parts) > 0 {
			refs = append(refs, parseTemplString(strings.TrimSpace(parts[0]), lineNum, file, line)...)
		}
	}

	return refs
}

// callArgs returns the text between an opening parenthesis (ending at start)
// and its matching closing one. Parentheses inside string literals do not
// count. ok is false when the call is not closed on this line.
func callArgs(line string, start int) (string, bool) {
	depth := 1
	inString := false

	for i := start; i < len(line); i++ {
		switch c := line[i]; {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return line[start:i], true
			}
		}
	}

	return "", false
}

// parseTemplString turns a quoted templ argument into a reference
func parseTemplString(part string, lineNum int, file string, fullLine string) []ClassReference {
	if len(part) < 2 || !strings.HasPrefix(part, `"`) || !strings.HasSuffix(part, `"`) {
		return nil
	}

	classStr := strings.Trim(part, `"`)
	return []ClassReference{{
		FullClassValue: classStr,
		Location: FileLocation{
			File:   file,
			Line:   lineNum,
			Column: strings.Index(fullLine, classStr) + 1,
			Text:   fullLine,
		},
	}}
}

// splitTemplArgs splits comma-separated arguments, keeping commas inside
// parentheses and string literals
func splitTemplArgs(s string) []string {
	var parts []string
	var current strings.Builder
	parenDepth := 0
	inString := false

	for _, r := range s {
		if inString {
			current.WriteRune(r)
			if r == '"' {
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			inString = true
			current.WriteRune(r)
		case '(':
			parenDepth++
			current.WriteRune(r)
		case ')':
			parenDepth--
			current.WriteRune(r)
		case ',':
			if parenDepth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// findClassColumn locates the 1-based column where class starts within
// the reference's class value, falling back to the reference column
func findClassColumn(ref ClassReference, class string) int {
	line := ref.Location.Text
	start := ref.Location.Column - 1
	if start >= 0 && start <= len(line) {
		if idx := indexToken(line[start:], class); idx != -1 {
			return start + idx + 1
		}
	}

	if idx := indexToken(line, class); idx != -1 {
		return idx + 1
	}

	return ref.Location.Column
}

// indexToken finds class as a whole whitespace/quote delimited token
func indexToken(s, class string) int {
	offset := 0
	for {
		idx := strings.Index(s[offset:], class)
		if idx == -1 {
			return -1
		}
		idx += offset
		end := idx + len(class)
		if (idx == 0 || isTokenBoundary(s[idx-1])) && (end == len(s) || isTokenBoundary(s[end])) {
			return idx
		}
		offset = idx + 1
	}
}

func isTokenBoundary(b byte) bool {
	return b == ' ' || b == '\t' || b == '"' || b == '\''
}

// Candidates splits class values into tokens and groups the button-* ones.
// The result is sorted by class name.
func Candidates(refs []ClassReference) []Candidate {
	byClass := make(map[string]*Candidate)

	for _, ref := range refs {
		for _, class := range strings.Fields(ref.FullClassValue) {
			if !strings.HasPrefix(class, ClassPrefix) {
				continue
			}

			loc := ref.Location
			loc.Column = findClassColumn(ref, class)

			c, ok := byClass[class]
			if !ok {
				c = &Candidate{Class: class}
				byClass[class] = c
			}
			c.Locations = append(c.Locations, loc)
		}
	}

	result := make([]Candidate, 0, len(byClass))
	for _, c := range byClass {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Class < result[j].Class
	})

	return result
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
