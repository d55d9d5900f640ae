package cssbuttons

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacobolo/cssbuttons/internal/rules"
	"github.com/yacobolo/cssbuttons/internal/theme"
	"go.uber.org/zap"
)

// LoadTheme builds the theme from the configured file and inline colors.
// Inline color groups replace file groups with the same name.
func LoadTheme(config Config) (*theme.Theme, []string, error) {
	var warnings []string

	var base *theme.Theme
	if config.ThemeFile != "" {
		t, err := theme.Load(config.ThemeFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load theme: %w", err)
		}
		base = t
	}

	var inline *theme.Theme
	if len(config.Colors) > 0 {
		inline = theme.New(theme.FromMap(config.Colors))
	}

	if base == nil && inline == nil {
		warnings = append(warnings, "no theme configured: only arbitrary button classes will resolve")
	}

	return theme.Merge(base, inline), warnings, nil
}

// NewMatcher returns a button matcher over th using the configured text colors.
func NewMatcher(th *theme.Theme, config Config) *rules.Matcher {
	return rules.NewMatcher(th, rules.TextColors{
		Dark:  config.DarkText,
		Light: config.LightText,
	})
}

// Generate scans the configured files and renders CSS for every button class
// found. The stylesheet is written to OutputFile when one is set.
func Generate(config Config) (*GenerateResult, error) {
	log := config.logger()
	result := &GenerateResult{}

	th, warnings, err := LoadTheme(config)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, warnings...)
	log.Debug("theme loaded",
		zap.String("file", config.ThemeFile),
		zap.Int("colors", len(th.Flat())))

	refs, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	log.Debug("files scanned",
		zap.Strings("patterns", config.ScanPaths),
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	if stats.FilesScanned == 0 {
		result.Warnings = append(result.Warnings, "no files matched the scan patterns")
	}

	candidates := Candidates(refs)
	result.CandidatesFound = len(candidates)

	matcher := NewMatcher(th, config)
	var matches []rules.Match
	for _, c := range candidates {
		m, ok := matcher.Match(c.Class)
		if !ok {
			result.Unmatched = append(result.Unmatched, c.Class)
			log.Debug("no rule resolves candidate", zap.String("class", c.Class))
			continue
		}
		log.Debug("candidate resolved",
			zap.String("class", c.Class),
			zap.String("rule", m.Rule),
			zap.Stringer("kind", m.Result.Kind))
		matches = append(matches, m)
	}
	result.RulesGenerated = len(matches)
	result.CSS = RenderStylesheet(matches)

	if config.OutputFile != "" {
		if err := writeStylesheet(config.OutputFile, result.CSS); err != nil {
			return nil, err
		}
		log.Info("stylesheet written",
			zap.String("path", config.OutputFile),
			zap.Int("rules", result.RulesGenerated))
	}

	return result, nil
}

func writeStylesheet(path, css string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// #nosec G306 - generated stylesheet is meant to be world-readable
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
