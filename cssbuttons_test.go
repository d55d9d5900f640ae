package cssbuttons

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	got := Flatten(map[string]any{
		"a": map[string]any{"b": "#fff", "DEFAULT": "#000"},
	})
	assert.Equal(t, map[string]any{"a-b": "#fff", "a": "#000"}, got)
}

func TestResolveContrast(t *testing.T) {
	assert.Equal(t, "dark", ResolveContrast("#ffffff", "dark", "light"))
	assert.Equal(t, "light", ResolveContrast("#000000", "dark", "light"))
	assert.Equal(t, "light", ResolveContrast("hsl(0 0% 100%)", "dark", "light"))
}

func TestGenerateAndLint(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.templ")
	require.NoError(t, os.WriteFile(page, []byte(`<button class="button-brand-500 button-brand-50">`), 0o644))

	config := Config{
		ScanPaths:  []string{page},
		Colors:     map[string]any{"brand": map[string]any{"500": "#6366f1"}},
		OutputFile: filepath.Join(dir, "out", "buttons.css"),
	}

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RulesGenerated)
	assert.Equal(t, []string{"button-brand-50"}, result.Unmatched)
	assert.FileExists(t, config.OutputFile)

	lintConfig := LintConfig{Config: config}
	lintResult, err := Lint(lintConfig)
	require.NoError(t, err)
	require.Len(t, lintResult.Issues, 1)
	assert.Equal(t, 1, ExitCode(lintResult, false))

	var buf bytes.Buffer
	WriteOutput(&buf, lintResult, DetermineOutputFormat("json", false), lintConfig)
	assert.Contains(t, buf.String(), `"total_issues": 1`)
}
