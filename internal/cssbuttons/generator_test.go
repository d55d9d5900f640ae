package cssbuttons

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/yacobolo/cssbuttons/internal/rules"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testTheme = `colors:
  blue:
    "100": "#dbeafe"
    "500": "#112233"
`

func setupProject(t *testing.T, page string) (string, Config) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "theme.yaml"), testTheme)
	writeFile(t, filepath.Join(dir, "web", "page.templ"), page)

	return dir, Config{
		ScanPaths: []string{filepath.Join(dir, "web", "**", "*.templ")},
		ThemeFile: filepath.Join(dir, "theme.yaml"),
	}
}

func TestGenerate(t *testing.T) {
	dir, config := setupProject(t, `<button class="button-blue-500 w-full">Save</button>
<button class="button-ghost-blue-100">Cancel</button>
<a class="button-[#fff] button-blue-999">Link</a>
`)
	config.OutputFile = filepath.Join(dir, "static", "css", "buttons.css")

	core, logs := observer.New(zapcore.DebugLevel)
	config.Logger = zap.New(core)

	result, err := Generate(config)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 4, result.CandidatesFound)
	assert.Equal(t, 3, result.RulesGenerated)
	assert.Equal(t, []string{"button-blue-999"}, result.Unmatched)
	assert.Empty(t, result.Warnings)

	assert.Contains(t, result.CSS, `.button-blue-500 {
  background-color: #112233;
  border-color: #112233;
  color: #fff;
}`)
	assert.Contains(t, result.CSS, `.button-ghost-blue-100:hover,
.button-ghost-blue-100:focus {
  background-color: #dbeafe;
  border-color: #dbeafe;
  color: #000;
}`)
	assert.Contains(t, result.CSS, `.button-\[\#fff\] {
  background-color: #fff;
  border-color: #fff;
  color: #000;
}`)
	assert.NotContains(t, result.CSS, "button-blue-999")

	written, err := os.ReadFile(config.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, result.CSS, string(written))

	assert.Equal(t, 1, logs.FilterMessage("stylesheet written").Len())
	assert.Equal(t, 1, logs.FilterMessage("no rule resolves candidate").Len())
}

func TestGenerate_ValidCSS(t *testing.T) {
	_, config := setupProject(t, `<div class="button-blue-500 button-ghost-blue-500 button-ghost-[rgb(0,0,0)] button-[hsl(10_20%_30%)]">`)

	result, err := Generate(config)
	require.NoError(t, err)
	require.Equal(t, 4, result.RulesGenerated)

	rulesets := 0
	p := css.NewParser(parse.NewInputString(result.CSS), false)
	for {
		gt, _, _ := p.Next()
		if gt == css.ErrorGrammar {
			require.True(t, errors.Is(p.Err(), io.EOF), "unexpected parse error: %v", p.Err())
			break
		}
		if gt == css.BeginRulesetGrammar {
			rulesets++
		}
	}
	// two ghost buttons contribute two rulesets each
	assert.Equal(t, 6, rulesets)
}

func TestGenerate_NoOutputFile(t *testing.T) {
	dir, config := setupProject(t, `<button class="button-blue-500">`)

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RulesGenerated)

	_, err = os.Stat(filepath.Join(dir, "buttons.css"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_InlineColorsOverrideFile(t *testing.T) {
	_, config := setupProject(t, `<button class="button-blue-500 button-red-100">`)
	config.Colors = map[string]any{
		"blue": map[string]any{"500": "#0000ff"},
		"red":  map[string]any{"100": "#fee2e2"},
	}
	config.DarkText = "#111"

	result, err := Generate(config)
	require.NoError(t, err)

	assert.Equal(t, 2, result.RulesGenerated)
	assert.Contains(t, result.CSS, "background-color: #0000ff;")
	assert.Contains(t, result.CSS, ".button-red-100 {\n  background-color: #fee2e2;\n  border-color: #fee2e2;\n  color: #111;\n}")
}

func TestGenerate_Warnings(t *testing.T) {
	config := Config{ScanPaths: []string{filepath.Join(t.TempDir(), "*.templ")}}

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Len(t, result.Warnings, 2)
	assert.Equal(t, StylesheetHeader, result.CSS)
}

func TestGenerate_MissingTheme(t *testing.T) {
	config := Config{ThemeFile: filepath.Join(t.TempDir(), "missing.yaml")}

	_, err := Generate(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load theme")
}

func TestRenderStylesheet_Order(t *testing.T) {
	matches := []rules.Match{
		{Candidate: "button-[red]", Index: 2, Result: rules.Properties(map[string]string{"color": "#000"})},
		{Candidate: "button-z-100", Index: 0, Result: rules.Properties(map[string]string{"color": "#000"})},
		{Candidate: "button-a-100", Index: 0, Result: rules.Properties(map[string]string{"color": "#000"})},
		{Candidate: "button-ghost-a-100", Index: 1, Result: rules.RawBlock(".raw { color: red; }")},
		{Candidate: "skipped", Index: 0, Result: rules.NoMatch()},
	}

	want := StylesheetHeader + `
.button-a-100 {
  color: #000;
}

.button-z-100 {
  color: #000;
}

.raw { color: red; }

.button-\[red\] {
  color: #000;
}
`
	assert.Equal(t, want, RenderStylesheet(matches))
	assert.Equal(t, "button-[red]", matches[0].Candidate, "input must not be reordered")
}

func TestRenderStylesheet_SortsProperties(t *testing.T) {
	got := RenderStylesheet([]rules.Match{{
		Candidate: "button-x-1",
		Result: rules.Properties(map[string]string{
			"color":            "#fff",
			"background-color": "#000",
			"border-color":     "#000",
		}),
	}})

	assert.Equal(t, StylesheetHeader+`
.button-x-1 {
  background-color: #000;
  border-color: #000;
  color: #fff;
}
`, got)
}
