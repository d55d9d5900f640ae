package cssbuttons

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssbuttons/internal/rules"
	"github.com/yacobolo/cssbuttons/internal/theme"
)

func previewMatches(t *testing.T, classes ...string) []rules.Match {
	t.Helper()
	th := theme.New(theme.FromMap(map[string]any{
		"blue": map[string]any{"400": "#60a5fa", "700": "#1d4ed8"},
	}))
	m := rules.NewMatcher(th, rules.DefaultTextColors)

	var matches []rules.Match
	for _, class := range classes {
		got, ok := m.Match(class)
		require.True(t, ok, class)
		matches = append(matches, got)
	}
	return matches
}

func TestBuildPreview(t *testing.T) {
	entries, err := BuildPreview(previewMatches(t,
		"button-blue-700",
		"button-ghost-blue-400",
		"button-[rgb(255,_255,_255)]",
	))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, PreviewEntry{
		Class:    "button-blue-700",
		Rule:     rules.RuleSolid,
		Swatches: []Swatch{{Background: "#1d4ed8", Foreground: "#fff"}},
	}, entries[0])

	assert.Equal(t, "button-ghost-blue-400", entries[1].Class)
	assert.Equal(t, []Swatch{
		{State: "idle", Foreground: "#60a5fa"},
		{State: "hover", Background: "#60a5fa", Foreground: "#000"},
	}, entries[1].Swatches)

	require.Len(t, entries[2].Swatches, 1)
	assert.Equal(t, "rgb(255, 255, 255)", entries[2].Swatches[0].Background)
	assert.Equal(t, "#000", entries[2].Swatches[0].Foreground)
}

func TestBuildPreview_SkipsNoMatch(t *testing.T) {
	entries, err := BuildPreview([]rules.Match{{Candidate: "button-x"}})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWritePreview_Plain(t *testing.T) {
	entries, err := BuildPreview(previewMatches(t, "button-blue-700", "button-ghost-blue-400"))
	require.NoError(t, err)

	var buf bytes.Buffer
	WritePreview(&buf, entries, false)

	assert.Equal(t,
		"button-blue-700        [Button: bg #1d4ed8, text #fff] (button)\n"+
			"button-ghost-blue-400  [idle: text #60a5fa] [hover: bg #60a5fa, text #000] (button-ghost)\n",
		buf.String())
}

func TestWritePreview_Empty(t *testing.T) {
	var buf bytes.Buffer
	WritePreview(&buf, nil, true)
	assert.Equal(t, "No button classes to preview\n", buf.String())
}

func TestRenderSwatch_Opaque(t *testing.T) {
	got := renderSwatch(Swatch{Background: "hsl(0 0% 0%)", Foreground: "var(--fg)"}, true)
	assert.Equal(t, "[Button: bg hsl(0 0% 0%), text var(--fg)]", got)
}

func TestTerminalColor(t *testing.T) {
	c, ok := terminalColor("rgb(255, 0, 0)")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", string(c))

	_, ok = terminalColor("red")
	assert.False(t, ok)
}
