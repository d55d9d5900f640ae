package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yacobolo/cssbuttons/internal/theme"
)

func TestAutocomplete(t *testing.T) {
	th := theme.New(theme.FromMap(map[string]any{
		"blue": map[string]any{"500": "#3b82f6", "DEFAULT": "#2563eb", "600": 12},
		"red":  map[string]any{"100": "#fee2e2"},
		"black": "#000",
		"brand": map[string]any{
			"primary": map[string]any{"100": "#eef"},
		},
		"a": map[string]any{"b": "#fff"},
	}))

	got := Autocomplete(th, false)
	assert.Equal(t, []Suggestion{
		{Class: "button-blue-500", Rule: RuleSolid, Color: "#3b82f6"},
		{Class: "button-red-100", Rule: RuleSolid, Color: "#fee2e2"},
	}, got)

	withGhost := Autocomplete(th, true)
	var classes []string
	for _, s := range withGhost {
		classes = append(classes, s.Class)
	}
	assert.Equal(t, []string{
		"button-blue-500",
		"button-ghost-blue-500",
		"button-ghost-red-100",
		"button-red-100",
	}, classes)
}

func TestAutocomplete_SuggestionsResolve(t *testing.T) {
	th := theme.New(theme.FromMap(map[string]any{
		"green": map[string]any{"50": "#f0fdf4", "900": "#14532d"},
	}))
	m := NewMatcher(th, DefaultTextColors)

	for _, s := range Autocomplete(th, true) {
		got, ok := m.Match(s.Class)
		assert.True(t, ok, s.Class)
		assert.Equal(t, s.Rule, got.Rule, s.Class)
	}
}

func TestAutocomplete_EmptyTheme(t *testing.T) {
	assert.Empty(t, Autocomplete(theme.New(nil), true))
}

func TestTemplates(t *testing.T) {
	assert.Equal(t, []string{
		"button-<color>-<shade>",
		"button-ghost-<color>-<shade>",
		"button-[<color>]",
		"button-ghost-[<color>]",
	}, Templates(ButtonRules()))
}
