package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yacobolo/cssbuttons/internal/color"
)

// DarkTextMaxShade is the highest shade that still gets dark text on the
// named-color path. The choice ignores the actual color value.
const DarkTextMaxShade = 400

// Rule names.
const (
	RuleSolid          = "button"
	RuleGhost          = "button-ghost"
	RuleSolidArbitrary = "button-arbitrary"
	RuleGhostArbitrary = "button-ghost-arbitrary"
)

var (
	solidPattern          = regexp.MustCompile(`^button-([\w-]+)-(\d+)$`)
	ghostPattern          = regexp.MustCompile(`^button-ghost-([\w-]+)-(\d+)$`)
	solidArbitraryPattern = regexp.MustCompile(`^button-\[(.+)\]$`)
	ghostArbitraryPattern = regexp.MustCompile(`^button-ghost-\[(.+)\]$`)
)

// ButtonRules returns the solid and ghost button rules in evaluation order.
func ButtonRules() []Rule {
	return []Rule{
		{
			Name:    RuleSolid,
			Pattern: solidPattern,
			Resolve: func(m []string, ctx Context) Result {
				bg, ok := lookup(ctx, m[1], m[2])
				if !ok {
					return NoMatch()
				}
				return solid(bg, shadeText(m[2], ctx.Text))
			},
			Autocomplete: []string{"button-<color>-<shade>"},
		},
		{
			Name:    RuleGhost,
			Pattern: ghostPattern,
			Resolve: func(m []string, ctx Context) Result {
				c, ok := lookup(ctx, m[1], m[2])
				if !ok {
					return NoMatch()
				}
				return ghost(ctx.RawSelector, c, shadeText(m[2], ctx.Text))
			},
			Autocomplete: []string{"button-ghost-<color>-<shade>"},
		},
		{
			Name:    RuleSolidArbitrary,
			Pattern: solidArbitraryPattern,
			Resolve: func(m []string, ctx Context) Result {
				bg, ok := arbitraryValue(m[1])
				if !ok {
					return NoMatch()
				}
				return solid(bg, color.ResolveContrast(bg, ctx.Text.Dark, ctx.Text.Light))
			},
			Autocomplete: []string{"button-[<color>]"},
		},
		{
			Name:    RuleGhostArbitrary,
			Pattern: ghostArbitraryPattern,
			Resolve: func(m []string, ctx Context) Result {
				c, ok := arbitraryValue(m[1])
				if !ok {
					return NoMatch()
				}
				return ghost(ctx.RawSelector, c, color.ResolveContrast(c, ctx.Text.Dark, ctx.Text.Light))
			},
			Autocomplete: []string{"button-ghost-[<color>]"},
		},
	}
}

func lookup(ctx Context, name, shade string) (string, bool) {
	if ctx.Theme == nil {
		return "", false
	}
	return ctx.Theme.Color(name, shade)
}

// shadeText applies the shade threshold: light shades get dark text.
func shadeText(shade string, text TextColors) string {
	n, err := strconv.Atoi(shade)
	if err == nil && n <= DarkTextMaxShade {
		return text.Dark
	}
	return text.Light
}

// arbitraryValue decodes the bracket content of button-[...]. Underscores
// stand for spaces since class attributes cannot contain them. Values that
// could end a declaration or block are rejected.
func arbitraryValue(raw string) (string, bool) {
	v := strings.TrimSpace(strings.ReplaceAll(raw, "_", " "))
	return v, v != "" && !strings.ContainsAny(v, ";{}")
}

func solid(bg, text string) Result {
	return Properties(map[string]string{
		"background-color": bg,
		"border-color":     bg,
		"color":            text,
	})
}

func ghost(rawSelector, c, text string) Result {
	sel := "." + EscapeSelector(rawSelector)

	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", sel)
	b.WriteString("  background-color: transparent;\n")
	fmt.Fprintf(&b, "  border-color: %s;\n", c)
	fmt.Fprintf(&b, "  color: %s;\n", c)
	b.WriteString("}\n")
	fmt.Fprintf(&b, "%s:hover,\n%s:focus {\n", sel, sel)
	fmt.Fprintf(&b, "  background-color: %s;\n", c)
	fmt.Fprintf(&b, "  border-color: %s;\n", c)
	fmt.Fprintf(&b, "  color: %s;\n", text)
	b.WriteString("}\n")

	return RawBlock(b.String())
}
