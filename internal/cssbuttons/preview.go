package cssbuttons

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/yacobolo/cssbuttons/internal/color"
	"github.com/yacobolo/cssbuttons/internal/rules"
)

// Swatch is one rendered state of a button.
type Swatch struct {
	State      string // "", "idle" or "hover"
	Background string // empty when transparent
	Foreground string
}

// PreviewEntry is a resolved button with its swatches.
type PreviewEntry struct {
	Class    string
	Rule     string
	Swatches []Swatch
}

// BuildPreview extracts swatches from resolved matches. Property results give
// one swatch; raw blocks give one swatch per ruleset.
func BuildPreview(matches []rules.Match) ([]PreviewEntry, error) {
	entries := make([]PreviewEntry, 0, len(matches))

	for _, m := range matches {
		entry := PreviewEntry{Class: m.Candidate, Rule: m.Rule}

		switch m.Result.Kind {
		case rules.KindProperties:
			entry.Swatches = []Swatch{swatchFrom("", m.Result.Properties)}
		case rules.KindRawBlock:
			swatches, err := rawBlockSwatches(m.Result.CSS)
			if err != nil {
				return nil, fmt.Errorf("preview %s: %w", m.Candidate, err)
			}
			entry.Swatches = swatches
		default:
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func swatchFrom(state string, decls map[string]string) Swatch {
	bg := decls["background-color"]
	if strings.EqualFold(bg, "transparent") {
		bg = ""
	}
	return Swatch{State: state, Background: bg, Foreground: decls["color"]}
}

// rawBlockSwatches reads each ruleset of a literal CSS block. Rulesets whose
// selector mentions :hover are the hover state.
func rawBlockSwatches(block string) ([]Swatch, error) {
	var swatches []Swatch
	p := css.NewParser(parse.NewInputString(block), false)

	var selector string
	var decls map[string]string
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return swatches, nil
		case css.BeginRulesetGrammar:
			selector = joinTokens(p.Values())
			decls = make(map[string]string)
		case css.DeclarationGrammar:
			if decls != nil {
				decls[strings.ToLower(string(data))] = joinTokens(p.Values())
			}
		case css.EndRulesetGrammar:
			state := "idle"
			if strings.Contains(selector, ":hover") {
				state = "hover"
			}
			swatches = append(swatches, swatchFrom(state, decls))
			decls = nil
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.Write(tok.Data)
	}
	return strings.TrimSpace(b.String())
}

// WritePreview prints one line per button. With colors enabled each swatch
// is painted with the button's own colors; colors the terminal cannot
// show (hsl(), named colors, variables) are listed as text only.
func WritePreview(w io.Writer, entries []PreviewEntry, useColors bool) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No button classes to preview")
		return
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Class))
	}

	for _, e := range entries {
		parts := make([]string, 0, len(e.Swatches))
		for _, s := range e.Swatches {
			parts = append(parts, renderSwatch(s, useColors))
		}
		fmt.Fprintf(w, "%-*s  %s %s\n",
			width, e.Class,
			strings.Join(parts, " "),
			RenderStyle(StyleGray, "("+e.Rule+")", useColors))
	}
}

func renderSwatch(s Swatch, useColors bool) string {
	label := "Button"
	if s.State != "" {
		label = s.State
	}

	desc := "text " + s.Foreground
	if s.Background != "" {
		desc = "bg " + s.Background + ", " + desc
	}

	if !useColors {
		return "[" + label + ": " + desc + "]"
	}

	style := lipgloss.NewStyle().Padding(0, 1)
	painted := false
	if c, ok := terminalColor(s.Background); ok {
		style = style.Background(c)
		painted = true
	}
	if c, ok := terminalColor(s.Foreground); ok {
		style = style.Foreground(c)
		painted = true
	}
	if !painted {
		return "[" + label + ": " + desc + "]"
	}
	return style.Render(label)
}

func terminalColor(literal string) (lipgloss.Color, bool) {
	c, ok := color.Parse(literal)
	if !ok {
		return "", false
	}
	return lipgloss.Color(c.Hex()), true
}
