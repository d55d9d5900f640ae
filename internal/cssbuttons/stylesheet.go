package cssbuttons

import (
	"sort"
	"strings"

	"github.com/yacobolo/cssbuttons/internal/rules"
)

// StylesheetHeader opens every generated stylesheet.
const StylesheetHeader = "/* Code generated by cssbuttons. DO NOT EDIT. */\n"

// RenderStylesheet renders resolved buttons as CSS. Entries are ordered by
// rule position, then class name, so output is stable across runs.
func RenderStylesheet(matches []rules.Match) string {
	sorted := make([]rules.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Index != sorted[j].Index {
			return sorted[i].Index < sorted[j].Index
		}
		return sorted[i].Candidate < sorted[j].Candidate
	})

	var b strings.Builder
	b.WriteString(StylesheetHeader)

	for _, m := range sorted {
		switch m.Result.Kind {
		case rules.KindProperties:
			b.WriteString("\n")
			writePropertiesBlock(&b, m.Candidate, m.Result.Properties)
		case rules.KindRawBlock:
			b.WriteString("\n")
			b.WriteString(m.Result.CSS)
			if !strings.HasSuffix(m.Result.CSS, "\n") {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func writePropertiesBlock(b *strings.Builder, class string, props map[string]string) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString(".")
	b.WriteString(rules.EscapeSelector(class))
	b.WriteString(" {\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(props[name])
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}
