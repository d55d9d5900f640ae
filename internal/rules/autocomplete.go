package rules

import (
	"sort"
	"strings"

	"github.com/yacobolo/cssbuttons/internal/theme"
)

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Class string `json:"class"`
	Rule  string `json:"rule"`
	Color string `json:"color"`
}

// Autocomplete lists the class names the named-color rules resolve for t.
// Names come from the flattened theme; only keys ending in a shade that the
// theme lookup confirms are kept. Ghost variants are included when ghost is
// true. The result is sorted by class name.
func Autocomplete(t *theme.Theme, ghost bool) []Suggestion {
	var out []Suggestion

	for key := range t.Flat() {
		i := strings.LastIndex(key, "-")
		if i <= 0 {
			continue
		}
		name, shade := key[:i], key[i+1:]

		c, ok := t.Color(name, shade)
		if !ok {
			continue
		}

		class := "button-" + key
		if !solidPattern.MatchString(class) {
			continue
		}

		out = append(out, Suggestion{Class: class, Rule: RuleSolid, Color: c})
		if ghost {
			out = append(out, Suggestion{Class: "button-ghost-" + key, Rule: RuleGhost, Color: c})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Class < out[j].Class
	})

	return out
}

// Templates returns the static hint templates of all rules, in rule order.
func Templates(rules []Rule) []string {
	var out []string
	for _, r := range rules {
		out = append(out, r.Autocomplete...)
	}
	return out
}
