// Package rules matches utility class names against an ordered list of
// pattern rules and resolves them into CSS.
//
// Rules are evaluated in declaration order. The first rule whose pattern
// matches and whose resolver returns a value wins; a rule that matches the
// pattern but cannot resolve (unknown color, unknown shade) falls through to
// the rules after it.
package rules

import (
	"regexp"
)

// Kind tags a Result.
type Kind int

const (
	// KindNone means the rule did not apply.
	KindNone Kind = iota
	// KindProperties carries a flat property map for the host to wrap in a
	// selector.
	KindProperties
	// KindRawBlock carries complete CSS text, used when pseudo-classes are
	// needed.
	KindRawBlock
)

func (k Kind) String() string {
	switch k {
	case KindProperties:
		return "properties"
	case KindRawBlock:
		return "raw-block"
	default:
		return "none"
	}
}

// Result is what a rule produces for a candidate.
type Result struct {
	Kind       Kind
	Properties map[string]string // set for KindProperties
	CSS        string            // set for KindRawBlock
}

// NoMatch is the "rule does not apply" sentinel.
func NoMatch() Result {
	return Result{}
}

// Properties wraps a property map.
func Properties(props map[string]string) Result {
	return Result{Kind: KindProperties, Properties: props}
}

// RawBlock wraps literal CSS text.
func RawBlock(css string) Result {
	return Result{Kind: KindRawBlock, CSS: css}
}

// Matched reports whether r carries a value.
func (r Result) Matched() bool {
	return r.Kind != KindNone
}

// Palette is the read-only theme lookup a rule may use.
type Palette interface {
	// Color returns colors[name][shade].
	Color(name, shade string) (string, bool)
}

// TextColors are the two fallback text colors a rule chooses between.
type TextColors struct {
	Dark  string // used on light backgrounds
	Light string // used on dark backgrounds
}

// DefaultTextColors is black on light backgrounds, white on dark ones.
var DefaultTextColors = TextColors{Dark: "#000", Light: "#fff"}

// Context is passed to every resolver.
type Context struct {
	Theme       Palette
	RawSelector string // the unescaped candidate, used for literal CSS blocks
	Text        TextColors
}

// Rule pairs a pattern with a resolver.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	// Resolve receives the submatches of Pattern (index 0 is the full match).
	Resolve func(match []string, ctx Context) Result
	// Autocomplete holds editor hint templates such as "button-<color>-<shade>".
	Autocomplete []string
}

// Match is a resolved candidate.
type Match struct {
	Candidate string
	Rule      string
	Index     int // position of the rule in the matcher, used for ordering output
	Result    Result
}

// Matcher resolves candidates against its rules.
type Matcher struct {
	rules   []Rule
	palette Palette
	text    TextColors
}

// NewMatcher builds a matcher over the given rules. Without rules it uses
// ButtonRules. Empty text colors fall back to DefaultTextColors.
func NewMatcher(palette Palette, text TextColors, rules ...Rule) *Matcher {
	if len(rules) == 0 {
		rules = ButtonRules()
	}
	if text.Dark == "" {
		text.Dark = DefaultTextColors.Dark
	}
	if text.Light == "" {
		text.Light = DefaultTextColors.Light
	}
	return &Matcher{rules: rules, palette: palette, text: text}
}

// Rules returns the rules in evaluation order.
func (m *Matcher) Rules() []Rule {
	return m.rules
}

// Text returns the fallback text colors in use.
func (m *Matcher) Text() TextColors {
	return m.text
}

// Match resolves a single candidate. The boolean is false when no rule
// produced a value.
func (m *Matcher) Match(candidate string) (Match, bool) {
	ctx := Context{
		Theme:       m.palette,
		RawSelector: candidate,
		Text:        m.text,
	}

	for i, rule := range m.rules {
		sub := rule.Pattern.FindStringSubmatch(candidate)
		if sub == nil {
			continue
		}

		res := rule.Resolve(sub, ctx)
		if !res.Matched() {
			continue
		}

		return Match{
			Candidate: candidate,
			Rule:      rule.Name,
			Index:     i,
			Result:    res,
		}, true
	}

	return Match{Candidate: candidate}, false
}
