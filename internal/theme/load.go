package theme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ColorPropertyPrefix marks the custom properties imported from CSS themes.
const ColorPropertyPrefix = "--color-"

// Load reads a theme from disk. The format is picked by extension:
// .yaml/.yml and .json documents may hold the tree under a "colors" key or at
// the root; .css files contribute their --color-* custom properties.
func Load(path string) (*Theme, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadDocument(path, yaml.Parser())
	case ".json":
		return loadDocument(path, json.Parser())
	case ".css":
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read theme %s: %w", path, err)
		}
		return ParseCSS(string(content))
	default:
		return nil, fmt.Errorf("unsupported theme format %q", filepath.Ext(path))
	}
}

func loadDocument(path string, parser koanf.Parser) (*Theme, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("loading theme %s: %w", path, err)
	}

	raw := k.Raw()
	if colors, ok := raw["colors"].(map[string]any); ok {
		raw = colors
	}
	return New(FromMap(raw)), nil
}

// ParseCSS builds a theme from --color-<group>[-<shade>] custom properties,
// e.g. "--color-blue-500: #3b82f6" or "--color-black: #000".
// Declarations are read from any rule; later declarations win.
func ParseCSS(content string) (*Theme, error) {
	root := Group(nil)
	p := css.NewParser(parse.NewInputString(content), false)

	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse theme css: %w", err)
			}
			break
		}

		if gt != css.CustomPropertyGrammar {
			continue
		}

		name := string(data)
		if !strings.HasPrefix(name, ColorPropertyPrefix) {
			continue
		}

		var value strings.Builder
		for _, tok := range p.Values() {
			value.Write(tok.Data)
		}

		setColor(root, strings.TrimPrefix(name, ColorPropertyPrefix), strings.TrimSpace(value.String()))
	}

	return New(root), nil
}

// setColor stores value under group/shade. A trailing numeric segment is the
// shade; anything else makes the whole key a bare color.
func setColor(root *Node, key, value string) {
	if key == "" || value == "" {
		return
	}

	group, shade := key, ""
	if i := strings.LastIndex(key, "-"); i > 0 && isDigits(key[i+1:]) {
		group, shade = key[:i], key[i+1:]
	}

	existing := root.Children[group]

	if shade == "" {
		if existing.IsMapping() {
			existing.Children[DefaultKey] = Leaf(value)
		} else {
			root.Children[group] = Leaf(value)
		}
		return
	}

	if !existing.IsMapping() {
		node := Group(nil)
		if existing != nil {
			node.Children[DefaultKey] = existing
		}
		root.Children[group] = node
		existing = node
	}
	existing.Children[shade] = Leaf(value)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
