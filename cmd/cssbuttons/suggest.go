package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbuttons/internal/cssbuttons"
	"github.com/yacobolo/cssbuttons/internal/rules"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "List the button classes the theme supports",
	Long: `List every button-<color>-<shade> class the theme can resolve, for editor
autocomplete. Use --ghost to include ghost variants.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runSuggest,
}

func init() {
	f := suggestCmd.Flags()
	f.Bool("ghost", false, "Include button-ghost-* variants")
	f.Bool("json", false, "Print suggestions as JSON")
	f.Bool("templates", false, "Print the class templates instead")
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	out := cmd.OutOrStdout()

	if getBoolWithFallback("templates", "suggest.templates", false) {
		for _, tpl := range rules.Templates(rules.ButtonRules()) {
			fmt.Fprintln(out, tpl)
		}
		return nil
	}

	th, _, err := cssbuttons.LoadTheme(buildConfig(logger))
	if err != nil {
		return err
	}

	suggestions := rules.Autocomplete(th, getBoolWithFallback("ghost", "suggest.ghost", false))

	if getBoolWithFallback("json", "suggest.json", false) {
		return cssbuttons.WriteSuggestionsJSON(out, suggestions)
	}

	width := 0
	for _, s := range suggestions {
		width = max(width, len(s.Class))
	}
	for _, s := range suggestions {
		fmt.Fprintf(out, "%-*s  %s\n", width, s.Class, s.Color)
	}
	return nil
}
