package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbuttons/internal/cssbuttons"
	"github.com/yacobolo/cssbuttons/internal/rules"
)

var matchCmd = &cobra.Command{
	Use:   "match <class>...",
	Short: "Show the CSS generated for the given classes",
	Long: `Resolve each class against the theme and print the rule that matched and
the CSS it produces. Exits 1 if any class does not resolve.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	config := buildConfig(logger)
	th, warnings, err := cssbuttons.LoadTheme(config)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	useColors := cssbuttons.ColorsEnabled(getBoolWithFallback("color", "color", false))
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), cssbuttons.RenderStyle(cssbuttons.StyleYellow, "Warning: "+w, useColors))
	}

	matcher := cssbuttons.NewMatcher(th, config)
	failed := 0
	for i, class := range args {
		if i > 0 {
			fmt.Fprintln(out)
		}

		m, ok := matcher.Match(class)
		if !ok {
			failed++
			text, _ := cssbuttons.Diagnose(class, th)
			fmt.Fprintln(out, cssbuttons.RenderStyle(cssbuttons.StyleRed, text, useColors))
			continue
		}

		header := fmt.Sprintf("%s → %s (%s)", class, m.Rule, m.Result.Kind)
		fmt.Fprintln(out, cssbuttons.RenderStyle(cssbuttons.StyleCyan, header, useColors))
		css := cssbuttons.RenderStylesheet([]rules.Match{m})
		fmt.Fprint(out, strings.TrimLeft(strings.TrimPrefix(css, cssbuttons.StylesheetHeader), "\n"))
	}

	if failed > 0 {
		return errCheckFailed
	}
	return nil
}
