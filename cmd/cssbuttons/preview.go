package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbuttons/internal/cssbuttons"
	"github.com/yacobolo/cssbuttons/internal/rules"
)

var previewCmd = &cobra.Command{
	Use:   "preview [class...]",
	Short: "Render button swatches in the terminal",
	Long: `Paint each resolved button with its own colors. Without arguments the
configured paths are scanned; otherwise the given classes are previewed.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	config := buildConfig(logger)
	th, _, err := cssbuttons.LoadTheme(config)
	if err != nil {
		return err
	}

	classes := args
	if len(classes) == 0 {
		refs, _, err := cssbuttons.ScanFiles(config.ScanPaths)
		if err != nil {
			return fmt.Errorf("failed to scan files: %w", err)
		}
		for _, c := range cssbuttons.Candidates(refs) {
			classes = append(classes, c.Class)
		}
	}

	matcher := cssbuttons.NewMatcher(th, config)
	var matches []rules.Match
	for _, class := range classes {
		if m, ok := matcher.Match(class); ok {
			matches = append(matches, m)
		}
	}

	entries, err := cssbuttons.BuildPreview(matches)
	if err != nil {
		return err
	}

	useColors := cssbuttons.ColorsEnabled(getBoolWithFallback("color", "color", false))
	cssbuttons.WritePreview(cmd.OutOrStdout(), entries, useColors)
	return nil
}
