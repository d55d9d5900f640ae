package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssbuttons",
	Short: "Button utility CSS generator and linter for templ/HTML projects",
	Long: `Scans templates for button-* classes and generates their CSS on demand.
  button-<color>-<shade>         solid button from the theme
  button-ghost-<color>-<shade>   outlined button, filled on hover/focus
  button-[<color>]               solid button from a literal color
  button-ghost-[<color>]         ghost button from a literal color
Text color is picked for contrast against the button color.`,
	// Default behavior: run generate when no subcommand is given.
	// loadConfig is called here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.String("log-level", "", "Log level: debug|info|warn|error (implies logging)")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigPath, "Config file path")
	pf.String("theme-file", "", "Theme file (.yaml, .yml, .json or .css)")
	pf.String("dark-text", "", "Text color on light buttons (default #000)")
	pf.String("light-text", "", "Text color on dark buttons (default #fff)")
	pf.StringSlice("paths", nil, "Glob patterns of files to scan for button classes")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
