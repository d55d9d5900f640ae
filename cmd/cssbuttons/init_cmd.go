package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssbuttons.yaml config file",
	Long:  `Create a .cssbuttons.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		// #nosec G306 - config file is meant to be committed and shared
		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssbuttons configuration

# Shared settings
verbose: false

# Theme: a .yaml/.yml/.json file with a "colors" tree, or a .css file with
# --color-<name>-<shade> custom properties. Inline colors replace file groups.
theme:
  file: ""
  colors:
    brand:
      "100": "#e0e7ff"
      "500": "#6366f1"
      "900": "#312e81"

# Text colors picked for contrast
text:
  dark: "#000"
  light: "#fff"

# Generation settings
generate:
  paths:
    - "internal/web/**/*.templ"
    - "web/**/*.html"
  output: web/static/css/buttons.css

# Linting settings (scans generate.paths unless lint.paths is set)
lint:
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
