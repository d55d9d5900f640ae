package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssbuttons"
	"go.uber.org/zap"
)

const defaultConfigPath = ".cssbuttons.yaml"

var k = koanf.New(".")

var (
	defaultScanPaths = []string{
		"internal/web/**/*.templ",
		"web/**/*.html",
	}
	defaultOutputFile = "web/static/css/buttons.css"
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSBUTTONS_* prefix)
	if err := k.Load(env.Provider("CSSBUTTONS_", ".", func(s string) string {
		// CSSBUTTONS_THEME_FILE -> theme.file
		// CSSBUTTONS_LINT_STRICT -> lint.strict
		// CSSBUTTONS_VERBOSE -> verbose
		key := strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSBUTTONS_")),
			"_", ".",
		)
		if alias, ok := envAliases[key]; ok {
			return alias
		}
		return key
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envAliases maps env keys spelled after a flag name onto their config key,
// so CSSBUTTONS_DARK_TEXT works as well as CSSBUTTONS_TEXT_DARK.
var envAliases = map[string]string{
	"dark.text":  "text.dark",
	"light.text": "text.light",
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig(logger *zap.Logger) cssbuttons.Config {
	config := cssbuttons.Config{
		OutputFile: getStringWithFallback("output", "generate.output", defaultOutputFile),
		ThemeFile:  getStringWithFallback("theme-file", "theme.file", ""),
		DarkText:   getStringWithFallback("dark-text", "text.dark", ""),
		LightText:  getStringWithFallback("light-text", "text.light", ""),
		Verbose:    getBoolWithFallback("verbose", "verbose", false),
		Logger:     logger,
	}

	if k.Exists("theme.colors") {
		config.Colors = k.Cut("theme.colors").Raw()
	}

	// Handle paths: check flag key first, then config key
	if paths := k.Strings("paths"); len(paths) > 0 {
		config.ScanPaths = paths
	} else if paths := k.Strings("generate.paths"); len(paths) > 0 {
		config.ScanPaths = paths
	} else {
		config.ScanPaths = defaultScanPaths
	}

	return config
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
// Lint scans generate.paths unless lint.paths is set.
func buildLintConfig(logger *zap.Logger) cssbuttons.LintConfig {
	config := buildConfig(logger)
	if paths := k.Strings("paths"); len(paths) == 0 {
		if paths := k.Strings("lint.paths"); len(paths) > 0 {
			config.ScanPaths = paths
		}
	}

	return cssbuttons.LintConfig{
		Config:             config,
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
