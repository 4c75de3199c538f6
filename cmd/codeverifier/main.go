// Codeverifier is a segmented one-time-code entry widget for the terminal.
//
// It shows one box per character of the expected code, captures typing in a
// hidden input, and reports when the code is fully and correctly entered.
//
// Usage:
//
//	codeverifier [command] [flags]
//
// Running without arguments opens the interactive code field.
// See 'codeverifier --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/muurk/codeverifier/internal/config"
	"github.com/muurk/codeverifier/internal/logging"
	"github.com/muurk/codeverifier/internal/tui"
	"github.com/muurk/codeverifier/internal/ui"
	"github.com/muurk/codeverifier/internal/version"
)

// Global flags
var (
	codeFlag      string
	configPath    string
	secureFlag    bool
	exitOnSuccess bool
	logLevel      string
	logFile       string
)

// registry is loaded once per invocation by the root PersistentPreRunE
var registry *config.Registry

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codeverifier",
	Short: "Segmented one-time-code entry",
	Long: `Codeverifier renders one box per character of an expected code and
reports whether the typed text matches it exactly.

If no command is specified, the interactive code field opens.`,
	Example: `  # Enter the demo code from the config file
  codeverifier

  # Enter a specific code, masking typed characters
  codeverifier --code 4821 --secure`,
	Version:           version.Full(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnvironment,
	RunE:              runInteractive,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&codeFlag, "code", "", "Expected code (defaults to preferences.demo_code)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (defaults to the user config directory)")
	rootCmd.PersistentFlags().BoolVar(&secureFlag, "secure", false, "Mask typed characters")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.Flags().BoolVar(&exitOnSuccess, "exit-on-success", true, "Quit as soon as the code is correct")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Details())
	},
}

// loadEnvironment loads the config file and initializes logging.
// Flags win over the file, the file wins over the environment.
func loadEnvironment(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		registry, err = config.LoadFrom(configPath)
	} else {
		registry, err = config.LoadRegistry()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, file := logLevel, logFile
	if level == "" {
		level = registry.Preferences.LogLevel
	}
	if file == "" {
		file = registry.Preferences.LogFile
	}
	return logging.Initialize(level, file)
}

// resolveCode returns --code, falling back to the configured demo code
func resolveCode() string {
	if codeFlag != "" {
		return codeFlag
	}
	return registry.Preferences.DemoCode
}

// slotStyle builds the slot style from the config file plus --secure
func slotStyle(cmd *cobra.Command) ui.SlotStyle {
	style := slotStyleFromConfig(registry.Style)
	if cmd.Flags().Changed("secure") {
		style.Secure = secureFlag
	}
	return style
}

func slotStyleFromConfig(sc *config.StyleConfig) ui.SlotStyle {
	style := ui.DefaultSlotStyle()
	if sc == nil {
		return style
	}

	style.Layout = sc.Layout()
	style.Secure = sc.Secure
	if r := sc.MaskRune(); r != 0 {
		style.MaskRune = r
	}

	if c := sc.Colors; c != nil {
		setColor(&style.IdleColor, c.Idle)
		setColor(&style.ActiveColor, c.Active)
		setColor(&style.FilledColor, c.Filled)
		setColor(&style.CorrectColor, c.Correct)
		setColor(&style.WrongColor, c.Wrong)
	}
	return style
}

func setColor(dst *lipgloss.Color, value string) {
	if value != "" {
		*dst = lipgloss.Color(value)
	}
}

// runInteractive opens the full-screen code field
func runInteractive(cmd *cobra.Command, args []string) error {
	exit := registry.Preferences.ExitOnSuccess
	if cmd.Flags().Changed("exit-on-success") {
		exit = exitOnSuccess
	}

	res, err := tui.Run(tui.Options{
		Code:          resolveCode(),
		Style:         slotStyle(cmd),
		ExitOnSuccess: exit,
	})
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if res.Correct {
		p.PrintSuccess("Code accepted", map[string]string{
			"Edits": fmt.Sprintf("%d", res.Edits),
		})
		return nil
	}

	p.PrintError("Code not entered", nil, []string{
		"Type every character of the code, then wait for the boxes to turn green",
		"Input is case-sensitive and is compared exactly",
	})
	return errCodeNotEntered
}
