package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muurk/codeverifier/internal/config"
	"github.com/muurk/codeverifier/internal/logging"
	"github.com/muurk/codeverifier/internal/ui"
	"github.com/muurk/codeverifier/internal/verifier"
)

var (
	errCodeNotEntered = errors.New("code was not entered correctly")
	errCodeIncorrect  = errors.New("final input does not match the code")
)

var forceInit bool

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
}

// checkCmd replays edits without a terminal UI
var checkCmd = &cobra.Command{
	Use:   "check [input...]",
	Short: "Replay inputs against a code without the interactive field",
	Long: `Replay each argument as one edit of the hidden input, in order.

Every edit prints the resulting slots and the notifications the field would
send: onEdit for every edit, onCodeFilled only when correctness changes.
The command fails when the last input does not match the code.`,
	Example: `  # Type a code one character at a time
  codeverifier check --code 1234 1 12 123 1234

  # Delete back to empty after a correct entry
  codeverifier check --code 00 0 00 ""`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	code, err := verifier.NewCode(resolveCode())
	if err != nil {
		return fmt.Errorf("invalid --code: %w", err)
	}
	style := slotStyle(cmd)
	if err := style.Layout.Validate(); err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Code Check", "codeverifier check", map[string]string{
		"Slots":  strconv.Itoa(code.Len()),
		"Inputs": strconv.Itoa(len(args)),
	})
	p.Newline()

	step := 0
	session, err := verifier.New(verifier.Config{
		Code: code,
		OnEdit: func(text string) {
			shown := text
			if style.Secure {
				shown = strconv.Itoa(len(text)) + " bytes"
			}
			p.PrintEdit(step, shown)
		},
		OnCodeFilled: func(correct bool) {
			logging.LogCorrectness(correct)
			p.PrintFilled(correct)
		},
	})
	if err != nil {
		return err
	}
	logging.LogSession(code.Len(), style.Secure)

	for i, input := range args {
		step = i + 1
		change := session.TextChanged(input)
		logging.LogEdit(len(input), verifier.Filled(change.Fields), code.Len())
		p.PrintSlots(change.Fields, change.Correct, style)
		p.Newline()
	}

	if session.Correct() {
		p.PrintSuccess("Code accepted", map[string]string{
			"Edits": strconv.Itoa(len(args)),
		})
		return nil
	}

	p.PrintError("Code rejected", errCodeIncorrect, nil)
	return errCodeIncorrect
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := registry.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		var err error
		if configPath != "" {
			path = configPath
			if _, statErr := os.Stat(path); statErr == nil && !forceInit {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			}
			err = config.NewRegistry().SaveTo(path)
		} else {
			path, err = config.CreateDefaultConfig(forceInit)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}
