package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/tuiermo/internal/adapters/tui"
)

// Flag names. Each overrides the config key of the same meaning when set.
const (
	flagConfig       = "config"
	flagWord         = "word"
	flagWordsFile    = "words-file"
	flagLength       = "length"
	flagLogLevel     = "log-level"
	flagLogFile      = "log-file"
	flagMetricsAddr  = "metrics-addr"
	flagRepeatWindow = "repeat-window"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tuiermo",
		Short: "Guess the hidden word in the terminal",
		Long: `tuiermo is a word guessing game. Each guess is scored letter by letter:
green letters are in the right place, yellow ones are in the word elsewhere.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			return tui.Run(cmd.Context(), rt.svc)
		},
	}

	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String(flagConfig, "", "YAML config file (defaults to $TUIERMO_CONFIG)")
	pf.String(flagWord, "", "fixed target word")
	pf.String(flagWordsFile, "", "file of candidate target words, one drawn at random")
	pf.Int(flagLength, 0, "letters per word")
	pf.String(flagLogLevel, "", "log level: debug, info, warn, error")
	pf.String(flagLogFile, "", "write logs to this file")
	pf.String(flagMetricsAddr, "", "serve /metrics and /healthz on this address")
	pf.Int(flagRepeatWindow, 0, "report repeats only within the last n distinct guesses (0 = whole session)")

	rootCmd.AddCommand(newReplayCmd())
	return rootCmd
}
