package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/tuiermo/internal/replay"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay [file]",
		Short: "Score a list of guesses without the terminal UI",
		Long: `replay reads one guess per line from file, or stdin when no file is given,
and prints each scored guess. Mask symbols: '=' right place, '~' elsewhere
in the word, '.' not in the word.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open guesses: %w", err)
				}
				defer f.Close()
				in = f
			}

			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			return replay.Run(cmd.Context(), rt.svc, in, cmd.OutOrStdout())
		},
	}
}
