package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/clock"
	teaui "tableflip.dev/notepad/pkg/tui/app"
)

var errNoTerminal = errors.New("notepad ui needs an interactive terminal, try `notepad list`")

func addUI(topLevel *cobra.Command) {
	skip := false
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
notepad ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errNoTerminal
			}
			cfg, svc, done, err := service()
			if err != nil {
				return err
			}
			defer done()
			svc.Clock = clock.System{}
			return teaui.Run(svc, teaui.Options{Splash: cfg.Splash, SkipSplash: skip})
		},
	}

	cmd.Flags().BoolVar(&skip, "no-splash", false, "Skip the splash screen.")

	topLevel.AddCommand(cmd)
}
