package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/clock"
	"tableflip.dev/notepad/pkg/commands/options"
)

type greetResult struct {
	Greeting string `json:"greeting"`
	Subtitle string `json:"subtitle"`
	Bucket   string `json:"bucket"`
	Clock    string `json:"clock"`
}

func addGreet(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	ao := &options.AtOptions{}

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print the greeting for the time of day in UTC+7.",
		Example: `
notepad greet
notepad greet --at 2025-06-30T02:05:00Z
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			_, svc, done, err := service()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()

			at, err := ao.GetAt()
			if err != nil {
				return oo.HandleError(fmt.Errorf("invalid --at: %w", err))
			}
			t := svc.Clock.Now()
			if at != nil {
				t = *at
			}

			r := greetResult{
				Greeting: svc.GreetingAt(t),
				Subtitle: clock.Subtitle,
				Bucket:   clock.GreetingBucket(t).String(),
				Clock:    clock.FormatClock(t),
			}
			if oo.JSON {
				return oo.HandleError(oo.WriteJSON(r))
			}
			_, err = fmt.Fprintf(oo.Out, "%s\n%s\n%s\n", r.Greeting, r.Subtitle, r.Clock)
			return err
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddAtArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
