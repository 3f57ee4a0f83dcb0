package options

import (
	"github.com/spf13/cobra"
)

// SelectOptions replays note taps by 1-based position before printing.
type SelectOptions struct {
	Selects   []int
	Completes []int
}

func AddSelectArgs(cmd *cobra.Command, o *SelectOptions) {
	cmd.Flags().IntSliceVar(&o.Selects, "select", nil,
		"Tap the note at this position (1-based) to expand or collapse it. Repeatable.")
	cmd.Flags().IntSliceVar(&o.Completes, "complete", nil,
		"Tap Completed on the note at this position (1-based), applied after --select. Repeatable.")
}
