package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/app"
	"tableflip.dev/notepad/pkg/clock"
	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/note"
	"tableflip.dev/notepad/pkg/printers"
	"tableflip.dev/notepad/pkg/store"
)

type listResult struct {
	Greeting   string      `json:"greeting"`
	Subtitle   string      `json:"subtitle"`
	SelectedID string      `json:"selectedNoteId,omitempty"`
	Notes      []listEntry `json:"notes"`
}

type listEntry struct {
	note.Note
	State     string `json:"state"`
	Timestamp string `json:"timestamp"`
}

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	ido := &options.IDOptions{}
	so := &options.SelectOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the greeting and the notes.",
		Example: `
notepad list
notepad list --select 2
notepad list --select 1 --complete 1 --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			_, svc, done, err := service()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()

			ctx := cmd.Context()
			for _, i := range so.Selects {
				svc.OnNoteTap(ctx, idAt(svc, i))
			}
			for _, i := range so.Completes {
				svc.OnCompleteTap(ctx, idAt(svc, i))
			}
			snap := svc.Snapshot(ctx)

			if oo.JSON {
				return oo.HandleError(oo.WriteJSON(toResult(ctx, svc, snap)))
			}
			pp := printers.PrettyPrint{ShowID: ido.ShowID, Out: oo.Out}
			pp.Greeting(svc.Greeting(ctx))
			pp.Notes(snap)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, ido)
	options.AddSelectArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

// idAt maps a 1-based position to a note id. Out of range positions give an
// empty id, which the store ignores.
func idAt(svc *app.Service, i int) string {
	notes := svc.Store.Notes()
	if i < 1 || i > len(notes) {
		return ""
	}
	return notes[i-1].ID
}

func toResult(ctx context.Context, svc *app.Service, snap store.State) listResult {
	r := listResult{
		Greeting:   svc.Greeting(ctx),
		Subtitle:   clock.Subtitle,
		SelectedID: snap.SelectedID,
		Notes:      make([]listEntry, 0, len(snap.Notes)),
	}
	for _, n := range snap.Notes {
		st, _ := svc.Store.StateOf(n.ID)
		r.Notes = append(r.Notes, listEntry{Note: n, State: st.String(), Timestamp: svc.Timestamp(n)})
	}
	return r
}
