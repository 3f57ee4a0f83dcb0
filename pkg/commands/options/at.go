package options

import (
	"time"

	"github.com/spf13/cobra"
)

// AtOptions overrides the current instant.
type AtOptions struct {
	AtString string
}

func AddAtArgs(cmd *cobra.Command, o *AtOptions) {
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Use this instant instead of now, example: --at="2025-06-30T09:05:00+07:00".`)
}

// GetAt returns nil when no instant was given.
func (o *AtOptions) GetAt() (*time.Time, error) {
	if o.AtString == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, o.AtString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
