package commands

import (
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/notepad/pkg/app"
	"tableflip.dev/notepad/pkg/clock"
	"tableflip.dev/notepad/pkg/config"
	"tableflip.dev/notepad/pkg/logger"
)

var (
	loadConfig = config.Load
	now        = time.Now
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "notepad",
		Short: base.Wrap80("A small notepad for the terminal with a greeting for your time of day."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addGreet(topLevel)
	addVersion(topLevel)
}

// service loads config and logging and seeds a Service. The returned func
// flushes the logger.
func service() (*config.Config, *app.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	log, done, err := logger.New(logger.Options{Path: cfg.LogPath, Debug: cfg.Debug})
	if err != nil {
		return nil, nil, nil, err
	}
	at := now()
	svc := app.New(cfg.Seeds(at), cfg.Name, clock.Fixed{At: at}, log)
	return cfg, svc, done, nil
}
