package cli

import (
	"flag"
	"fmt"

	"github.com/mrlokans/lexicard/internal/config"
	"github.com/mrlokans/lexicard/internal/entrypoint"
	"github.com/mrlokans/lexicard/internal/scheduler"
)

// ServeDemoCommand runs the demo word service.
type ServeDemoCommand struct {
	Version     string
	Host        string
	Port        int
	RequireAuth bool
}

func NewServeDemoCommand(version string) *ServeDemoCommand {
	return &ServeDemoCommand{Version: version}
}

func (cmd *ServeDemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("serve-demo", flag.ExitOnError)

	fs.StringVar(&cmd.Host, "host", "", "Listen host (default DEMO_HOST)")
	fs.IntVar(&cmd.Port, "port", 0, "Listen port (default DEMO_PORT)")
	fs.BoolVar(&cmd.RequireAuth, "auth", false, "Require a bearer token on word and AI endpoints")

	fs.Usage = usage(fs, "[options]",
		"Run an in-memory word service with seeded words and lectures.",
		"serve-demo",
		"serve-demo -port 8190 -auth",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Port < 0 || cmd.Port > 65535 {
		return fmt.Errorf("invalid port %d", cmd.Port)
	}
	return nil
}

func (cmd *ServeDemoCommand) Run() error {
	cfg := config.NewConfig()
	if cmd.Host != "" {
		cfg.Demo.Host = cmd.Host
	}
	if cmd.Port != 0 {
		cfg.Demo.Port = int32(cmd.Port)
	}
	if cmd.RequireAuth {
		cfg.Demo.RequireAuth = true
	}
	return entrypoint.ServeDemo(cfg, cmd.Version)
}

// WatchCommand keeps the review deck refreshed in the background.
type WatchCommand struct {
	Version   string
	Schedule  string
	ExportDir string
}

func NewWatchCommand(version string) *WatchCommand {
	return &WatchCommand{Version: version}
}

func (cmd *WatchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)

	fs.StringVar(&cmd.Schedule, "schedule", "", "Cron schedule, overrides DECK_REFRESH_SCHEDULE and enables refreshing")
	fs.StringVar(&cmd.ExportDir, "export", "", "Write the deck as markdown notes to this directory after every refresh")

	fs.Usage = usage(fs, "[options]",
		"Refresh the review deck on a schedule. /health and /metrics are served on STATUS_ADDR.",
		`watch -schedule "*/15 * * * *"`,
		"watch -export ~/Obsidian/Cards",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Schedule != "" {
		if err := scheduler.ValidateSchedule(cmd.Schedule); err != nil {
			return fmt.Errorf("invalid -schedule: %w", err)
		}
	}
	return nil
}

func (cmd *WatchCommand) Run() error {
	cfg := config.NewConfig()
	if cmd.Schedule != "" {
		cfg.Deck.RefreshSchedule = cmd.Schedule
		cfg.Deck.RefreshEnabled = true
	}
	if cmd.ExportDir != "" {
		cfg.Deck.ExportDir = cmd.ExportDir
	}

	app, err := entrypoint.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if next, err := scheduler.NextRun(cfg.Deck.RefreshSchedule, timeNow()); err == nil && cfg.Deck.RefreshEnabled {
		fmt.Printf("Refreshing %s, next at %s\n", scheduler.Describe(cfg.Deck.RefreshSchedule), next.Format("15:04"))
	}
	return entrypoint.Watch(app, cmd.Version)
}
