package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dial-cli/internal/api"
	"dial-cli/internal/config"
	"dial-cli/internal/dashboard"
	"dial-cli/internal/format"
	"dial-cli/internal/logging"
	"dial-cli/internal/model"
	"dial-cli/internal/session"
	"dial-cli/internal/tui"
)

type App struct {
	ConfigPath string
	Server     string
	Session    string
	Demo       bool
	PrettyJSON bool
	Format     string

	cfg      *config.Config
	log      *slog.Logger
	closeLog func() error
	now      func() time.Time
}

func NewRootCmd() *cobra.Command {
	app := &App{now: time.Now}

	cmd := &cobra.Command{
		Use:          "dial",
		Short:        "Terminal dashboard for your plans",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  dial

  # Try it without a server
  dial --demo

  # Print this week's plan as an outline
  dial plan week --format tree
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationNoSetup] != "" {
			return nil
		}
		return app.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("DIAL_CONFIG", ""), "Path to config.jsonc (default: $DIAL_PATH/config.jsonc)")
	cmd.PersistentFlags().StringVar(&app.Server, "server", "", "Plan service base URL (overrides config and DIAL_SERVER)")
	cmd.PersistentFlags().StringVar(&app.Session, "session", "", "Session token (overrides config and DIAL_SESSION)")
	cmd.PersistentFlags().BoolVar(&app.Demo, "demo", false, "Use built-in sample tasks instead of the plan service")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DIAL_FORMAT", "json"), "Output format (json|tree)")

	cmd.AddCommand(newPlanCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// Commands annotated with annotationNoSetup run without loading config or
// opening the log, so they work when the config file is broken.
const annotationNoSetup = "dial.no-setup"

// setup loads config with flag overrides and opens the log file.
func (app *App) setup() error {
	path := app.ConfigPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(app.Server); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := strings.TrimSpace(app.Session); v != "" {
		cfg.Session.Token = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	app.cfg = cfg

	log, closeFn, err := logging.Open(cfg.Log.Dir, cfg.Log.Level, app.now())
	if err != nil {
		return err
	}
	app.log = log
	app.closeLog = closeFn
	app.log.Debug("config loaded", "path", path, "server", cfg.Server.BaseURL, "demo", app.Demo)
	return nil
}

func (app *App) teardown() error {
	if app.closeLog == nil {
		return nil
	}
	err := app.closeLog()
	app.closeLog = nil
	return err
}

func (app *App) client() *api.Client {
	return api.New(app.cfg.Server.BaseURL,
		api.WithSession(session.New(app.cfg.Session.Token)),
		api.WithTimeout(app.cfg.Server.Timeout.Std()),
		api.WithLogger(app.log),
	)
}

// sampleLoader serves the built-in sample plan for --demo.
type sampleLoader struct{}

func (sampleLoader) Today(_ context.Context, now time.Time) (model.Forest, error) {
	return dashboard.SampleForest(now), nil
}

func runTUI(app *App) error {
	defer app.teardown()

	opts := tui.Options{
		Logger:       app.log,
		Glyphs:       app.cfg.TUI.Glyphs,
		Theme:        app.cfg.TUI.Theme,
		TickInterval: app.cfg.TUI.TickInterval.Std(),
		Now:          app.now,
	}
	if app.Demo {
		opts.Loader = sampleLoader{}
		opts.Seed = dashboard.SampleForest(app.now())
	} else {
		opts.Loader = app.client()
		opts.Seed = model.Forest{}
	}
	app.log.Info("tui start", "demo", app.Demo, "server", app.cfg.Server.BaseURL)
	err := tui.Run(opts)
	if err != nil {
		app.log.Error("tui exited", "err", err)
	}
	return err
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
