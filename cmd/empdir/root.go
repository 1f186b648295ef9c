package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"empdir/internal/config"
	"empdir/internal/console"
	"empdir/internal/directory"
	"empdir/internal/eventbus"
	"empdir/internal/logging"
	"empdir/internal/seed"
	"empdir/internal/ui"
)

type globalOptions struct {
	ConfigPath string
	SeedPath   string
	LogPath    string
	LogLevel   string
}

type runOptions struct {
	Plain       bool
	NoAltScreen bool
}

func newRootCmd() *cobra.Command {
	var global globalOptions
	var opts runOptions

	cmd := &cobra.Command{
		Use:           "empdir",
		Short:         "Employee directory editor",
		Long:          "Browse, search, add and delete employee records in an in-memory directory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, &global)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("plain") {
				cfg.UI.Plain = opts.Plain
			}
			if opts.NoAltScreen {
				cfg.UI.AltScreen = false
			}
			return run(cmd, cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&global.ConfigPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&global.SeedPath, "seed", "", "TOML file with the initial employees (default: built-in list)")
	pf.StringVar(&global.LogPath, "log", "", "log file, empty string in config disables logging")
	pf.StringVar(&global.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "use the line-mode console instead of the full-screen UI")
	cmd.Flags().BoolVar(&opts.NoAltScreen, "no-alt-screen", false, "render the UI in the main screen buffer")

	cmd.AddCommand(newSeedCmd(&global))
	cmd.AddCommand(newConfigCmd(&global))
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// loadConfig reads the config file and environment, then applies the
// persistent flags the user set explicitly
func loadConfig(cmd *cobra.Command, global *globalOptions) (*config.Config, error) {
	svc := config.NewConfigService()
	if global.ConfigPath != "" {
		svc = config.NewConfigServiceAt(global.ConfigPath)
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.SeedFile = global.SeedPath
	}
	if flags.Changed("log") {
		cfg.LogFile = global.LogPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = global.LogLevel
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	res, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"source":  res.Source,
		"count":   len(res.Employees),
		"skipped": len(res.Skipped),
	}).Info("seed loaded")

	bus := eventbus.New()
	defer bus.Close()
	subscribeEventLog(bus)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loaded := eventbus.SeedLoadedEvent{Count: len(res.Employees), Skipped: len(res.Skipped)}

	if cfg.UI.Plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Info("starting console")
		c := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		sess := directory.NewSession(res.Employees, c,
			directory.WithRenderer(c),
			directory.WithEventBus(bus),
		)
		c.Attach(sess)
		bus.Publish(loaded)
		return c.Run(ctx)
	}

	log.Info("starting UI")
	model := ui.NewModel(bus, cfg, res.Employees)
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	bus.Subscribe(eventbus.EventSeedLoaded, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	bus.Publish(loaded)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("UI interrupted")
			return nil
		}
		return errors.Wrap(err, "run UI")
	}
	log.Info("UI exited normally")
	return nil
}

// subscribeEventLog writes every domain event to the log
func subscribeEventLog(bus eventbus.EventBus) {
	for _, t := range []eventbus.EventType{
		eventbus.EventSeedLoaded,
		eventbus.EventEmployeeAdded,
		eventbus.EventAddRejected,
		eventbus.EventEmployeeDeleted,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchCleared,
		eventbus.EventDetailShown,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.WithFields(log.Fields{
				"event":   e.Type(),
				"payload": fmt.Sprintf("%+v", e),
			}).Info("domain event")
		})
	}
}

// writeSkipped reports seed records that were dropped
func writeSkipped(w io.Writer, skipped []seed.Skipped) {
	for _, s := range skipped {
		fmt.Fprintf(w, "skipped record %d (id %d): %s\n", s.Index, s.Employee.ID, s.Reason)
	}
}
