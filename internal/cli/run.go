package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"songsearch/internal/config"
	"songsearch/internal/deezer"
	"songsearch/internal/eventbus"
	"songsearch/internal/logging"
	"songsearch/internal/screen"
	"songsearch/internal/ui"
)

// e2eEnv makes the screen print a marker the PTY tests wait for
const e2eEnv = "SONGSEARCH_E2E_TEST"

func runSearch(cmd *cobra.Command, configPath string) error {
	// The bus logs through zap's global logger until the configured one
	// is installed below.
	bus := eventbus.New(nil)
	defer bus.Close()

	// Listeners can fire from inside Update, so messages reach the program
	// through a buffered channel instead of a blocking Send.
	msgs := make(chan tea.Msg, 100)
	forward := func(msg tea.Msg) {
		select {
		case msgs <- msg:
		default:
			zap.L().Warn("ui message channel full, dropping message")
		}
	}

	for _, t := range []eventbus.EventType{
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
	} {
		unsubscribe := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			forward(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		return err
	}
	cfg, err = config.Overrides(cfg, cmd.Flags())
	if err != nil {
		return err
	}

	log, closer, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closer.Close()
	defer zap.ReplaceGlobals(log)()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := deezer.NewClient(deezer.Config{
		Endpoint:          cfg.Deezer.Endpoint,
		Timeout:           cfg.Deezer.Timeout.Duration,
		RequestsPerWindow: cfg.Deezer.RequestsPerWindow,
		Window:            cfg.Deezer.Window.Duration,
	}, log)

	store := screen.NewStore()
	dispatcher := screen.NewDispatcher(store, client,
		screen.WithCancelStale(cfg.Search.CancelStale),
		screen.WithEventBus(bus),
		screen.WithLogger(log),
	)

	opts := ui.OptionsFromConfig(cfg)
	opts.ReadyMarker = os.Getenv(e2eEnv) == "1"
	model := ui.NewModel(ctx, store, dispatcher, log, opts)

	var programOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)

	unsubscribeStore := store.Subscribe(func(s screen.Snapshot) {
		forward(ui.StoreChangedMsg{Snapshot: s})
	})
	defer unsubscribeStore()

	go func() {
		for {
			select {
			case <-ctx.Done():
				p.Quit()
				return
			case msg := <-msgs:
				p.Send(msg)
			}
		}
	}()

	log.Info("starting ui",
		zap.String("config", configSvc.Path()),
		zap.String("endpoint", client.Endpoint()),
		zap.Bool("cancel_stale", cfg.Search.CancelStale))

	if _, err := p.Run(); err != nil {
		log.Error("error running program", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("ui exited normally")
	return nil
}

// loadOrCreateConfig loads the config file, writing the defaults out on first run
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	_, statErr := os.Stat(configSvc.Path())

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}

	if errors.Is(statErr, os.ErrNotExist) {
		// A read-only config dir is not fatal; the defaults are in memory
		_ = configSvc.Save(cfg)
	}
	return cfg, nil
}
