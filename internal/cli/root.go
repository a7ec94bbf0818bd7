// Package cli provides the command-line interface of the tuisearch demo
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tuisearch/internal/catalog"
	"tuisearch/internal/config"
	"tuisearch/internal/domain"
	"tuisearch/internal/eventbus"
	"tuisearch/internal/history"
	"tuisearch/internal/ui"
)

// readyEnv makes the app print a marker once it is about to draw, for the e2e suite
const readyEnv = "TUISEARCH_E2E_TEST"

type options struct {
	configPath  string
	catalogPath string
	historyPath string
	logPath     string
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "tuisearch",
	Short: "Search a list of terms from the terminal",
	Long: "tuisearch is a terminal search bar with recent searches and a results list.\n" +
		"Terms come from a catalog file with one term per line, optionally followed by a tab and a detail.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, opts)
	},
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "terms file, overrides [catalog] path")
	rootCmd.Flags().StringVar(&opts.historyPath, "history", "", "SQLite file for recent searches, overrides [history] path (empty keeps them in memory)")
	rootCmd.Flags().StringVar(&opts.logPath, "log", "tuisearch.log", "log file, empty disables logging")

	rootCmd.AddCommand(configCmd)
}

func run(cmd *cobra.Command, o options) error {
	if o.logPath != "" {
		f, err := tea.LogToFile(o.logPath, "tuisearch")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	// Startup problems are shown once the UI is up
	var startupErrs []eventbus.ErrorEvent

	configSvc := config.NewConfigServiceWithBus(bus, o.configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		startupErrs = append(startupErrs, eventbus.ErrorEvent{Message: "Using default settings", Err: err})
		cfg = config.DefaultConfig()
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog.Path = o.catalogPath
	}
	if cmd.Flags().Changed("history") {
		cfg.History.Path = o.historyPath
	}

	entries, source, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Printf("Failed to load catalog: %v", err)
		startupErrs = append(startupErrs, eventbus.ErrorEvent{Message: "Using the sample catalog", Err: err})
	}

	store, err := openStore(ctx, cfg.History.Path)
	if err != nil {
		log.Printf("Failed to open history: %v", err)
		startupErrs = append(startupErrs, eventbus.ErrorEvent{Message: "Recent searches will not be saved", Err: err})
	}
	defer store.Close()

	vm := catalog.NewViewModel(entries, bus, cfg.History.Limit)
	stopListening := vm.Listen()
	defer stopListening()

	recorder := history.NewRecorder(store, bus, cfg.History.Limit)
	defer recorder.Stop()

	uiModel := ui.NewModel(cfg, vm, bus)
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	// Forward events to the UI in the background
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{eventbus.EventQueryChanged, eventbus.EventRecentsChanged, eventbus.EventCatalogLoaded, eventbus.EventError} {
		defer bus.Subscribe(t, forwardEvent)()
	}
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	bus.Publish(eventbus.CatalogLoadedEvent{Source: source, Entries: len(entries)})
	for _, e := range startupErrs {
		bus.Publish(e)
	}
	if err := recorder.Publish(ctx); err != nil {
		log.Printf("Failed to load recent selections: %v", err)
	}

	if os.Getenv(readyEnv) != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "__READY__")
	}

	log.Printf("Starting UI...")
	_, err = p.Run()
	// Let pending history writes finish before the store closes
	bus.Close()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// loadCatalog reads the terms file, falling back to the sample catalog
func loadCatalog(path string) ([]domain.Entry, string, error) {
	if path == "" {
		return catalog.Sample(), "sample catalog", nil
	}
	entries, err := catalog.Load(path)
	if err != nil {
		return catalog.Sample(), "sample catalog", err
	}
	if len(entries) == 0 {
		return catalog.Sample(), "sample catalog", fmt.Errorf("catalog %s has no terms", path)
	}
	return entries, path, nil
}

// openStore opens the SQLite history, falling back to memory
func openStore(ctx context.Context, path string) (history.Store, error) {
	if path == "" {
		return history.NewMemoryStore(), nil
	}
	store, err := history.OpenSQLite(ctx, path)
	if err != nil {
		return history.NewMemoryStore(), err
	}
	return store, nil
}
