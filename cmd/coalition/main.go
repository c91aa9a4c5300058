package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/coalition/internal/catalog"
	"github.com/mmynk/coalition/internal/config"
	"github.com/mmynk/coalition/internal/simulator"
	"github.com/mmynk/coalition/internal/storage/sqlite"
	"github.com/mmynk/coalition/internal/tui"
	"github.com/mmynk/coalition/pkg/logging"
)

const (
	annotationSkipConfig  = "skip-config"
	annotationInteractive = "interactive"
)

// cli carries the global flags and the configuration they resolve to.
type cli struct {
	configPath  string
	dbPath      string
	catalogPath string
	logLevel    string

	cfg     *config.Config
	logFile io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "coalition",
		Short: "Government formation simulator",
		Long: `coalition picks parties from an election result, adds up their seats,
tells you whether they reach the majority mark, and suggests the smallest
combinations that do.

Run without arguments to start the interactive terminal UI.`,
		SilenceUsage:      true,
		Annotations:       map[string]string{annotationInteractive: "true"},
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { c.teardown() },
		RunE:              c.runTUI,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file (default: "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&c.dbPath, "db", "", "SQLite database path (or set COALITION_DB_PATH env)")
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "Party catalog YAML (default: built-in Bihar 2025)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		c.tuiCmd(),
		c.partiesCmd(),
		c.statusCmd(),
		c.selectCmd(),
		c.findCmd(),
		c.exportCmd(),
		c.reportsCmd(),
		c.serveCmd(),
		c.configCmd(),
	)
	return root
}

func main() {
	// Until the config is loaded, log at LOG_LEVEL.
	logging.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads .env and the config file, applies flag overrides and
// configures logging. Interactive commands log to a file.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationSkipConfig] == "true" {
		return nil
	}

	config.LoadEnvFile("")

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dbPath != "" {
		cfg.DBPath = c.dbPath
	}
	if c.catalogPath != "" {
		cfg.CatalogPath = c.catalogPath
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if cmd.Annotations[annotationInteractive] != "true" {
		logging.Configure(logging.Options{Level: level, Writer: cmd.ErrOrStderr()})
		return nil
	}

	f, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		logging.Configure(logging.Options{Level: level, Writer: io.Discard})
		return nil
	}
	c.logFile = f
	logging.Configure(logging.Options{Level: level, Writer: f, NoColor: true})
	slog.Info("Session opened", "db", cfg.DBPath)
	return nil
}

func (c *cli) teardown() {
	if c.logFile != nil {
		c.logFile.Close()
		c.logFile = nil
	}
}

// openSimulator loads the catalog, opens the store and restores the saved
// state. The returned func closes the store.
func (c *cli) openSimulator(ctx context.Context, opts ...simulator.Option) (*simulator.Simulator, func(), error) {
	cat, err := catalog.Load(c.cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}

	store, err := sqlite.New(c.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("Storage initialized", "database", c.cfg.DBPath)

	opts = append([]simulator.Option{simulator.WithOptions(simulator.Options{
		MaxSize:         c.cfg.Search.MaxSize,
		SuggestionLimit: c.cfg.Search.SuggestionLimit,
		Prune:           c.cfg.Search.Prune,
	})}, opts...)

	sim, err := simulator.New(ctx, cat, store, opts...)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return sim, func() { store.Close() }, nil
}

func (c *cli) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Start the interactive terminal UI (default)",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE:        c.runTUI,
	}
}

func (c *cli) runTUI(cmd *cobra.Command, _ []string) error {
	sim, closeStore, err := c.openSimulator(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	return tui.Run(cmd.Context(), sim)
}
