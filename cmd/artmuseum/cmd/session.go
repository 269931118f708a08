package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/artmuseum/internal/catalog"
	"github.com/dbsmedya/artmuseum/internal/config"
	"github.com/dbsmedya/artmuseum/internal/database"
	"github.com/dbsmedya/artmuseum/internal/loader"
	"github.com/dbsmedya/artmuseum/internal/logger"
	"github.com/dbsmedya/artmuseum/internal/report"
	"github.com/dbsmedya/artmuseum/internal/types"
)

// session is a loaded catalog plus everything needed to report on it.
type session struct {
	cfg     *config.Config
	log     *logger.Logger
	db      *database.Manager
	tree    *catalog.Tree
	stats   *types.LoadStats
	printer *report.Printer
	stop    context.CancelFunc
}

// loadConfig reads the configuration file and applies CLI overrides.
// A missing default config file falls back to defaults; a file named
// explicitly with --config must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile := GetConfigFile()

	var cfg *config.Config
	var err error
	if f := cmd.Flag("config"); f != nil && f.Changed {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadOrDefault(configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Source, overrides.CatalogPath,
		overrides.NoColor, overrides.Ascii)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads the configured catalog into a fresh tree.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s := &session{
		cfg:     cfg,
		log:     log,
		tree:    catalog.New(),
		printer: newPrinter(cmd, cfg),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var db *sql.DB
	if cfg.UsesDatabase() {
		ctx, s.stop = database.SetupSignalHandler(ctx, func(sig os.Signal) {
			log.Warnw("interrupted, abandoning catalog load", "signal", sig.String())
		})
		log.WithFields(map[string]interface{}{
			"host":     cfg.Database.Host,
			"database": cfg.Database.Database,
			"table":    cfg.Catalog.Table,
		}).Debug("connecting to catalog database")
		s.db = database.NewManager(&cfg.Database)
		if err := s.db.Connect(ctx); err != nil {
			s.Close()
			return nil, err
		}
		db = s.db.Catalog
	}

	src, err := loader.NewSource(&cfg.Catalog, db)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.stats, err = loader.Load(ctx, src, s.tree, log)
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection and signal handler, if any, and
// flushes the logger.
func (s *session) Close() {
	if s.stop != nil {
		s.stop()
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.log.Warnw("failed to close catalog database", "error", err)
		}
	}
	_ = s.log.Sync()
}

// diagramConfig builds diagram settings from the display configuration.
func (s *session) diagramConfig() *catalog.DiagramConfig {
	cfg := catalog.DefaultDiagramConfig()
	cfg.UseAscii = s.cfg.Display.Ascii
	cfg.MaxLabelWidth = s.cfg.Display.MaxLabelWidth
	return cfg
}

func newPrinter(cmd *cobra.Command, cfg *config.Config) *report.Printer {
	return report.New(cmd.OutOrStdout(), report.Options{
		Color:        cfg.Display.Color,
		MaxNameWidth: cfg.Display.MaxLabelWidth,
	})
}
