package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and catalog source",
	Long: `Validate checks the configuration file and then loads the configured
catalog to make sure every record can be read.

Checks performed:
  - Configuration syntax and required fields
  - Database connectivity (mysql source only)
  - Every catalog row parses into a name, year and cost
  - Duplicate records are reported

Example:
  artmuseum validate --config artmuseum.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := newPrinter(cmd, cfg)
	p.Header("Configuration Validation")
	fmt.Fprintf(out, "Config file: %s\n", GetConfigFile())
	if cfg.UsesDatabase() {
		fmt.Fprintf(out, "Catalog source: mysql %s@%s:%d/%s table %s\n",
			cfg.Database.User, cfg.Database.Host, cfg.Database.Port,
			cfg.Database.Database, cfg.Catalog.Table)
	} else {
		fmt.Fprintf(out, "Catalog source: file %s\n", cfg.Catalog.Path)
	}
	p.Status(true, "configuration is valid")

	s, err := openSession(cmd)
	if err != nil {
		p.Status(false, "catalog could not be loaded: %v", err)
		return fmt.Errorf("validation failed: %w", err)
	}
	defer s.Close()

	if s.db != nil {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := s.db.Ping(ctx); err != nil {
			p.Status(false, "database connection failed: %v", err)
			return fmt.Errorf("validation failed: %w", err)
		}
		p.Status(true, "database connection ok")
	}

	p.Status(true, "loaded %d artwork(s) from %s", s.stats.Inserted, s.stats.Source)
	if s.stats.Rejected() {
		p.Status(false, "%d duplicate record(s) skipped", s.stats.Duplicates)
	}

	fmt.Fprintln(out, "=== Validation Complete ===")
	return nil
}
