package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile     string
	logLevel    string
	logFormat   string
	sourceKind  string
	catalogPath string
	noColor     bool
	asciiOnly   bool
)

var rootCmd = &cobra.Command{
	Use:   "artmuseum",
	Short: "Artwork catalog query tool",
	Long: `A command-line catalog for an art gallery. Artworks are kept in a binary
search tree ordered by year, then cost, then name, and can be loaded from a
catalog file or a MySQL table.

Features:
  - Ordered listing and tree diagrams of the collection
  - Exact lookup and year/budget searches
  - Best (most recent, most expensive) artwork
  - Buying (removing) artworks from the catalog`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "artmuseum.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Catalog overrides
	rootCmd.PersistentFlags().StringVar(&sourceKind, "source", "",
		"Override catalog source (file, mysql)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "",
		"Override catalog file path")

	// Display overrides
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable coloured output")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii", false,
		"Draw tree diagrams with ASCII characters only")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel    string
	LogFormat   string
	Source      string
	CatalogPath string
	NoColor     bool
	Ascii       bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		Source:      sourceKind,
		CatalogPath: catalogPath,
		NoColor:     noColor,
		Ascii:       asciiOnly,
	}
}
