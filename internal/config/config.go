// Package config provides configuration structures and loading for artmuseum.
package config

// Catalog source kinds.
const (
	SourceFile  = "file"
	SourceMySQL = "mysql"
)

// Config represents the complete application configuration.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog" mapstructure:"catalog"`
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Display  DisplayConfig  `yaml:"display" mapstructure:"display"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// CatalogConfig describes where the artwork records are loaded from.
type CatalogConfig struct {
	Source     string `yaml:"source" mapstructure:"source"` // "file" or "mysql"
	Path       string `yaml:"path" mapstructure:"path"`     // catalog file (file source)
	Table      string `yaml:"table" mapstructure:"table"`   // artwork table (mysql source)
	NameColumn string `yaml:"name_column" mapstructure:"name_column"`
	YearColumn string `yaml:"year_column" mapstructure:"year_column"`
	CostColumn string `yaml:"cost_column" mapstructure:"cost_column"`
	Where      string `yaml:"where" mapstructure:"where"` // Raw SQL filter, appended unescaped; trusted config only
}

// DatabaseConfig represents a MySQL database connection configuration.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// DisplayConfig represents terminal output settings.
type DisplayConfig struct {
	Color         bool `yaml:"color" mapstructure:"color"`
	Ascii         bool `yaml:"ascii" mapstructure:"ascii"`                     // ASCII-only tree diagrams
	MaxLabelWidth int  `yaml:"max_label_width" mapstructure:"max_label_width"` // 0 = unlimited
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Source:     SourceFile,
			Path:       "catalog.yaml",
			Table:      "artworks",
			NameColumn: "name",
			YearColumn: "year",
			CostColumn: "cost",
		},
		Database: DatabaseConfig{
			Port:               3306,
			TLS:                "preferred",
			MaxConnections:     4,
			MaxIdleConnections: 2,
		},
		Display: DisplayConfig{
			Color:         true,
			Ascii:         false,
			MaxLabelWidth: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// UsesDatabase reports whether the catalog is read from MySQL.
func (c *Config) UsesDatabase() bool {
	return c.Catalog.Source == SourceMySQL
}
