// Package loader populates a catalog tree from configured artwork sources.
package loader

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dbsmedya/artmuseum/internal/catalog"
	"github.com/dbsmedya/artmuseum/internal/config"
	"github.com/dbsmedya/artmuseum/internal/logger"
	"github.com/dbsmedya/artmuseum/internal/types"
)

// Source yields artwork records in the order they should be inserted.
// Insertion order determines the shape of the resulting tree.
type Source interface {
	Name() string
	Records(ctx context.Context) ([]catalog.Record, error)
}

// NewSource builds the Source selected by the catalog configuration.
// db is required for the mysql source and ignored otherwise.
func NewSource(cfg *config.CatalogConfig, db *sql.DB) (Source, error) {
	switch cfg.Source {
	case config.SourceFile, "":
		return NewFileSource(cfg.Path), nil
	case config.SourceMySQL:
		if db == nil {
			return nil, fmt.Errorf("mysql catalog source requires a database connection")
		}
		return NewMySQLSource(db, cfg), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// Load reads every record from src and inserts it into tree.
// Records equal to one already stored are counted as duplicates and skipped.
// The context is checked between rows; on cancellation the partial stats are
// returned together with the context error.
func Load(ctx context.Context, src Source, tree *catalog.Tree, log *logger.Logger) (*types.LoadStats, error) {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.WithSource(src.Name()).WithOperation("load")

	start := time.Now()
	stats := &types.LoadStats{Source: src.Name()}

	records, err := src.Records(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to read catalog from %s: %w", src.Name(), err)
	}
	log.Debugw("catalog source read", "rows", len(records))

	for i := range records {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, fmt.Errorf("catalog load interrupted after %d rows: %w", stats.Read, err)
		}
		stats.Read++

		rec := &records[i]
		inserted, err := tree.Insert(rec)
		if err != nil {
			return stats, fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
		if !inserted {
			stats.Duplicates++
			log.WithRecord(rec.Name, rec.Year, rec.Cost).Debug("duplicate artwork skipped")
			continue
		}
		stats.Inserted++
	}

	stats.Duration = time.Since(start)
	log.Infow("catalog loaded",
		"read", stats.Read,
		"inserted", stats.Inserted,
		"duplicates", stats.Duplicates,
		"duration", stats.Duration,
	)
	return stats, nil
}

// MemorySource serves a fixed list of records.
type MemorySource struct {
	name    string
	records []catalog.Record
}

// NewMemorySource creates a Source over records, inserted in the given order.
func NewMemorySource(name string, records ...catalog.Record) *MemorySource {
	return &MemorySource{name: name, records: records}
}

func (s *MemorySource) Name() string { return s.name }

func (s *MemorySource) Records(ctx context.Context) ([]catalog.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]catalog.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
