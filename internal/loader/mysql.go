package loader

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dbsmedya/artmuseum/internal/catalog"
	"github.com/dbsmedya/artmuseum/internal/config"
	"github.com/dbsmedya/artmuseum/internal/sqlutil"
	"github.com/dbsmedya/artmuseum/internal/types"
)

// MySQLSource reads artworks from a MySQL table.
type MySQLSource struct {
	db  *sql.DB
	cfg *config.CatalogConfig
}

// NewMySQLSource creates a MySQLSource over db using the table and column
// names from cfg.
func NewMySQLSource(db *sql.DB, cfg *config.CatalogConfig) *MySQLSource {
	return &MySQLSource{db: db, cfg: cfg}
}

func (s *MySQLSource) Name() string { return "mysql:" + s.cfg.Table }

// Query builds the SELECT statement. Identifiers are validated and quoted.
//
// The optional where clause is appended verbatim inside parentheses and is
// NOT escaped or validated. It comes from the operator's config file and must
// be trusted; never build it from user input.
//
// Rows are read in storage order. Sorting them would turn the tree into a chain.
func (s *MySQLSource) Query() (string, error) {
	idents := []string{s.cfg.NameColumn, s.cfg.YearColumn, s.cfg.CostColumn, s.cfg.Table}
	quoted := make([]string, len(idents))
	for i, ident := range idents {
		q, err := sqlutil.QuoteIdentifierSafe(ident)
		if err != nil {
			return "", err
		}
		quoted[i] = q
	}

	query := fmt.Sprintf("SELECT %s, %s, %s FROM %s", quoted[0], quoted[1], quoted[2], quoted[3])
	if s.cfg.Where != "" {
		query += " WHERE (" + s.cfg.Where + ")"
	}
	return query, nil
}

// Records runs the query and converts every row.
func (s *MySQLSource) Records(ctx context.Context) ([]catalog.Record, error) {
	query, err := s.Query()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query artworks from %s: %w", s.cfg.Table, err)
	}
	defer rows.Close()

	var records []catalog.Record
	row := 0
	for rows.Next() {
		row++
		var rawName, rawYear, rawCost interface{}
		if err := rows.Scan(&rawName, &rawYear, &rawCost); err != nil {
			return nil, fmt.Errorf("failed to scan artwork row %d: %w", row, err)
		}

		name, err := types.ToString(rawName)
		if err != nil {
			return nil, fmt.Errorf("row %d %s: %w", row, s.cfg.NameColumn, err)
		}
		year, err := types.ParseInt(rawYear)
		if err != nil {
			return nil, fmt.Errorf("row %d %s: %w", row, s.cfg.YearColumn, err)
		}
		cost, err := types.ParseFloat64(rawCost)
		if err != nil {
			return nil, fmt.Errorf("row %d %s: %w", row, s.cfg.CostColumn, err)
		}
		records = append(records, catalog.NewRecord(name, year, cost))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artworks from %s: %w", s.cfg.Table, err)
	}
	return records, nil
}
