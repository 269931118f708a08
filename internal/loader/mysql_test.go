package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/artmuseum/internal/catalog"
	"github.com/dbsmedya/artmuseum/internal/config"
	"github.com/dbsmedya/artmuseum/internal/sqlutil"
)

func catalogConfig() *config.CatalogConfig {
	cfg := config.DefaultConfig().Catalog
	cfg.Source = config.SourceMySQL
	return &cfg
}

func TestMySQLSource_Query(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(cfg *config.CatalogConfig)
		expected string
	}{
		{
			name:     "default columns",
			mutate:   func(cfg *config.CatalogConfig) {},
			expected: "SELECT `name`, `year`, `cost` FROM `artworks`",
		},
		{
			name: "custom columns with where",
			mutate: func(cfg *config.CatalogConfig) {
				cfg.Table = "paintings"
				cfg.NameColumn = "title"
				cfg.CostColumn = "price_usd"
				cfg.Where = "year > 1800"
			},
			expected: "SELECT `title`, `year`, `price_usd` FROM `paintings` WHERE (year > 1800)",
		},
		{
			name: "where clause is not escaped",
			mutate: func(cfg *config.CatalogConfig) {
				cfg.Where = "name <> 'O''Keeffe' AND `cost` < 500"
			},
			expected: "SELECT `name`, `year`, `cost` FROM `artworks` WHERE (name <> 'O''Keeffe' AND `cost` < 500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := catalogConfig()
			tt.mutate(cfg)

			query, err := NewMySQLSource(nil, cfg).Query()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestMySQLSource_QueryRejectsUnsafeIdentifier(t *testing.T) {
	cfg := catalogConfig()
	cfg.Table = "artworks; DROP TABLE artworks"

	_, err := NewMySQLSource(nil, cfg).Query()

	require.Error(t, err)
	var identErr *sqlutil.InvalidIdentifierError
	assert.ErrorAs(t, err, &identErr)
}

func TestMySQLSource_RecordsEmptyNameAndYearRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT `name`, `year`, `cost` FROM `artworks`").
		WillReturnRows(sqlmock.NewRows([]string{"name", "year", "cost"}).
			AddRow([]byte(""), []byte("1930"), []byte("10")))

	records, err := NewMySQLSource(db, catalogConfig()).Records(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.Record{catalog.NewRecord("", 1930, 10)}, records)

	mock.ExpectQuery("SELECT `name`, `year`, `cost` FROM `artworks`").
		WillReturnRows(sqlmock.NewRows([]string{"name", "year", "cost"}).
			AddRow("Egg, DaVinci", []byte("99999999999999999999"), 10.0))

	_, err = NewMySQLSource(db, catalogConfig()).Records(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1 year")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLSource_Records(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"name", "year", "cost"}).
		AddRow("Gothic, Wood", 1932, 7000.0).
		AddRow([]byte("Last Dinner, DaVinci"), []byte("1503"), []byte("1000.00")).
		AddRow("Der Schrei, Silber", int64(2019), "12160")
	mock.ExpectQuery("SELECT `name`, `year`, `cost` FROM `artworks`").WillReturnRows(rows)

	records, err := NewMySQLSource(db, catalogConfig()).Records(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []catalog.Record{
		catalog.NewRecord("Gothic, Wood", 1932, 7000.0),
		catalog.NewRecord("Last Dinner, DaVinci", 1503, 1000.0),
		catalog.NewRecord("Der Schrei, Silber", 2019, 12160.0),
	}, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLSource_RecordsErrors(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		errText   string
	}{
		{
			name: "query failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnError(errors.New("table missing"))
			},
			errText: "failed to query artworks",
		},
		{
			name: "null name",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows([]string{"name", "year", "cost"}).AddRow(nil, 1930, 10.0))
			},
			errText: "row 1 name",
		},
		{
			name: "bad year",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows([]string{"name", "year", "cost"}).
						AddRow("Egg", 1930, 10.0).
						AddRow("Sunflower", "MCMXXX", 10.0))
			},
			errText: "row 2 year",
		},
		{
			name: "bad cost",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows([]string{"name", "year", "cost"}).AddRow("Egg", 1930, "n/a"))
			},
			errText: "row 1 cost",
		},
		{
			name: "row iteration error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows([]string{"name", "year", "cost"}).
						AddRow("Egg", 1930, 10.0).
						RowError(0, errors.New("connection reset")))
			},
			errText: "error iterating artworks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			tt.mockSetup(mock)

			_, err = NewMySQLSource(db, catalogConfig()).Records(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoad_FromMySQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT `name`, `year`, `cost` FROM `artworks`").WillReturnRows(
		sqlmock.NewRows([]string{"name", "year", "cost"}).
			AddRow("Mona Lisa, DaVinci", 1530, 3000.0).
			AddRow("Starry Night, Van Gogh", 1830, 2000.0).
			AddRow("Mona Lisa, DaVinci", 1530, 3000.0))

	tree := catalog.New()
	stats, err := Load(context.Background(), NewMySQLSource(db, catalogConfig()), tree, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Read)
	assert.Equal(t, int64(2), stats.Inserted)
	assert.Equal(t, int64(1), stats.Duplicates)
	assert.Equal(t, "mysql:artworks", stats.Source)
	best, ok := tree.Best()
	require.True(t, ok)
	assert.Equal(t, "Starry Night, Van Gogh", best.Name)
}
