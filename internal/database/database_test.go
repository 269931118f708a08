package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/artmuseum/internal/config"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.DatabaseConfig
		expected string
	}{
		{
			name: "basic DSN",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "secret",
				Database: "museum",
				TLS:      "preferred",
			},
			expected: "root:secret@tcp(localhost:3306)/museum?parseTime=true&tls=preferred",
		},
		{
			name: "DSN without database",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "secret",
				TLS:      "preferred",
			},
			expected: "root:secret@tcp(localhost:3306)/?parseTime=true&tls=preferred",
		},
		{
			name: "DSN with TLS disabled",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "secret",
				Database: "museum",
				TLS:      "disable",
			},
			expected: "root:secret@tcp(localhost:3306)/museum?parseTime=true&tls=false",
		},
		{
			name: "DSN with TLS required",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "secret",
				Database: "museum",
				TLS:      "required",
			},
			expected: "root:secret@tcp(localhost:3306)/museum?parseTime=true&tls=true",
		},
		{
			name: "Empty password and custom port",
			cfg: &config.DatabaseConfig{
				Host:     "remote-host",
				Port:     33060,
				User:     "curator",
				Database: "museum",
			},
			expected: "curator:@tcp(remote-host:33060)/museum?parseTime=true&tls=preferred",
		},
		{
			name: "Special characters in password",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "p@ss!w0rd#123",
				Database: "museum",
				TLS:      "disable",
			},
			expected: "root:p@ss!w0rd#123@tcp(localhost:3306)/museum?parseTime=true&tls=false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDSN(tt.cfg))
		})
	}
}

func TestNewManager(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "localhost", Port: 3306, User: "root", Database: "museum"}

	manager := NewManager(cfg)

	require.NotNil(t, manager)
	assert.Same(t, cfg, manager.config)
	assert.Nil(t, manager.Catalog, "Catalog should be nil before Connect()")
}

func TestConnect_NilConfig(t *testing.T) {
	manager := NewManager(nil)

	err := manager.Connect(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration is nil")
}

func TestConnect_CancelledContext(t *testing.T) {
	manager := NewManager(&config.DatabaseConfig{Host: "127.0.0.1", Port: 1, User: "nobody", Database: "museum", TLS: "disable"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := manager.Connect(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || strings.Contains(err.Error(), "failed"))
	assert.Nil(t, manager.Catalog)
}

func TestManagerCloseWithoutConnect(t *testing.T) {
	manager := NewManager(&config.DatabaseConfig{Host: "localhost"})

	assert.NoError(t, manager.Close())
}

func TestManagerPingWithoutConnect(t *testing.T) {
	manager := NewManager(&config.DatabaseConfig{Host: "localhost"})

	err := manager.Ping(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}

func TestManagerPingAndClose(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	manager := NewManager(&config.DatabaseConfig{Host: "localhost"})
	manager.Catalog = db

	mock.ExpectPing()
	require.NoError(t, manager.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("gone away"))
	err = manager.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog ping failed")

	mock.ExpectClose()
	require.NoError(t, manager.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
