package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

const (
	sqliteURLPrefix    = "sqlite:///"
	sqliteBusyTimeout  = "_busy_timeout=5000"
	defaultPingTimeout = 5 * time.Second
)

// Config selects and locates the database.
type Config struct {
	Driver string
	URL    string
}

// Resolve returns the driver name and DSN to open. A postgres:// URL always
// selects the postgres driver; a sqlite:/// URL is reduced to its file path.
func Resolve(cfg Config) (driver, dsn string) {
	url := strings.TrimSpace(cfg.URL)
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url
	case strings.HasPrefix(url, sqliteURLPrefix):
		return DriverSQLite, strings.TrimPrefix(url, sqliteURLPrefix)
	}
	if cfg.Driver == DriverPostgres {
		return DriverPostgres, url
	}
	return DriverSQLite, url
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, string, error) {
	driver, dsn := Resolve(cfg)
	if dsn == "" {
		return nil, driver, fmt.Errorf("database url is required")
	}

	if driver == DriverSQLite {
		if err := ensureDir(dsn); err != nil {
			return nil, driver, err
		}
		if !strings.Contains(dsn, "?") {
			dsn += "?" + sqliteBusyTimeout
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(pingCtx, driver, dsn)
	if err != nil {
		return nil, driver, fmt.Errorf("connect %s: %w", driver, err)
	}

	// SQLite allows one writer; a single connection avoids "database is locked".
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	return db, driver, nil
}

func ensureDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
