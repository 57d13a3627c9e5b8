package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps split read/write Bun connections over the session store.
type DB struct {
	WriteSQL *sql.DB
	ReadSQL  *sql.DB
	W        *bun.DB
	R        *bun.DB
}

// OpenDB initializes sqlite handles: a single-writer connection with an
// immediate tx lock and a small pooled read side.
func OpenDB(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)

	wsql, err := sql.Open("sqlite3", dsn+"&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open write db: %w", err)
	}
	wsql.SetMaxOpenConns(1)
	wsql.SetConnMaxLifetime(15 * time.Minute)

	rsql, err := sql.Open("sqlite3", dsn+"&_query_only=1")
	if err != nil {
		wsql.Close()
		return nil, fmt.Errorf("open read db: %w", err)
	}
	rsql.SetMaxOpenConns(4)
	rsql.SetConnMaxIdleTime(5 * time.Minute)
	rsql.SetConnMaxLifetime(15 * time.Minute)

	return &DB{
		WriteSQL: wsql,
		ReadSQL:  rsql,
		W:        bun.NewDB(wsql, sqlitedialect.New()),
		R:        bun.NewDB(rsql, sqlitedialect.New()),
	}, nil
}

// Close closes read and write handles.
func (db *DB) Close() error {
	if db == nil {
		return nil
	}
	var firstErr error
	if db.W != nil {
		if err := db.W.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if db.R != nil {
		if err := db.R.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
