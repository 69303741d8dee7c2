package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQL keeps every document in a single kv_records table. Postgres is used
// when a DATABASE_URL is configured, an embedded SQLite file otherwise, so
// the service runs with zero external infrastructure in development.
type SQL struct {
	db *sqlx.DB
}

// Open connects to Postgres when databaseURL is non-empty, otherwise to the
// SQLite file at sqlitePath.
func Open(databaseURL, sqlitePath string) (*SQL, error) {
	driver, dsn := "pgx", databaseURL
	if databaseURL == "" {
		driver, dsn = "sqlite3", sqlitePath
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "pgx" {
		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	} else {
		// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureTable(db); err != nil {
		return nil, err
	}
	return &SQL{db: db}, nil
}

func ensureTable(db *sqlx.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS kv_records (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL
)`)
	return err
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	query := s.db.Rebind(`SELECT value FROM kv_records WHERE key = ?`)
	if err := s.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQL) Put(ctx context.Context, key string, value []byte) error {
	query := s.db.Rebind(`
INSERT INTO kv_records (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	_, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC())
	return err
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	query := s.db.Rebind(`DELETE FROM kv_records WHERE key = ?`)
	_, err := s.db.ExecContext(ctx, query, key)
	return err
}

func (s *SQL) Close() error {
	return s.db.Close()
}
