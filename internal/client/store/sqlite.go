// Package store persists the client's non-secret connection settings (host
// and port) in a small sqlite key/value table so they survive restarts.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/blogsync/internal/dbx"
)

const (
	keyHost = "host"
	keyPort = "port"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save upserts host and port in one transaction so a crash cannot leave a
// half-written pair behind.
func (r *SQLiteRepository) Save(ctx context.Context, host string, port int) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyHost, host); err != nil {
			return err
		}
		return set(ctx, tx, keyPort, strconv.Itoa(port))
	})
}

// Load returns the stored settings. A missing host resolves to "" and a
// missing or malformed port resolves to DefaultPort; Load never fails on
// bad stored data.
func (r *SQLiteRepository) Load(ctx context.Context) (string, int, error) {
	host, err := get(ctx, r.db, keyHost)
	if err != nil {
		return "", 0, err
	}

	rawPort, err := get(ctx, r.db, keyPort)
	if err != nil {
		return "", 0, err
	}

	port, convErr := strconv.Atoi(rawPort)
	if rawPort == "" || convErr != nil {
		port = DefaultPort
	}

	return host, port, nil
}

// Clear removes both settings, returning the store to its default state.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM settings WHERE key IN (?, ?)`, keyHost, keyPort); err != nil {
			return fmt.Errorf("failed to clear settings: %w", err)
		}
		return nil
	})
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set settings[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get settings[%s]: %w", key, err)
	}
	return value, nil
}
