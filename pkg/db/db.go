package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	// register both sqlite drivers; the config picks one by name.
	_ "github.com/glebarez/go-sqlite"
	_ "github.com/mattn/go-sqlite3"
)

// Supported driver names.
const (
	DriverCgo    = "sqlite3"
	DriverPureGo = "sqlite"
)

//go:embed base.sql
var baseSQL string

// Store is the key-value collaborator the counter and palette stores persist through.
// Values are serialized text; a missing key is reported with ok == false, not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Database is a Store backed by a single sqlite table.
type Database struct {
	conn *sql.DB
}

var _ Store = (*Database)(nil)

// NewDatabase connects to the sqlite database at the given filename using the named driver
// and creates the kv table if it is not present.
func NewDatabase(ctx context.Context, driver, filename string) (*Database, error) {
	if driver != DriverCgo && driver != DriverPureGo {
		return nil, fmt.Errorf("unsupported sqlite driver %q", driver)
	}

	conn, err := sql.Open(driver, filename)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sqlite db at %s: %w", filename, err)
	}

	database := Database{conn: conn}

	err = database.initialize(ctx)
	if err != nil {
		conn.Close()

		return nil, err
	}

	return &database, nil
}

func (d *Database) initialize(ctx context.Context) error {
	// run idempotent setup sql to create empty tables if they don't exist
	if _, err := d.conn.ExecContext(ctx, baseSQL); err != nil {
		return fmt.Errorf("error running base sql: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.conn.Close()
}

// Get returns the value stored under key.
func (d *Database) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := d.conn.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("error reading key %s: %w", key, err)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (d *Database) Set(ctx context.Context, key, value string) error {
	_, err := d.conn.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_datetime) VALUES (?, ?, CURRENT_TIMESTAMP)
		     ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_datetime = excluded.updated_datetime`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("error writing key %s: %w", key, err)
	}

	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (d *Database) Remove(ctx context.Context, key string) error {
	if _, err := d.conn.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("error removing key %s: %w", key, err)
	}

	return nil
}
