// Package storage opens the relational store shared by the event store,
// the tenant directory, and the SQL work queue. SQLite is the embedded
// default; Postgres is reached through the pgx database/sql driver.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names a supported SQL backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// ParseDriver validates a configured driver name.
func ParseDriver(s string) (Driver, error) {
	switch Driver(strings.ToLower(strings.TrimSpace(s))) {
	case DriverSQLite, "":
		return DriverSQLite, nil
	case DriverPostgres, "pgx":
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("unsupported store driver %q", s)
	}
}

// Querier is satisfied by both *DB and *Tx so helpers can run inside or
// outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps *sql.DB and rewrites '?' placeholders for drivers that need
// numbered parameters.
type DB struct {
	sqlDB  *sql.DB
	driver Driver
}

// Open connects to the configured backend and bootstraps the schema.
func Open(ctx context.Context, driver Driver, target string) (*DB, error) {
	switch driver {
	case DriverSQLite:
		return OpenSQLite(ctx, target)
	case DriverPostgres:
		return OpenPostgres(ctx, target)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// OpenSQLite opens (and creates if needed) the SQLite database at path.
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite directory: %w", err)
	}
	if err := CheckLocalFilesystem(path); err != nil {
		return nil, err
	}

	// Pragmas go in the DSN so every pooled connection gets them.
	dsn := "file:" + path +
		"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_txlock=immediate"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return finishOpen(ctx, &DB{sqlDB: sqlDB, driver: DriverSQLite})
}

// OpenPostgres connects through the pgx stdlib driver.
func OpenPostgres(ctx context.Context, dsn string) (*DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is empty")
	}
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	return finishOpen(ctx, &DB{sqlDB: sqlDB, driver: DriverPostgres})
}

func finishOpen(ctx context.Context, db *DB) (*DB, error) {
	if err := db.sqlDB.PingContext(ctx); err != nil {
		_ = db.sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", db.driver, err)
	}
	if err := Bootstrap(ctx, db); err != nil {
		_ = db.sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Driver reports the backend in use.
func (db *DB) Driver() Driver { return db.driver }

// Close releases the pool.
func (db *DB) Close() error { return db.sqlDB.Close() }

// PingContext checks connectivity.
func (db *DB) PingContext(ctx context.Context) error { return db.sqlDB.PingContext(ctx) }

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.sqlDB.ExecContext(ctx, rebind(db.driver, query), args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.sqlDB.QueryContext(ctx, rebind(db.driver, query), args...)
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.sqlDB.QueryRowContext(ctx, rebind(db.driver, query), args...)
}

// BeginTx starts a transaction. SQLite transactions take the write lock
// immediately (_txlock=immediate) so conditional updates never deadlock.
func (db *DB) BeginTx(ctx context.Context) (*Tx, error) {
	tx, err := db.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, driver: db.driver}, nil
}

// SkipLocked returns the row-locking suffix for claim subqueries.
func (db *DB) SkipLocked() string {
	if db.driver == DriverPostgres {
		return " FOR UPDATE SKIP LOCKED"
	}
	return ""
}

// Tx is a transaction with the same placeholder handling as DB.
type Tx struct {
	tx     *sql.Tx
	driver Driver
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, rebind(t.driver, query), args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return t.tx.QueryContext(ctx, rebind(t.driver, query), args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return t.tx.QueryRowContext(ctx, rebind(t.driver, query), args...)
}

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

// rebind turns '?' placeholders into $1..$n for Postgres. Queries in this
// module never contain literal question marks.
func rebind(driver Driver, query string) string {
	if driver != DriverPostgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// BoolInt stores booleans as 0/1 integers, portable across both backends.
func BoolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
