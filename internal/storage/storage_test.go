package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteBootstrapsTables(t *testing.T) {
	t.Parallel()

	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "hookrelay.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"tenants", "providers", "webhook_events", "retry_attempts", "work_queue", "audit_log"} {
		var name string
		err := db.QueryRowContext(context.Background(),
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?;", table).Scan(&name)
		require.NoError(t, err, "table %q missing", table)
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "hookrelay.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Bootstrap(ctx, db))
}

func TestRebind(t *testing.T) {
	t.Parallel()

	q := "UPDATE t SET a = ? WHERE id = ? AND b IN (?, ?)"
	assert.Equal(t, q, rebind(DriverSQLite, q))
	assert.Equal(t, "UPDATE t SET a = $1 WHERE id = $2 AND b IN ($3, $4)", rebind(DriverPostgres, q))
}

func TestParseDriver(t *testing.T) {
	t.Parallel()

	cases := map[string]Driver{"": DriverSQLite, "SQLite": DriverSQLite, "postgres": DriverPostgres, "pgx": DriverPostgres}
	for in, want := range cases {
		got, err := ParseDriver(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseDriver("mysql")
	assert.Error(t, err)
}

func TestTimeLayoutSortsLexicographically(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := FormatTime(base)
	b := FormatTime(base.Add(500 * time.Millisecond))
	c := FormatTime(base.Add(time.Second))
	assert.Less(t, a, b)
	assert.Less(t, b, c)

	back, err := ParseTime(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(base.Add(500*time.Millisecond)))
}

func TestWriteAuditDefaultsActor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "hookrelay.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, WriteAudit(ctx, db, AuditEntry{TenantID: "t1", Action: AuditEventRequeued, Subject: "evt"}, time.Now()))

	var actor string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT actor FROM audit_log WHERE subject = ?", "evt").Scan(&actor))
	assert.Equal(t, "system", actor)
}
