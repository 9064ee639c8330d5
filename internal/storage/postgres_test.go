package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hookrelay/internal/storage"
	"github.com/mattjoyce/hookrelay/internal/storage/storagetest"
)

func TestOpenPostgresBootstrapsSchema(t *testing.T) {
	db := storagetest.Postgres(t)
	ctx := context.Background()

	var n int
	err := db.QueryRowContext(ctx,
		"SELECT count(*) FROM information_schema.tables WHERE table_name IN (?, ?, ?)",
		"webhook_events", "retry_attempts", "work_queue").Scan(&n)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.NoError(t, storage.Bootstrap(ctx, db))
}
