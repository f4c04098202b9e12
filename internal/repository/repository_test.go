package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/complytrack/complytrack/internal/db"
	"github.com/complytrack/complytrack/internal/model"
)

// testDB opens an in-memory sqlite database with the schema applied. The
// pool is pinned to a single connection; each pooled connection would
// otherwise get its own empty :memory: database.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	err = db.RunMigrations(conn.DB, "sqlite")
	require.NoError(t, err)

	return conn
}

func testObligation(name string, due time.Time) *model.Obligation {
	now := time.Now().UTC()
	return &model.Obligation{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      model.TierState,
		Category:  "Filing",
		DueDate:   due,
		Frequency: "Annual",
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
