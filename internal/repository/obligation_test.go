package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complytrack/complytrack/internal/model"
)

func TestObligationCreateAndByID(t *testing.T) {
	repo := NewObligationRepository(testDB(t))

	want := testObligation("Annual List of Managers/Members", time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(want))

	got, err := repo.ByID(want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, model.TierState, got.Type)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.True(t, got.DueDate.Equal(want.DueDate))
}

func TestObligationByIDNotFound(t *testing.T) {
	repo := NewObligationRepository(testDB(t))

	_, err := repo.ByID("no-such-id")
	assert.ErrorIs(t, err, ErrObligationNotFound)
}

func TestObligationAllOrdersByDueDate(t *testing.T) {
	repo := NewObligationRepository(testDB(t))

	late := testObligation("late", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	early := testObligation("early", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	mid := testObligation("mid", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	for _, o := range []*model.Obligation{late, early, mid} {
		require.NoError(t, repo.Create(o))
	}

	items, err := repo.All()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "early", items[0].Name)
	assert.Equal(t, "mid", items[1].Name)
	assert.Equal(t, "late", items[2].Name)
}

func TestObligationUpdateStatus(t *testing.T) {
	repo := NewObligationRepository(testDB(t))

	o := testObligation("State Business License", time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(o))

	updated, err := repo.UpdateStatus(o.ID, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(o.UpdatedAt))

	// the write persisted, not just the returned copy
	got, err := repo.ByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)
}

func TestObligationUpdateStatusNotFound(t *testing.T) {
	repo := NewObligationRepository(testDB(t))

	_, err := repo.UpdateStatus("no-such-id", model.StatusCompleted)
	assert.ErrorIs(t, err, ErrObligationNotFound)
}

func TestObligationDeleteAll(t *testing.T) {
	repo := NewObligationRepository(testDB(t))

	require.NoError(t, repo.Create(testObligation("a", time.Now())))
	require.NoError(t, repo.Create(testObligation("b", time.Now())))
	require.NoError(t, repo.DeleteAll())

	items, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, items)
}
