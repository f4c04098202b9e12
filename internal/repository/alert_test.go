package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complytrack/complytrack/internal/model"
)

func testAlert(title string, createdAt time.Time) *model.Alert {
	return &model.Alert{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      model.AlertKindDeadline,
		Source:    "Secretary of State",
		CreatedAt: createdAt,
	}
}

func TestAlertRecentNewestFirst(t *testing.T) {
	repo := NewAlertRepository(testDB(t))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(testAlert("oldest", base)))
	require.NoError(t, repo.Create(testAlert("middle", base.Add(time.Hour))))
	require.NoError(t, repo.Create(testAlert("newest", base.Add(2*time.Hour))))

	alerts, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "newest", alerts[0].Title)
	assert.Equal(t, "middle", alerts[1].Title)
	assert.Equal(t, "oldest", alerts[2].Title)
}

func TestAlertRecentHonorsLimit(t *testing.T) {
	repo := NewAlertRepository(testDB(t))

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		a := testAlert(fmt.Sprintf("alert-%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(a))
	}

	alerts, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, alerts, 10)
	assert.Equal(t, "alert-11", alerts[0].Title)
	assert.Equal(t, "alert-2", alerts[9].Title)
}

func TestAlertDeleteAll(t *testing.T) {
	repo := NewAlertRepository(testDB(t))

	require.NoError(t, repo.Create(testAlert("one", time.Now().UTC())))
	require.NoError(t, repo.DeleteAll())

	alerts, err := repo.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
