package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Annual List of Managers/Members"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("x", 501)))
	assert.NoError(t, ValidateName(strings.Repeat("x", 500)))
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("Tax Filing"))
	assert.Error(t, ValidateCategory(""))
	assert.Error(t, ValidateCategory("   "))
}

func TestValidateTier(t *testing.T) {
	assert.NoError(t, ValidateTier("federal"))
	assert.NoError(t, ValidateTier("state"))
	assert.NoError(t, ValidateTier("local"))
	assert.Error(t, ValidateTier(""))
	assert.Error(t, ValidateTier("Federal"))
	assert.Error(t, ValidateTier("county"))
}

func TestValidateStatus(t *testing.T) {
	assert.NoError(t, ValidateStatus("pending"))
	assert.NoError(t, ValidateStatus("completed"))
	assert.NoError(t, ValidateStatus("overdue"))
	assert.Error(t, ValidateStatus(""))
	assert.Error(t, ValidateStatus("done"))
}

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("2025-08-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDueDate("")
	assert.Error(t, err)

	_, err = ParseDueDate("08/31/2025")
	assert.Error(t, err)

	_, err = ParseDueDate("2025-02-30")
	assert.Error(t, err)
}
