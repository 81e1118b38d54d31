package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/sims-api/internal/application/ledger"
	"github.com/smartpark/sims-api/internal/domain"
)

func TestParseMovementDate_CalendarDay(t *testing.T) {
	got, err := ledger.ParseMovementDate("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestParseMovementDate_RFC3339(t *testing.T) {
	got, err := ledger.ParseMovementDate("2024-01-02T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), got)
}

func TestParseMovementDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "02/01/2024", "2024-13-40", "yesterday"} {
		_, err := ledger.ParseMovementDate(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", s)
	}
}

func TestDayRange(t *testing.T) {
	from, to, err := ledger.DayRange("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), to)
}

func TestDayRange_StrictFormat(t *testing.T) {
	// The loose forms ParseMovementDate accepts are not valid day filters.
	for _, s := range []string{"2024-1-2", "2024-01-02T00:00:00Z", "", "20240102"} {
		_, _, err := ledger.DayRange(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", s)
	}
}
