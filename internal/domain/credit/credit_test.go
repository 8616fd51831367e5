package credit

import (
	"testing"
	"time"

	"credit-engine/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredit_TruncatesDate(t *testing.T) {
	day := time.Date(2026, 11, 16, 15, 30, 0, 0, time.UTC)
	c := NewCredit(1, decimal.RequireFromString("1000.00"), day, 12)

	assert.Equal(t, time.Date(2026, 11, 16, 0, 0, 0, 0, time.UTC), c.DayFirstInstallment)
	assert.Equal(t, int64(1), c.CustomerID)
	assert.Equal(t, 12, c.NumberOfInstallments)
	assert.Empty(t, c.Status, "status is assigned by the service")
}

func TestCredit_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr error
	}{
		{"In progress to paid off", StatusInProgress, StatusPaidOff, nil},
		{"In progress to defaulted", StatusInProgress, StatusDefaulted, nil},
		{"In progress to itself", StatusInProgress, StatusInProgress, apperrors.ErrInvalidUsage},
		{"Paid off is terminal", StatusPaidOff, StatusDefaulted, apperrors.ErrInvalidUsage},
		{"Defaulted is terminal", StatusDefaulted, StatusPaidOff, apperrors.ErrInvalidUsage},
		{"Unknown target", StatusInProgress, Status("CANCELLED"), apperrors.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Credit{Status: tt.from}
			err := c.TransitionTo(tt.to)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.to, c.Status)
				assert.True(t, c.Status.IsTerminal())
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.from, c.Status)
		})
	}
}

func TestIsAfterToday(t *testing.T) {
	now := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)

	assert.False(t, IsAfterToday(now, now), "today is not in the future")
	assert.False(t, IsAfterToday(now.AddDate(0, 0, -1), now))
	assert.True(t, IsAfterToday(now.AddDate(0, 0, 1), now))
	assert.True(t, IsAfterToday(now.AddDate(0, 1, 0), now))
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("").IsValid())
}
