package credit

import (
	"fmt"
	"time"

	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinInstallments = 1
	MaxInstallments = 48

	// DateLayout is the wire and storage format of DayFirstInstallment.
	DateLayout = "2006-01-02"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusPaidOff    Status = "PAID_OFF"
	StatusDefaulted  Status = "DEFAULTED"
)

// AllStatuses lists every status in declaration order.
var AllStatuses = []Status{StatusInProgress, StatusPaidOff, StatusDefaulted}

func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusPaidOff, StatusDefaulted:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusPaidOff || s == StatusDefaulted
}

type Credit struct {
	ID                   int64
	CreditCode           uuid.UUID
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	Status               Status
	CustomerID           int64
	CreatedAt            time.Time
}

func NewCredit(customerID int64, value decimal.Decimal, dayFirstInstallment time.Time, installments int) *Credit {
	return &Credit{
		CreditValue:          value,
		DayFirstInstallment:  DateOf(dayFirstInstallment),
		NumberOfInstallments: installments,
		CustomerID:           customerID,
	}
}

// TransitionTo is the only place a credit status may change.
// IN_PROGRESS moves to PAID_OFF or DEFAULTED; both are terminal.
func (c *Credit) TransitionTo(target Status) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: unknown credit status %q", apperrors.ErrInvalidArgument, target)
	}
	if c.Status != StatusInProgress || target == StatusInProgress {
		return fmt.Errorf("%w: credit %s cannot move from %s to %s", apperrors.ErrInvalidUsage, c.CreditCode, c.Status, target)
	}
	c.Status = target
	return nil
}

func (c *Credit) BelongsTo(customerID int64) bool {
	return c.CustomerID == customerID
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsAfterToday reports whether day is a calendar date strictly after now's UTC date.
func IsAfterToday(day, now time.Time) bool {
	return DateOf(day).After(DateOf(now.UTC()))
}
