package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/event"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	msgIDNotFound     = "Id %d not found!"
	msgCodeNotFound   = "Creditcode %s not found!"
	msgContactAdmin   = "Contact the admin!"
	publishFailedLogs = "Credit persisted, but FAILED to publish event"
)

type CreditService interface {
	Create(ctx context.Context, credit *Credit) (*Credit, error)
	FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error)
	FindByCreditCode(ctx context.Context, customerID int64, code uuid.UUID) (*Credit, error)
}

// CustomerFinder is the slice of the customer service credits depend on.
type CustomerFinder interface {
	FindByID(ctx context.Context, customerID int64) (*customer.Customer, error)
}

var _ CreditService = (*creditService)(nil)

type creditService struct {
	repo      CreditRepository
	customers CustomerFinder
	pub       event.EventPublisher
	newCode   func() uuid.UUID
	logger    *slog.Logger
}

func NewCreditService(repo CreditRepository, customers CustomerFinder, eventPublisher event.EventPublisher, logger *slog.Logger) CreditService {
	if repo == nil {
		panic("credit repository cannot be nil")
	}
	if customers == nil {
		panic("customer finder cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCreditService, using default stderr handler")
	}

	if eventPublisher == nil {
		eventPublisher = event.NewNopPublisher(logger)
	}

	return &creditService{
		repo:      repo,
		customers: customers,
		pub:       eventPublisher,
		newCode:   uuid.New,
		logger:    logger.With(slog.String("component", "creditService")),
	}
}

func NewCreditEventPayload(c *Credit) event.CreditEventPayload {
	return event.CreditEventPayload{
		CreditCode:           c.CreditCode,
		CreditValue:          c.CreditValue,
		DayFirstInstallment:  c.DayFirstInstallment.Format(DateLayout),
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               string(c.Status),
		CustomerID:           c.CustomerID,
	}
}

func (s *creditService) Create(ctx context.Context, c *Credit) (*Credit, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: credit cannot be nil", apperrors.ErrInvalidArgument)
	}
	logger := s.logger.With(slog.Int64("customerID", c.CustomerID))
	logger.InfoContext(ctx, "Attempting to create new credit")

	if _, err := s.customers.FindByID(ctx, c.CustomerID); err != nil {
		logger.WarnContext(ctx, "Owning customer could not be resolved", slog.Any("error", err))
		return nil, err
	}

	c.CreditCode = s.newCode()
	c.Status = StatusInProgress
	logger = logger.With(slog.String("creditCode", c.CreditCode.String()))

	logger.InfoContext(ctx, "Calling repository Save")
	if err := s.repo.Save(ctx, c); err != nil {
		// The owner was deleted after the lookup above.
		if errors.Is(err, apperrors.ErrConflict) {
			logger.WarnContext(ctx, "Owning customer vanished before the credit was saved", slog.Any("error", err))
			return nil, apperrors.NewNotFound(msgIDNotFound, c.CustomerID)
		}
		logger.ErrorContext(ctx, "Repository failed to save new credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new credit for customer %d: %w", c.CustomerID, err)
	}
	monitoring.RecordCreditIssued()

	created := event.CreditCreatedEvent{Timestamp: time.Now(), Payload: NewCreditEventPayload(c)}
	if pubErr := s.pub.PublishCreditCreated(ctx, created); pubErr != nil {
		logger.ErrorContext(ctx, publishFailedLogs, slog.Any("error", pubErr))
	}

	logger.InfoContext(ctx, "Successfully created new credit")
	return c, nil
}

func (s *creditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to list credits of customer")

	credits, err := s.repo.FindAllByCustomerID(ctx, customerID)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error listing credits", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list credits of customer %d: %w", customerID, err)
	}
	if credits == nil {
		credits = []*Credit{}
	}

	logger.InfoContext(ctx, "Successfully listed credits", slog.Int("count", len(credits)))
	return credits, nil
}

func (s *creditService) FindByCreditCode(ctx context.Context, customerID int64, code uuid.UUID) (*Credit, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID), slog.String("creditCode", code.String()))
	logger.InfoContext(ctx, "Attempting to get credit by code")

	c, err := s.repo.FindByCreditCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Credit not found by repository")
			return nil, apperrors.NewNotFound(msgCodeNotFound, code)
		}
		logger.ErrorContext(ctx, "Repository error finding credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get credit %s: %w", code, err)
	}

	if !c.BelongsTo(customerID) {
		logger.WarnContext(ctx, "Credit requested under a different customer", slog.Int64("ownerID", c.CustomerID))
		return nil, apperrors.NewInvalidUsage(msgContactAdmin)
	}

	logger.InfoContext(ctx, "Successfully retrieved credit")
	return c, nil
}
