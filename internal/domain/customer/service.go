package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-engine/internal/event"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"
)

const (
	msgIDNotFound     = "Id %d not found!"
	msgCPFTaken       = "Customer with CPF %s already exists!"
	msgHasCredits     = "Customer %d has credits and cannot be deleted!"
	customerNotFound  = "Customer not found by repository"
	publishFailedLogs = "Customer persisted, but FAILED to publish event"
)

type CustomerService interface {
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	FindByID(ctx context.Context, customerID int64) (*Customer, error)
	Update(ctx context.Context, customerID int64, patch CustomerPatch) (*Customer, error)
	Delete(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	hasher PasswordHasher
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, hasher PasswordHasher, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}

	if eventPublisher == nil {
		eventPublisher = event.NewNopPublisher(logger)
	}

	return &customerService{
		repo:   repo,
		hasher: hasher,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func NewCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID: cust.ID,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		CPF:        cust.CPF,
		Email:      cust.Email,
		Income:     cust.Income,
		ZipCode:    cust.Address.ZipCode,
		Street:     cust.Address.Street,
		CreatedAt:  cust.CreatedAt,
		UpdatedAt:  cust.UpdatedAt,
	}
}

func (s *customerService) Create(ctx context.Context, cust *Customer) (*Customer, error) {
	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	logger := s.logger.With(slog.String("cpf", FormatCPF(cust.CPF)))
	logger.InfoContext(ctx, "Attempting to create new customer")

	hashed, err := s.hasher.Hash(cust.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash customer password", slog.Any("error", err))
		return nil, fmt.Errorf("failed to prepare new customer: %w", err)
	}
	cust.Password = hashed

	logger.InfoContext(ctx, "Calling repository Save")
	if err := s.repo.Save(ctx, cust); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.WarnContext(ctx, "CPF already registered")
			return nil, apperrors.NewConflict(err, msgCPFTaken, FormatCPF(cust.CPF))
		}
		logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	logger = logger.With(slog.Int64("customerID", cust.ID))
	monitoring.RecordCustomerCreated()

	created := event.CustomerCreatedEvent{Timestamp: time.Now(), Payload: NewCustomerEventPayload(cust)}
	if pubErr := s.pub.PublishCustomerCreated(ctx, created); pubErr != nil {
		logger.ErrorContext(ctx, publishFailedLogs, slog.Any("error", pubErr))
	}

	logger.InfoContext(ctx, "Successfully created new customer")
	return cust, nil
}

func (s *customerService) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to get customer by ID")

	logger.DebugContext(ctx, "Calling repository FindByID")
	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return nil, apperrors.NewNotFound(msgIDNotFound, customerID)
		}
		logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}

	logger.InfoContext(ctx, "Successfully retrieved customer")
	return cust, nil
}

func (s *customerService) Update(ctx context.Context, customerID int64, patch CustomerPatch) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to update customer")

	cust, err := s.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if !cust.Apply(patch) {
		logger.InfoContext(ctx, "No change needed, skipping save")
		return cust, nil
	}

	logger.InfoContext(ctx, "Calling repository Save to persist customer changes")
	if err := s.repo.Save(ctx, cust); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Customer disappeared before save completed")
			return nil, apperrors.NewNotFound(msgIDNotFound, customerID)
		}
		logger.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save updated customer %d: %w", customerID, err)
	}

	updated := event.CustomerUpdatedEvent{Timestamp: time.Now(), Payload: NewCustomerEventPayload(cust)}
	if pubErr := s.pub.PublishCustomerUpdated(ctx, updated); pubErr != nil {
		logger.ErrorContext(ctx, publishFailedLogs, slog.Any("error", pubErr))
	}

	logger.InfoContext(ctx, "Successfully updated customer")
	return cust, nil
}

func (s *customerService) Delete(ctx context.Context, customerID int64) error {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to delete customer")

	if _, err := s.FindByID(ctx, customerID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Calling repository Delete")
	if err := s.repo.Delete(ctx, customerID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			logger.WarnContext(ctx, "Customer still owns credits, delete blocked")
			return apperrors.NewConflict(err, msgHasCredits, customerID)
		case errors.Is(err, apperrors.ErrNotFound):
			logger.WarnContext(ctx, "Customer disappeared before delete completed")
			return apperrors.NewNotFound(msgIDNotFound, customerID)
		}
		logger.ErrorContext(ctx, "Repository error deleting customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	monitoring.RecordCustomerDeleted()

	deleted := event.CustomerDeletedEvent{Timestamp: time.Now(), CustomerID: customerID}
	if pubErr := s.pub.PublishCustomerDeleted(ctx, deleted); pubErr != nil {
		logger.ErrorContext(ctx, publishFailedLogs, slog.Any("error", pubErr))
	}

	logger.InfoContext(ctx, "Successfully deleted customer")
	return nil
}
