package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func getCustomerIDFromURL(r *http.Request) (int64, error) {
	return parseID(chi.URLParam(r, "id"), "id")
}

// SaveCustomer handles POST /api/customers
// @Summary Register a customer
// @Description Creates a customer. The CPF must be valid and unique; the password is stored hashed and never returned.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CustomerRequest true "Customer registration request"
// @Success 201 {object} dto.CustomerView "Customer successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 409 {object} dto.ErrorResponse "CPF already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers [post]
// @Security BearerAuth
func (h *CustomerHandler) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToCustomer())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to create customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.Int64("customerID", created.ID))
	respondJSON(w, http.StatusCreated, dto.NewCustomerView(created))
}

// FindCustomerByID handles GET /api/customers/{id}
// @Summary Retrieve a customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CustomerView "Customer details"
// @Failure 400 {object} dto.ErrorResponse "Invalid id or customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers/{id} [get]
// @Security BearerAuth
func (h *CustomerHandler) FindCustomerByID(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	found, err := h.service.FindByID(r.Context(), customerID)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to get customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerView(found))
}

// UpdateCustomer handles PATCH /api/customers?customerId={id}
// @Summary Update a customer
// @Description Changes first name, last name, income, zip code and street. CPF, e-mail and password are immutable.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerId query int true "Customer ID" Minimum(1)
// @Param request body dto.CustomerUpdateRequest true "Customer update request"
// @Success 200 {object} dto.CustomerView "Updated customer"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers [patch]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from query", slog.Any("error", err))
		respondError(w, err)
		return
	}

	var req dto.CustomerUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	updated, err := h.service.Update(r.Context(), customerID, req.ToPatch())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to update customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer updated successfully", slog.Int64("customerID", customerID))
	respondJSON(w, http.StatusOK, dto.NewCustomerView(updated))
}

// DeleteCustomer handles DELETE /api/customers/{id}
// @Summary Delete a customer
// @Description Deletes a customer that owns no credits.
// @Tags Customers
// @Param id path int true "Customer ID" Minimum(1)
// @Success 204 "Customer deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id or customer not found"
// @Failure 409 {object} dto.ErrorResponse "Customer still owns credits"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers/{id} [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to delete customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted successfully", slog.Int64("customerID", customerID))
	w.WriteHeader(http.StatusNoContent)
}
