package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/credit"
	"credit-engine/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreditHandler struct {
	service credit.CreditService
	logger  *slog.Logger
}

func NewCreditHandler(s credit.CreditService, l *slog.Logger) *CreditHandler {
	if s == nil {
		panic("credit service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CreditHandler{
		service: s,
		logger:  l.With("component", "CreditHandler"),
	}
}

func getCreditCodeFromURL(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "creditCode")
	code, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid creditCode: %s", apperrors.ErrInvalidArgument, raw)
	}
	return code, nil
}

// SaveCredit handles POST /api/credits
// @Summary Issue a credit
// @Description Issues a credit to an existing customer. The first installment must fall after today and the installments range from 1 to 48.
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body dto.CreditRequest true "Credit request"
// @Success 201 {object} dto.CreditView "Credit issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or unknown customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [post]
// @Security BearerAuth
func (h *CreditHandler) SaveCredit(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create credit request")

	var req dto.CreditRequest
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

	created, err := h.service.Create(r.Context(), req.ToCredit())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to create credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Credit created successfully", slog.String("creditCode", created.CreditCode.String()))
	respondJSON(w, http.StatusCreated, dto.NewCreditView(created))
}

// FindAllByCustomerID handles GET /api/credits?customerId={id}
// @Summary List the credits of a customer
// @Tags Credits
// @Produce json
// @Param customerId query int true "Customer ID" Minimum(1)
// @Success 200 {array} dto.CreditViewList "Credits of the customer, possibly empty"
// @Failure 400 {object} dto.ErrorResponse "Invalid customerId"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [get]
// @Security BearerAuth
func (h *CreditHandler) FindAllByCustomerID(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from query", slog.Any("error", err))
		respondError(w, err)
		return
	}

	credits, err := h.service.FindAllByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to list credits", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCreditViewList(credits))
}

// FindByCreditCode handles GET /api/credits/{creditCode}?customerId={id}
// @Summary Retrieve a credit by its code
// @Description Only the owning customer may read a credit.
// @Tags Credits
// @Produce json
// @Param creditCode path string true "Credit code" Format(uuid)
// @Param customerId query int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CreditView "Credit details"
// @Failure 400 {object} dto.ErrorResponse "Unknown credit code or credit owned by another customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits/{creditCode} [get]
// @Security BearerAuth
func (h *CreditHandler) FindByCreditCode(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from query", slog.Any("error", err))
		respondError(w, err)
		return
	}
	code, err := getCreditCodeFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get credit code from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	found, err := h.service.FindByCreditCode(r.Context(), customerID, code)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to get credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCreditView(found))
}
