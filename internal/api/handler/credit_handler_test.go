package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"credit-engine/internal/api/handler"
	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/credit"
	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) Create(ctx context.Context, c *credit.Credit) (*credit.Credit, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credit.Credit), args.Error(1)
}

func (m *MockCreditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credit.Credit), args.Error(1)
}

func (m *MockCreditService) FindByCreditCode(ctx context.Context, customerID int64, code uuid.UUID) (*credit.Credit, error) {
	args := m.Called(ctx, customerID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credit.Credit), args.Error(1)
}

var testCreditCode = uuid.MustParse("4f0ac4a1-2f7e-4a5b-9a8e-6f1f54f0c1d2")

func firstInstallment() time.Time {
	return time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
}

func sampleCredit() *credit.Credit {
	return &credit.Credit{
		ID:                   10,
		CreditCode:           testCreditCode,
		CreditValue:          decimal.RequireFromString("1500.5"),
		DayFirstInstallment:  firstInstallment(),
		NumberOfInstallments: 12,
		Status:               credit.StatusInProgress,
		CustomerID:           1,
	}
}

func creditBody(value string, day string, installments int, customerID int64) string {
	return fmt.Sprintf(`{"creditValue":%s,"dayFirstInstallment":%q,"numberOfInstallments":%d,"customerId":%d}`,
		value, day, installments, customerID)
}

func TestNewCreditHandlerPanics(t *testing.T) {
	assert.Panics(t, func() { handler.NewCreditHandler(nil, discardLogger) })
	assert.Panics(t, func() { handler.NewCreditHandler(new(MockCreditService), nil) })
}

func TestSaveCredit(t *testing.T) {
	day := firstInstallment().Format(credit.DateLayout)

	t.Run("issues credit", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		mockService.On("Create", mock.Anything, mock.MatchedBy(func(c *credit.Credit) bool {
			return c.CustomerID == 1 && c.NumberOfInstallments == 12 &&
				c.CreditValue.Equal(decimal.RequireFromString("1500.5")) &&
				c.DayFirstInstallment.Format(credit.DateLayout) == day
		})).Return(sampleCredit(), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/credits", strings.NewReader(creditBody("1500.5", day, 12, 1)))
		w := httptest.NewRecorder()
		h.SaveCredit(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var view dto.CreditView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, testCreditCode.String(), view.CreditCode)
		assert.Equal(t, "1500.50", view.CreditValue.String())
		assert.Equal(t, day, view.DayFirstInstallment)
		assert.Equal(t, "IN_PROGRESS", view.Status)
		assert.Equal(t, int64(1), view.CustomerID)
		mockService.AssertExpectations(t)
	})

	t.Run("rejects past date and installments out of range", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		past := time.Now().AddDate(0, 0, -1).Format(credit.DateLayout)
		req := httptest.NewRequest(http.MethodPost, "/api/credits", strings.NewReader(creditBody("1000", past, 49, 1)))
		w := httptest.NewRecorder()
		h.SaveCredit(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w.Body)
		assert.Equal(t, "ValidationFailed", resp.Exception)
		assert.Equal(t, "must be a future date", resp.Details["dayFirstInstallment"])
		assert.Equal(t, "must be less than or equal to 48", resp.Details["numberOfInstallments"])
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects zero installments and non positive value", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		req := httptest.NewRequest(http.MethodPost, "/api/credits", strings.NewReader(creditBody("0", day, 0, 1)))
		w := httptest.NewRecorder()
		h.SaveCredit(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w.Body)
		assert.Equal(t, "must be greater than or equal to 1", resp.Details["numberOfInstallments"])
		assert.Equal(t, "Invalid Input!", resp.Details["creditValue"])
	})

	t.Run("unknown customer", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewNotFound("Id %d not found!", 99)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/credits", strings.NewReader(creditBody("1000", day, 3, 99)))
		w := httptest.NewRecorder()
		h.SaveCredit(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w.Body)
		assert.Equal(t, "NotFound", resp.Exception)
		assert.Equal(t, "Id 99 not found!", resp.Details["cause"])
	})
}

func TestFindAllByCustomerID(t *testing.T) {
	t.Run("lists credits", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		mockService.On("FindAllByCustomer", mock.Anything, int64(1)).
			Return([]*credit.Credit{sampleCredit()}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/credits?customerId=1", nil)
		w := httptest.NewRecorder()
		h.FindAllByCustomerID(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var list []dto.CreditViewList
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, testCreditCode.String(), list[0].CreditCode)
		assert.Equal(t, 12, list[0].NumberOfInstallments)
		mockService.AssertExpectations(t)
	})

	t.Run("empty list renders as array", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		mockService.On("FindAllByCustomer", mock.Anything, int64(5)).Return([]*credit.Credit{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/credits?customerId=5", nil)
		w := httptest.NewRecorder()
		h.FindAllByCustomerID(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("missing customerId", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		req := httptest.NewRequest(http.MethodGet, "/api/credits", nil)
		w := httptest.NewRecorder()
		h.FindAllByCustomerID(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "FindAllByCustomer", mock.Anything, mock.Anything)
	})
}

func TestFindByCreditCode(t *testing.T) {
	t.Run("owner reads credit", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		mockService.On("FindByCreditCode", mock.Anything, int64(1), testCreditCode).Return(sampleCredit(), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/credits/"+testCreditCode.String()+"?customerId=1", nil)
		req = withURLParam(req, "creditCode", testCreditCode.String())
		w := httptest.NewRecorder()
		h.FindByCreditCode(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var view dto.CreditView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, testCreditCode.String(), view.CreditCode)
		mockService.AssertExpectations(t)
	})

	t.Run("credit of another customer", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		mockService.On("FindByCreditCode", mock.Anything, int64(2), testCreditCode).
			Return(nil, apperrors.NewInvalidUsage("Contact the admin!")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/credits/"+testCreditCode.String()+"?customerId=2", nil)
		req = withURLParam(req, "creditCode", testCreditCode.String())
		w := httptest.NewRecorder()
		h.FindByCreditCode(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w.Body)
		assert.Equal(t, "InvalidUsage", resp.Exception)
		assert.Equal(t, "Contact the admin!", resp.Details["cause"])
	})

	t.Run("unknown credit code", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		mockService.On("FindByCreditCode", mock.Anything, int64(1), testCreditCode).
			Return(nil, apperrors.NewNotFound("Creditcode %s not found!", testCreditCode)).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/credits/x?customerId=1", nil)
		req = withURLParam(req, "creditCode", testCreditCode.String())
		w := httptest.NewRecorder()
		h.FindByCreditCode(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Creditcode "+testCreditCode.String()+" not found!", decodeError(t, w.Body).Details["cause"])
	})

	t.Run("malformed credit code", func(t *testing.T) {
		mockService := new(MockCreditService)
		h := handler.NewCreditHandler(mockService, discardLogger)

		req := httptest.NewRequest(http.MethodGet, "/api/credits/not-a-uuid?customerId=1", nil)
		req = withURLParam(req, "creditCode", "not-a-uuid")
		w := httptest.NewRecorder()
		h.FindByCreditCode(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "FindByCreditCode", mock.Anything, mock.Anything, mock.Anything)
	})
}
