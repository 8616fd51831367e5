package dto

import (
	"encoding/json"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type CreditRequest struct {
	CreditValue          *decimal.Decimal `json:"creditValue" validate:"required" swaggertype:"number" example:"1000.00"`
	DayFirstInstallment  string           `json:"dayFirstInstallment" validate:"required,datetime=2006-01-02,futuredate" example:"2026-11-16"`
	NumberOfInstallments int              `json:"numberOfInstallments" validate:"min=1,max=48" example:"12"`
	CustomerID           int64            `json:"customerId" validate:"required,gt=0" example:"1"`
}

func (r *CreditRequest) Validate() error {
	errs := validateStruct(r)
	if r.CreditValue != nil && !r.CreditValue.IsPositive() {
		errs = append(errs, &apperrors.ValidationError{Field: "creditValue", Message: msgInvalidInput})
	}
	return finish(errs)
}

// ToCredit maps a validated request to a credit awaiting its code and status.
func (r *CreditRequest) ToCredit() *credit.Credit {
	day, _ := time.Parse(credit.DateLayout, r.DayFirstInstallment)
	value := decimal.Zero
	if r.CreditValue != nil {
		value = *r.CreditValue
	}
	return credit.NewCredit(r.CustomerID, value, day, r.NumberOfInstallments)
}

type CreditView struct {
	CreditCode           string      `json:"creditCode" example:"4f0ac4a1-2f7e-4a5b-9a8e-6f1f54f0c1d2"`
	CreditValue          json.Number `json:"creditValue" swaggertype:"number" example:"1000.00"`
	DayFirstInstallment  string      `json:"dayFirstInstallment" example:"2026-11-16"`
	NumberOfInstallments int         `json:"numberOfInstallments" example:"12"`
	Status               string      `json:"status" example:"IN_PROGRESS"`
	CustomerID           int64       `json:"customerId" example:"1"`
}

func NewCreditView(c *credit.Credit) CreditView {
	if c == nil {
		return CreditView{}
	}
	return CreditView{
		CreditCode:           c.CreditCode.String(),
		CreditValue:          money(c.CreditValue),
		DayFirstInstallment:  c.DayFirstInstallment.Format(credit.DateLayout),
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               string(c.Status),
		CustomerID:           c.CustomerID,
	}
}

type CreditViewList struct {
	CreditCode           string      `json:"creditCode" example:"4f0ac4a1-2f7e-4a5b-9a8e-6f1f54f0c1d2"`
	CreditValue          json.Number `json:"creditValue" swaggertype:"number" example:"1000.00"`
	NumberOfInstallments int         `json:"numberOfInstallments" example:"12"`
}

func NewCreditViewList(credits []*credit.Credit) []CreditViewList {
	out := make([]CreditViewList, 0, len(credits))
	for _, c := range credits {
		out = append(out, CreditViewList{
			CreditCode:           c.CreditCode.String(),
			CreditValue:          money(c.CreditValue),
			NumberOfInstallments: c.NumberOfInstallments,
		})
	}
	return out
}
