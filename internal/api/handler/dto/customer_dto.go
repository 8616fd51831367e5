package dto

import (
	"encoding/json"
	"strings"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	FirstName string           `json:"firstName" validate:"required" example:"Camila"`
	LastName  string           `json:"lastName" validate:"required" example:"Cavalcante"`
	CPF       string           `json:"cpf" validate:"required,cpf" example:"662.815.870-57"`
	Income    *decimal.Decimal `json:"income" validate:"required" swaggertype:"number" example:"1000.00"`
	Email     string           `json:"email" validate:"required,email" example:"camila@email.com"`
	Password  string           `json:"password" validate:"required" example:"1234"`
	ZipCode   string           `json:"zipCode" validate:"required" example:"000000"`
	Street    string           `json:"street" validate:"required" example:"Rua da Cami, 123"`
}

func (r *CustomerRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.ZipCode = strings.TrimSpace(r.ZipCode)
	r.Street = strings.TrimSpace(r.Street)

	errs := validateStruct(r)
	if r.Income != nil && r.Income.IsNegative() {
		errs = append(errs, &apperrors.ValidationError{Field: "income", Message: msgInvalidInput})
	}
	return finish(errs)
}

// ToCustomer maps a validated request to a new customer with the CPF normalized to digits.
func (r *CustomerRequest) ToCustomer() *customer.Customer {
	cpf, _ := customer.NormalizeCPF(r.CPF)
	income := decimal.Zero
	if r.Income != nil {
		income = *r.Income
	}
	return customer.NewCustomer(
		r.FirstName,
		r.LastName,
		cpf,
		income,
		r.Email,
		r.Password,
		customer.Address{ZipCode: r.ZipCode, Street: r.Street},
	)
}

type CustomerUpdateRequest struct {
	FirstName string           `json:"firstName" validate:"required" example:"CamiUpdate"`
	LastName  string           `json:"lastName" validate:"required" example:"CavalcanteUpdate"`
	Income    *decimal.Decimal `json:"income" validate:"required" swaggertype:"number" example:"5000.00"`
	ZipCode   string           `json:"zipCode" validate:"required" example:"45656"`
	Street    string           `json:"street" validate:"required" example:"Rua Updated"`
}

func (r *CustomerUpdateRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.ZipCode = strings.TrimSpace(r.ZipCode)
	r.Street = strings.TrimSpace(r.Street)

	errs := validateStruct(r)
	if r.Income != nil && r.Income.IsNegative() {
		errs = append(errs, &apperrors.ValidationError{Field: "income", Message: msgInvalidInput})
	}
	return finish(errs)
}

func (r *CustomerUpdateRequest) ToPatch() customer.CustomerPatch {
	income := decimal.Zero
	if r.Income != nil {
		income = *r.Income
	}
	return customer.CustomerPatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Income:    income,
		ZipCode:   r.ZipCode,
		Street:    r.Street,
	}
}

type CustomerView struct {
	ID        int64       `json:"id" example:"1"`
	FirstName string      `json:"firstName" example:"Camila"`
	LastName  string      `json:"lastName" example:"Cavalcante"`
	CPF       string      `json:"cpf" example:"66281587057"`
	Income    json.Number `json:"income" swaggertype:"number" example:"1000.00"`
	Email     string      `json:"email" example:"camila@email.com"`
	ZipCode   string      `json:"zipCode" example:"000000"`
	Street    string      `json:"street" example:"Rua da Cami, 123"`
}

func NewCustomerView(cust *customer.Customer) CustomerView {
	if cust == nil {
		return CustomerView{}
	}
	return CustomerView{
		ID:        cust.ID,
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		CPF:       cust.CPF,
		Income:    money(cust.Income),
		Email:     cust.Email,
		ZipCode:   cust.Address.ZipCode,
		Street:    cust.Address.Street,
	}
}

// money renders an amount as a JSON number with two decimals.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
