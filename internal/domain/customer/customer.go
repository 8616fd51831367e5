package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	ZipCode string `json:"zipCode"`
	Street  string `json:"street"`
}

type Customer struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	CPF       string          `json:"cpf"`
	Income    decimal.Decimal `json:"income"`
	Email     string          `json:"email"`
	Password  string          `json:"-"`
	Address   Address         `json:"address"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewCustomer(firstName, lastName, cpf string, income decimal.Decimal, email, password string, address Address) *Customer {
	now := time.Now()
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		CPF:       cpf,
		Income:    income,
		Email:     email,
		Password:  password,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CustomerPatch holds the only fields an update may change.
type CustomerPatch struct {
	FirstName string
	LastName  string
	Income    decimal.Decimal
	ZipCode   string
	Street    string
}

// Apply overwrites the mutable fields and reports whether anything changed.
func (c *Customer) Apply(p CustomerPatch) bool {
	changed := c.FirstName != p.FirstName ||
		c.LastName != p.LastName ||
		!c.Income.Equal(p.Income) ||
		c.Address.ZipCode != p.ZipCode ||
		c.Address.Street != p.Street
	if !changed {
		return false
	}

	c.FirstName = p.FirstName
	c.LastName = p.LastName
	c.Income = p.Income
	c.Address.ZipCode = p.ZipCode
	c.Address.Street = p.Street
	c.UpdatedAt = time.Now()
	return true
}
