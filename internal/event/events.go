package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerEventPayload never carries the password.
type CustomerEventPayload struct {
	CustomerID int64           `json:"customerId"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	CPF        string          `json:"cpf"`
	Email      string          `json:"email"`
	Income     decimal.Decimal `json:"income"`
	ZipCode    string          `json:"zipCode"`
	Street     string          `json:"street"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type CustomerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerDeletedEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	CustomerID int64     `json:"customerId"`
}

type CreditEventPayload struct {
	CreditCode           uuid.UUID       `json:"creditCode"`
	CreditValue          decimal.Decimal `json:"creditValue"`
	DayFirstInstallment  string          `json:"dayFirstInstallment"`
	NumberOfInstallments int             `json:"numberOfInstallments"`
	Status               string          `json:"status"`
	CustomerID           int64           `json:"customerId"`
}

type CreditCreatedEvent struct {
	Timestamp time.Time          `json:"timestamp"`
	Payload   CreditEventPayload `json:"payload"`
}
