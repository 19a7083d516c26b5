package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	PartyFields
}

// UpdateCustomerRequest actualización parcial de cliente.
type UpdateCustomerRequest struct {
	PartyPatchFields
}

// CustomerSummary resumen de cliente creado.
type CustomerSummary struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Status     string `json:"status"`
}

// CreateCustomerResponse salida de POST /api/customers.
type CreateCustomerResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Customer CustomerSummary `json:"customer"`
}

// CustomerResponse registro completo de cliente.
type CustomerResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	OwnerID       string          `json:"user_id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contactPerson"`
	Email         string          `json:"email"`
	Phone         []string        `json:"phone"`
	Addresses     json.RawMessage `json:"addresses"`
	GSTNumber     string          `json:"gstNumber"`
	PANNumber     string          `json:"panNumber"`
	PaymentTerms  string          `json:"paymentTerms"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	UpdatedAt     *time.Time      `json:"updatedAt"`
	UpdatedBy     string          `json:"updatedBy"`
}

// DeleteCustomerResponse salida de DELETE con el cliente eliminado.
type DeleteCustomerResponse struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	DeletedCustomer CustomerResponse `json:"deletedCustomer"`
}
