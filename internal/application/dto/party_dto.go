package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PartyFields campos comunes de alta de clientes y proveedores.
// CreatedBy es el user_id dueño; si falta se usa el del token.
type PartyFields struct {
	Name          string           `json:"name"`
	ContactPerson string           `json:"contactPerson"`
	Email         string           `json:"email"`
	Phone         []string         `json:"phone"`
	Addresses     json.RawMessage  `json:"addresses"`
	GSTNumber     string           `json:"gstNumber"`
	PANNumber     string           `json:"panNumber"`
	PaymentTerms  string           `json:"paymentTerms"`
	CreditLimit   *decimal.Decimal `json:"creditLimit"`
	Notes         string           `json:"notes"`
	CreatedBy     string           `json:"createdBy"`
}

// PartyPatchFields campos comunes de actualización parcial.
type PartyPatchFields struct {
	OwnerID       *string          `json:"user_id"`
	Name          *string          `json:"name"`
	ContactPerson *string          `json:"contactPerson"`
	Email         *string          `json:"email"`
	Phone         *[]string        `json:"phone"`
	Addresses     json.RawMessage  `json:"addresses"`
	GSTNumber     *string          `json:"gstNumber"`
	PANNumber     *string          `json:"panNumber"`
	PaymentTerms  *string          `json:"paymentTerms"`
	CreditLimit   *decimal.Decimal `json:"creditLimit"`
	Notes         *string          `json:"notes"`
	Status        *string          `json:"status"`
	UpdatedBy     *string          `json:"updatedBy"`
}
