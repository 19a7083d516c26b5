package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DefaultPaymentTerms condiciones de pago cuando no se indican.
const DefaultPaymentTerms = "Net 30"

// Party datos comerciales compartidos por clientes y proveedores.
type Party struct {
	OwnerID       string // user_id del usuario dueño (referencia, sin FK)
	Name          string
	ContactPerson string
	Email         string
	Phone         []string
	Addresses     json.RawMessage // lista JSON
	GSTNumber     string
	PANNumber     string
	PaymentTerms  string
	CreditLimit   decimal.Decimal
	Notes         string
}

// ApplyDefaults rellena los campos opcionales ausentes.
func (p *Party) ApplyDefaults() {
	if p.Phone == nil {
		p.Phone = []string{}
	}
	if len(p.Addresses) == 0 {
		p.Addresses = json.RawMessage(`[]`)
	}
	if p.PaymentTerms == "" {
		p.PaymentTerms = DefaultPaymentTerms
	}
}

// PartyPatch campos opcionales comunes de una actualización parcial.
type PartyPatch struct {
	OwnerID       *string
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *[]string
	Addresses     json.RawMessage
	GSTNumber     *string
	PANNumber     *string
	PaymentTerms  *string
	CreditLimit   *decimal.Decimal
	Notes         *string
	Status        *string
	UpdatedBy     *string
}

// Empty indica si el patch no trae campos.
func (p PartyPatch) Empty() bool {
	return p.OwnerID == nil && p.Name == nil && p.ContactPerson == nil && p.Email == nil &&
		p.Phone == nil && p.Addresses == nil && p.GSTNumber == nil && p.PANNumber == nil &&
		p.PaymentTerms == nil && p.CreditLimit == nil && p.Notes == nil && p.Status == nil &&
		p.UpdatedBy == nil
}
