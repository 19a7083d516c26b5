package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor; comparte la forma de Customer y añade datos bancarios y rating.
type Supplier struct {
	ID               string
	SupplierID       string // SUPP0001
	Party
	BankDetails      json.RawMessage // objeto JSON
	Rating           decimal.Decimal
	ProductsSupplied []string
	Audit
}

// ApplySupplierDefaults rellena los campos propios de proveedor.
func (s *Supplier) ApplySupplierDefaults() {
	s.Party.ApplyDefaults()
	if len(s.BankDetails) == 0 {
		s.BankDetails = json.RawMessage(`{}`)
	}
	if s.ProductsSupplied == nil {
		s.ProductsSupplied = []string{}
	}
}

// SupplierPatch actualización parcial de proveedor.
type SupplierPatch struct {
	PartyPatch
	BankDetails      json.RawMessage
	Rating           *decimal.Decimal
	ProductsSupplied *[]string
}

// Empty indica si el patch no trae campos.
func (p SupplierPatch) Empty() bool {
	return p.PartyPatch.Empty() && p.BankDetails == nil && p.Rating == nil && p.ProductsSupplied == nil
}
