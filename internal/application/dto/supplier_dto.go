package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	PartyFields
	BankDetails      json.RawMessage  `json:"bankDetails"`
	Rating           *decimal.Decimal `json:"rating"`
	ProductsSupplied []string         `json:"productsSupplied"`
}

// UpdateSupplierRequest actualización parcial de proveedor.
type UpdateSupplierRequest struct {
	PartyPatchFields
	BankDetails      json.RawMessage  `json:"bankDetails"`
	Rating           *decimal.Decimal `json:"rating"`
	ProductsSupplied *[]string        `json:"productsSupplied"`
}

// SupplierSummary resumen de proveedor creado.
type SupplierSummary struct {
	ID         string `json:"id"`
	SupplierID string `json:"supplierId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Status     string `json:"status"`
}

// CreateSupplierResponse salida de POST /api/suppliers.
type CreateSupplierResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Supplier SupplierSummary `json:"supplier"`
}

// SupplierResponse registro completo de proveedor.
type SupplierResponse struct {
	ID               string          `json:"id"`
	SupplierID       string          `json:"supplierId"`
	OwnerID          string          `json:"user_id"`
	Name             string          `json:"name"`
	ContactPerson    string          `json:"contactPerson"`
	Email            string          `json:"email"`
	Phone            []string        `json:"phone"`
	Addresses        json.RawMessage `json:"addresses"`
	GSTNumber        string          `json:"gstNumber"`
	PANNumber        string          `json:"panNumber"`
	BankDetails      json.RawMessage `json:"bankDetails"`
	PaymentTerms     string          `json:"paymentTerms"`
	CreditLimit      decimal.Decimal `json:"creditLimit"`
	Rating           decimal.Decimal `json:"rating"`
	ProductsSupplied []string        `json:"productsSupplied"`
	Notes            string          `json:"notes"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	UpdatedAt        *time.Time      `json:"updatedAt"`
	UpdatedBy        string          `json:"updatedBy"`
	DeletedAt        *time.Time      `json:"deletedAt"`
	DeletedBy        string          `json:"deletedBy"`
}

// DeleteSupplierResponse salida de DELETE con el proveedor eliminado.
type DeleteSupplierResponse struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	DeletedSupplier SupplierResponse `json:"deletedSupplier"`
}
