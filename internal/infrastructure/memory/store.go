// Package memory implementa los puertos de persistencia en memoria (tests y STORE_DRIVER=memory).
package memory

import (
	"encoding/json"
	"slices"
	"sort"
	"time"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

// Store agrupa los repositorios en memoria de una misma instancia.
type Store struct {
	Users     *UserRepository
	Customers *CustomerRepository
	Suppliers *SupplierRepository
	Settings  *SettingsRepository
	Products  *ProductRepository
	Counters  *CounterRepository
	Revoked   *RevocationStore
	Health    *HealthChecker
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		Users:     NewUserRepository(),
		Customers: NewCustomerRepository(),
		Suppliers: NewSupplierRepository(),
		Settings:  NewSettingsRepository(),
		Products:  NewProductRepository(),
		Counters:  NewCounterRepository(),
		Revoked:   NewRevocationStore(),
		Health:    NewHealthChecker(),
	}
}

func cloneRaw(r json.RawMessage) json.RawMessage {
	if r == nil {
		return nil
	}
	return slices.Clone(r)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneParty(p entity.Party) entity.Party {
	p.Phone = slices.Clone(p.Phone)
	p.Addresses = cloneRaw(p.Addresses)
	return p
}

func cloneAudit(a entity.Audit) entity.Audit {
	a.UpdatedAt = cloneTime(a.UpdatedAt)
	a.DeletedAt = cloneTime(a.DeletedAt)
	return a
}

// matches compara una clave con el par (id nativo, id legible) de un registro.
func matches(key entity.Key, id, displayID string) bool {
	switch key.Kind {
	case entity.KeyNative:
		return key.Value == id
	case entity.KeyDisplay:
		return key.Value == displayID
	}
	return false
}

// applyPartyPatch aplica los campos presentes y refresca updatedAt.
func applyPartyPatch(p *entity.Party, a *entity.Audit, patch entity.PartyPatch, now time.Time) {
	if patch.OwnerID != nil {
		p.OwnerID = *patch.OwnerID
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.ContactPerson != nil {
		p.ContactPerson = *patch.ContactPerson
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = slices.Clone(*patch.Phone)
	}
	if patch.Addresses != nil {
		p.Addresses = cloneRaw(patch.Addresses)
	}
	if patch.GSTNumber != nil {
		p.GSTNumber = *patch.GSTNumber
	}
	if patch.PANNumber != nil {
		p.PANNumber = *patch.PANNumber
	}
	if patch.PaymentTerms != nil {
		p.PaymentTerms = *patch.PaymentTerms
	}
	if patch.CreditLimit != nil {
		p.CreditLimit = *patch.CreditLimit
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.UpdatedBy != nil {
		a.UpdatedBy = *patch.UpdatedBy
	}
	a.UpdatedAt = &now
}

// newestFirst ordena por createdAt descendente; a igualdad, el último insertado primero.
func newestFirst[T any](items []T, createdAt func(T) time.Time) {
	slices.Reverse(items)
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
