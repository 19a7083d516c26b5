package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// SupplierRepository implementación en memoria de repository.SupplierRepository.
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers []*entity.Supplier
	now       func() time.Time
}

// NewSupplierRepository crea el repositorio vacío.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{now: time.Now}
}

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

func cloneSupplier(s *entity.Supplier) *entity.Supplier {
	out := *s
	out.Party = cloneParty(s.Party)
	out.BankDetails = cloneRaw(s.BankDetails)
	out.ProductsSupplied = slices.Clone(s.ProductsSupplied)
	out.Audit = cloneAudit(s.Audit)
	return &out
}

func (r *SupplierRepository) indexByKey(key entity.Key) int {
	for i, s := range r.suppliers {
		if matches(key, s.ID, s.SupplierID) {
			return i
		}
	}
	return -1
}

func (r *SupplierRepository) Create(_ context.Context, supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = append(r.suppliers, cloneSupplier(supplier))
	return nil
}

func (r *SupplierRepository) FindByKey(_ context.Context, key entity.Key) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexByKey(key); i >= 0 {
		return cloneSupplier(r.suppliers[i]), nil
	}
	return nil, nil
}

func (r *SupplierRepository) Update(_ context.Context, key entity.Key, patch entity.SupplierPatch) (repository.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByKey(key)
	if i < 0 {
		return repository.UpdateResult{}, nil
	}
	s := r.suppliers[i]
	applyPartyPatch(&s.Party, &s.Audit, patch.PartyPatch, r.now())
	if patch.BankDetails != nil {
		s.BankDetails = cloneRaw(patch.BankDetails)
	}
	if patch.Rating != nil {
		s.Rating = *patch.Rating
	}
	if patch.ProductsSupplied != nil {
		s.ProductsSupplied = slices.Clone(*patch.ProductsSupplied)
	}
	return repository.UpdateResult{Matched: true, ModifiedCount: 1}, nil
}

func (r *SupplierRepository) Delete(_ context.Context, key entity.Key) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByKey(key)
	if i < 0 {
		return nil, nil
	}
	s := r.suppliers[i]
	r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
	return s, nil
}

func (r *SupplierRepository) ListByOwner(_ context.Context, ownerID string) ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Supplier, 0)
	for _, s := range r.suppliers {
		if s.OwnerID == ownerID {
			out = append(out, cloneSupplier(s))
		}
	}
	newestFirst(out, func(s *entity.Supplier) time.Time { return s.CreatedAt })
	return out, nil
}

func (r *SupplierRepository) List(_ context.Context) ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, cloneSupplier(s))
	}
	newestFirst(out, func(s *entity.Supplier) time.Time { return s.CreatedAt })
	return out, nil
}
