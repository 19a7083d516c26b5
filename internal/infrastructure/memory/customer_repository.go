package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// CustomerRepository implementación en memoria de repository.CustomerRepository.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []*entity.Customer
	now       func() time.Time
}

// NewCustomerRepository crea el repositorio vacío.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{now: time.Now}
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

func cloneCustomer(c *entity.Customer) *entity.Customer {
	out := *c
	out.Party = cloneParty(c.Party)
	out.Audit = cloneAudit(c.Audit)
	return &out
}

func (r *CustomerRepository) indexByKey(key entity.Key) int {
	for i, c := range r.customers {
		if matches(key, c.ID, c.CustomerID) {
			return i
		}
	}
	return -1
}

func (r *CustomerRepository) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, cloneCustomer(customer))
	return nil
}

func (r *CustomerRepository) FindByKey(_ context.Context, key entity.Key) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexByKey(key); i >= 0 {
		return cloneCustomer(r.customers[i]), nil
	}
	return nil, nil
}

func (r *CustomerRepository) Update(_ context.Context, key entity.Key, patch entity.CustomerPatch) (repository.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByKey(key)
	if i < 0 {
		return repository.UpdateResult{}, nil
	}
	c := r.customers[i]
	applyPartyPatch(&c.Party, &c.Audit, patch.PartyPatch, r.now())
	return repository.UpdateResult{Matched: true, ModifiedCount: 1}, nil
}

func (r *CustomerRepository) Delete(_ context.Context, key entity.Key) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByKey(key)
	if i < 0 {
		return nil, nil
	}
	c := r.customers[i]
	r.customers = append(r.customers[:i], r.customers[i+1:]...)
	return c, nil
}

func (r *CustomerRepository) ListByOwner(_ context.Context, ownerID string) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Customer, 0)
	for _, c := range r.customers {
		if c.OwnerID == ownerID {
			out = append(out, cloneCustomer(c))
		}
	}
	newestFirst(out, func(c *entity.Customer) time.Time { return c.CreatedAt })
	return out, nil
}
