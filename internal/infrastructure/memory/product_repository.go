package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// ProductRepository implementación en memoria de repository.ProductRepository.
type ProductRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
	now      func() time.Time
}

// NewProductRepository crea el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{now: time.Now}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) index(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *ProductRepository) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *product
	r.products = append(r.products, &c)
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(id); i >= 0 {
		c := *r.products[i]
		return &c, nil
	}
	return nil, nil
}

func (r *ProductRepository) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		c := *p
		out = append(out, &c)
	}
	newestFirst(out, func(p *entity.Product) time.Time { return p.CreatedAt })
	return out, nil
}

func (r *ProductRepository) Update(_ context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return nil, nil
	}
	p := r.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	p.UpdatedAt = r.now()
	c := *p
	return &c, nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return nil, nil
	}
	p := r.products[i]
	r.products = append(r.products[:i], r.products[i+1:]...)
	return p, nil
}
