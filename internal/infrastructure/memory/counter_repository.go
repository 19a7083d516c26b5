package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// CounterRepository contadores de secuencia protegidos por mutex.
type CounterRepository struct {
	mu     sync.Mutex
	values map[string]int64
}

// NewCounterRepository crea los contadores a cero.
func NewCounterRepository() *CounterRepository {
	return &CounterRepository{values: make(map[string]int64)}
}

var _ repository.CounterRepository = (*CounterRepository)(nil)

func (r *CounterRepository) Next(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name]++
	return r.values[name], nil
}
