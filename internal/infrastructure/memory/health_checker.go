package memory

import (
	"context"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// HealthChecker siempre conectado; lista las colecciones que este store mantiene.
type HealthChecker struct{}

// NewHealthChecker crea la sonda.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{}
}

var _ repository.HealthChecker = (*HealthChecker)(nil)

func (HealthChecker) Status(context.Context) (repository.StoreStatus, error) {
	return repository.StoreStatus{
		Connected: true,
		Database:  "memory",
		Tables:    []string{"customers", "id_counters", "products", "settings", "suppliers", "users"},
	}, nil
}
