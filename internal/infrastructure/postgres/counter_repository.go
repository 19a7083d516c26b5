package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo contadores de secuencia en id_counters.
type CounterRepo struct {
	db Querier
}

// NewCounterRepository construye el adaptador.
func NewCounterRepository(db Querier) *CounterRepo {
	return &CounterRepo{db: db}
}

// Next incrementa y devuelve el contador en una sola sentencia; dos llamadas concurrentes nunca ven el mismo valor.
func (r *CounterRepo) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO id_counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = id_counters.value + 1
		RETURNING value`
	var v int64
	if err := r.db.QueryRow(ctx, query, name).Scan(&v); err != nil {
		return 0, fmt.Errorf("next counter %s: %w", name, err)
	}
	return v, nil
}
