package idgen

import (
	"context"
	"fmt"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
	"github.com/jhoicas/udyog-sutra-api/pkg/displayid"
)

// Generator reserva ids legibles sobre un contador atómico.
// Dos creaciones concurrentes nunca reciben el mismo valor.
type Generator struct {
	counters repository.CounterRepository
}

// NewGenerator construye el generador.
func NewGenerator(counters repository.CounterRepository) *Generator {
	return &Generator{counters: counters}
}

// Next reserva el siguiente id de la secuencia (USR0001, CUST0001...).
func (g *Generator) Next(ctx context.Context, seq entity.Sequence) (string, error) {
	n, err := g.counters.Next(ctx, seq.Name)
	if err != nil {
		return "", fmt.Errorf("reserve %s id: %w", seq.Name, err)
	}
	return displayid.Format(seq.Prefix, n), nil
}
