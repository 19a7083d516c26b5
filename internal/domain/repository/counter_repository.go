package repository

import "context"

// CounterRepository reserva valores de secuencia de forma atómica.
// Next incrementa y devuelve el nuevo valor (el primero es 1).
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
