package repository

// UpdateResult resultado de una actualización parcial.
// Matched es false cuando ninguna fila coincide con la clave.
type UpdateResult struct {
	Matched       bool
	ModifiedCount int64
}
