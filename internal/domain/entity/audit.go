package entity

import "time"

// Estados de registro.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Audit campos de auditoría comunes. UpdatedAt y DeletedAt son nil hasta que ocurren.
type Audit struct {
	Status    string
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt *time.Time
	UpdatedBy string
	DeletedAt *time.Time
	DeletedBy string
}
