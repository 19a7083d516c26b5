package repository

import "context"

// StoreStatus estado del backend de persistencia.
type StoreStatus struct {
	Connected bool
	Database  string
	Tables    []string
}

// HealthChecker inspecciona el backend de persistencia.
type HealthChecker interface {
	Status(ctx context.Context) (StoreStatus, error)
}
