package repository

import (
	"context"
	"time"
)

// TokenRevocationStore lista de tokens revocados (por jti) hasta su expiración.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
