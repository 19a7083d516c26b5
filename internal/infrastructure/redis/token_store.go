// Package redis guarda la lista de tokens revocados en Redis, compartida entre réplicas.
package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

const keyPrefix = "revoked:"

var _ repository.TokenRevocationStore = (*TokenStore)(nil)

// TokenStore cada jti revocado es una clave con TTL igual a lo que le queda al token.
type TokenStore struct {
	client *goredis.Client
	now    func() time.Time
}

// NewClient crea el cliente y verifica conectividad. Acepta "host:port" o "redis://host:port".
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	addr = strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

// NewTokenStore construye el store sobre un cliente ya conectado.
func NewTokenStore(client *goredis.Client) *TokenStore {
	return &TokenStore{client: client, now: time.Now}
}

func key(jti string) string {
	return keyPrefix + jti
}

// Revoke marca jti como revocado hasta until. Un token ya vencido no necesita entrada.
func (s *TokenStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, key(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key(jti), err)
	}
	return nil
}

// IsRevoked indica si jti sigue en la lista.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", key(jti), err)
	}
	return n > 0, nil
}
