package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

// RevocationStore lista de jti revocados; las entradas vencidas se purgan al revocar.
type RevocationStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewRevocationStore crea la lista vacía.
func NewRevocationStore() *RevocationStore {
	return &RevocationStore{entries: make(map[string]time.Time), now: time.Now}
}

var _ repository.TokenRevocationStore = (*RevocationStore)(nil)

func (s *RevocationStore) Revoke(_ context.Context, jti string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, exp := range s.entries {
		if !exp.After(now) {
			delete(s.entries, k)
		}
	}
	if until.After(now) {
		s.entries[jti] = until
	}
	return nil
}

func (s *RevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.entries[jti]
	return ok && exp.After(s.now()), nil
}
