package repofakes

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/sunday-school-service/internal/repository"
)

// FakeRevocationStore is an in-memory token denylist for tests.
type FakeRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewFakeRevocationStore builds an empty fake.
func NewFakeRevocationStore() *FakeRevocationStore {
	return &FakeRevocationStore{revoked: make(map[string]time.Time)}
}

func (f *FakeRevocationStore) Revoke(_ context.Context, jti string, until time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[jti] = until
	return nil
}

func (f *FakeRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	until, ok := f.revoked[jti]
	return ok && time.Now().Before(until), nil
}

// Len reports the number of revoked token IDs.
func (f *FakeRevocationStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.revoked)
}

var _ repository.RevocationStore = (*FakeRevocationStore)(nil)
