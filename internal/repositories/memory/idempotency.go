package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type idempotencyKey struct {
	scope  string
	userID uuid.UUID
	key    string
}

type idempotencyRecord struct {
	value     []byte
	expiresAt time.Time
}

// IdempotencyStore keeps request results in process memory until they expire.
// Expired records are swept by Put at most once per ttl.
type IdempotencyStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	records   map[idempotencyKey]idempotencyRecord
	nextSweep time.Time
	now       func() time.Time
}

// NewIdempotencyStore creates a store whose records live for ttl.
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		ttl:     ttl,
		records: make(map[idempotencyKey]idempotencyRecord),
		now:     time.Now,
	}
}

// Get returns the stored value if it has not expired.
func (s *IdempotencyStore) Get(ctx context.Context, scope string, userID uuid.UUID, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := idempotencyKey{scope, userID, key}
	rec, ok := s.records[k]
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(rec.expiresAt) {
		delete(s.records, k)
		return nil, false, nil
	}
	return rec.value, true, nil
}

// Put stores value, replacing any previous one.
func (s *IdempotencyStore) Put(ctx context.Context, scope string, userID uuid.UUID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !now.Before(s.nextSweep) {
		s.sweep(now)
		s.nextSweep = now.Add(s.ttl)
	}

	s.records[idempotencyKey{scope, userID, key}] = idempotencyRecord{
		value:     append([]byte(nil), value...),
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

// sweep drops every record expired at now. The caller must hold mu.
func (s *IdempotencyStore) sweep(now time.Time) {
	for k, rec := range s.records {
		if !now.Before(rec.expiresAt) {
			delete(s.records, k)
		}
	}
}
