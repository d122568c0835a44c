package memory

import (
	"context"
	"sync"

	"github.com/hamed0406/availmon/internal/domain"
)

// Store holds the most recent per-domain availability snapshots. Only the
// current cycle's view is kept; history is a non-goal.
type Store struct {
	mu    sync.RWMutex
	snaps []domain.AvailabilitySnapshot
}

func New() *Store {
	return &Store{}
}

func (s *Store) Publish(ctx context.Context, snaps []domain.AvailabilitySnapshot) error {
	cp := make([]domain.AvailabilitySnapshot, len(snaps))
	copy(cp, snaps)

	s.mu.Lock()
	s.snaps = cp
	s.mu.Unlock()
	return nil
}

func (s *Store) Latest(ctx context.Context) ([]domain.AvailabilitySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AvailabilitySnapshot, len(s.snaps))
	copy(out, s.snaps)
	return out, nil
}
