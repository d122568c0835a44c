package repo

import (
	"context"

	"github.com/hamed0406/availmon/internal/domain"
)

// SnapshotStore is the port between the monitoring loop (sole writer, once
// per cycle) and the status API (readers). Swap in any other adapter later.
type SnapshotStore interface {
	Publish(ctx context.Context, snaps []domain.AvailabilitySnapshot) error
	Latest(ctx context.Context) ([]domain.AvailabilitySnapshot, error)
}
