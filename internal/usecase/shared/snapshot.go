package shared

import (
	"context"
	"sync"
	"time"

	"innkeeper/internal/domain/availability"
	"innkeeper/internal/pkg/clock"
)

// CollectionSnapshot is one full delivery from the change feed: the complete
// current reservation and maintenance sets, never a delta.
type CollectionSnapshot struct {
	Stays  []availability.BookedStay
	Blocks []availability.MaintenanceBlock
}

// SnapshotReader reads the full current sets from the store. The watcher
// calls it on every change notification and on the periodic fallback tick.
type SnapshotReader interface {
	ReadAll(ctx context.Context) (CollectionSnapshot, error)
}

// IndexCache holds the latest derived indices. Apply rebuilds both from
// scratch on every snapshot; since each rebuild starts from the full set,
// rebuilds are idempotent and the last snapshot always wins regardless of
// how intermediate snapshots were interleaved.
//
// The cache itself is the only synchronization point: readers get the
// current index values, never partially rebuilt state.
type IndexCache struct {
	mu    sync.RWMutex
	clock clock.Clock

	lastSnapshot CollectionSnapshot
	reservations availability.Index
	maintenance  availability.Index
	builtAt      time.Time
}

func NewIndexCache(clk clock.Clock) *IndexCache {
	return &IndexCache{
		clock:        clk,
		reservations: availability.Index{},
		maintenance:  availability.Index{},
	}
}

// Apply rebuilds both indices from the snapshot. "Today" is re-anchored on
// every rebuild, so re-applying the same snapshot after midnight moves
// undated maintenance fallbacks to the new day.
func (c *IndexCache) Apply(snap CollectionSnapshot) {
	now := c.clock.Now()
	rIdx := availability.BuildReservationIndex(snap.Stays)
	mIdx := availability.BuildMaintenanceIndex(snap.Blocks, now)

	c.mu.Lock()
	c.lastSnapshot = snap
	c.reservations = rIdx
	c.maintenance = mIdx
	c.builtAt = now
	c.mu.Unlock()
}

// Reapply rebuilds from the last seen snapshot. Used at the midnight
// boundary when nothing changed in the store but "today" did.
func (c *IndexCache) Reapply() {
	c.mu.RLock()
	snap := c.lastSnapshot
	c.mu.RUnlock()
	c.Apply(snap)
}

// Indices returns the current reservation and maintenance indices. The
// returned maps are the cache's derived views and must not be mutated.
func (c *IndexCache) Indices() (reservations, maintenance availability.Index) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reservations, c.maintenance
}

func (c *IndexCache) BuiltAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.builtAt
}
