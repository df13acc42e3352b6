package queries

import (
	"context"

	"innkeeper/internal/domain/availability"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"
)

// RoomStatusView is the room listing row: catalog data plus the live
// status derived from the cached indices.
type RoomStatusView struct {
	RoomType         RoomTypeView `json:"room_type"`
	Available        bool         `json:"available"`
	Occupied         bool         `json:"occupied"`
	UnderMaintenance bool         `json:"under_maintenance"`
	ActiveBookings   int          `json:"active_bookings"`
}

type RoomTypeQueries interface {
	GetRoomType(ctx context.Context, name string) (*RoomTypeView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	ListRoomStatuses(ctx context.Context) ([]*RoomStatusView, error)
}

type roomTypeQueriesImpl struct {
	store RoomTypeReadStore
	cache *shared.IndexCache
	clock clock.Clock
}

func NewRoomTypeQueries(store RoomTypeReadStore, cache *shared.IndexCache, clk clock.Clock) RoomTypeQueries {
	return &roomTypeQueriesImpl{store: store, cache: cache, clock: clk}
}

func (q *roomTypeQueriesImpl) GetRoomType(ctx context.Context, name string) (*RoomTypeView, error) {
	view, err := q.store.FindByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomTypeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomTypeQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return q.store.FindAll(ctx)
}

// ListRoomStatuses decorates every room type with its status at this
// instant. Occupied and under-maintenance are independent flags: a room can
// hold a confirmed stay and a maintenance window on the same day.
func (q *roomTypeQueriesImpl) ListRoomStatuses(ctx context.Context) ([]*RoomStatusView, error) {
	rooms, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rIdx, mIdx := q.cache.Indices()
	now := q.clock.Now()

	views := make([]*RoomStatusView, 0, len(rooms))
	for _, rt := range rooms {
		status := availability.StatusFor(rt.Name, now, rIdx, mIdx)
		views = append(views, &RoomStatusView{
			RoomType:         *rt,
			Available:        status.Available(),
			Occupied:         status.Occupied(),
			UnderMaintenance: status.UnderMaintenance,
			ActiveBookings:   status.ActiveBookings,
		})
	}
	return views, nil
}
