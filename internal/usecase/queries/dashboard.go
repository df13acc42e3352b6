package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"innkeeper/internal/domain/availability"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/stay"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"
)

// DashboardView is the admin landing page: occupancy at a glance, today's
// arrivals and departures, and the reservation pipeline.
type DashboardView struct {
	Date             time.Time      `json:"date"`
	TotalRooms       int            `json:"total_rooms"`
	AvailableRooms   int            `json:"available_rooms"`
	OccupiedRooms    int            `json:"occupied_rooms"`
	UnderMaintenance int            `json:"under_maintenance"`
	OccupancyRate    int            `json:"occupancy_rate"`
	TodayCheckIns    int            `json:"today_check_ins"`
	TodayCheckOuts   int            `json:"today_check_outs"`
	PendingRequests  int            `json:"pending_requests"`
	StatusCounts     map[string]int `json:"status_counts"`
}

// RevenueView sums the frozen payment totals of confirmed and completed
// reservations. Totals are snapshots taken at booking time, so the report
// is stable against later rate changes.
type RevenueView struct {
	From         *time.Time      `json:"from,omitempty"`
	To           *time.Time      `json:"to,omitempty"`
	Reservations int             `json:"reservations"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type DashboardQueries interface {
	GetDashboard(ctx context.Context) (*DashboardView, error)
	GetRevenue(ctx context.Context, from, to *time.Time) (*RevenueView, error)
}

type dashboardQueriesImpl struct {
	rooms        RoomTypeReadStore
	reservations ReservationReadStore
	cache        *shared.IndexCache
	clock        clock.Clock
}

func NewDashboardQueries(
	rooms RoomTypeReadStore,
	reservations ReservationReadStore,
	cache *shared.IndexCache,
	clk clock.Clock,
) DashboardQueries {
	return &dashboardQueriesImpl{
		rooms:        rooms,
		reservations: reservations,
		cache:        cache,
		clock:        clk,
	}
}

func (q *dashboardQueriesImpl) GetDashboard(ctx context.Context) (*DashboardView, error) {
	rooms, err := q.rooms.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	all, err := q.reservations.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	today := stay.DayOf(now)

	names := make([]string, 0, len(rooms))
	for _, rt := range rooms {
		names = append(names, rt.Name)
	}
	rIdx, mIdx := q.cache.Indices()
	summary := availability.Summarize(names, now, rIdx, mIdx)

	view := &DashboardView{
		Date:             now,
		TotalRooms:       summary.TotalRooms,
		AvailableRooms:   summary.Available,
		OccupiedRooms:    summary.Occupied,
		UnderMaintenance: summary.UnderMaintenance,
		OccupancyRate:    summary.OccupancyRate,
		StatusCounts:     map[string]int{},
	}

	for _, r := range all {
		view.StatusCounts[r.Status]++
		if r.Status == reservation.StatusPending.String() {
			view.PendingRequests++
		}
		if r.Status != reservation.StatusConfirmed.String() {
			continue
		}
		if today.Contains(r.CheckIn) {
			view.TodayCheckIns++
		}
		if today.Contains(r.CheckOut) {
			view.TodayCheckOuts++
		}
	}
	return view, nil
}

// GetRevenue sums frozen payment totals over confirmed and completed
// reservations whose check-in falls inside the optional [from, to) window.
func (q *dashboardQueriesImpl) GetRevenue(ctx context.Context, from, to *time.Time) (*RevenueView, error) {
	if from != nil && to != nil && !to.After(*from) {
		return nil, errs.ErrInvalidStayRange
	}

	all, err := q.reservations.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	view := &RevenueView{From: from, To: to, Revenue: decimal.Zero}
	for _, r := range all {
		status := reservation.Status(r.Status)
		if status != reservation.StatusConfirmed && status != reservation.StatusCompleted {
			continue
		}
		if from != nil && r.CheckIn.Before(*from) {
			continue
		}
		if to != nil && !r.CheckIn.Before(*to) {
			continue
		}
		view.Reservations++
		view.Revenue = view.Revenue.Add(r.Payment.Total)
	}
	return view, nil
}
