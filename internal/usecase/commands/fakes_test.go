//go:build unit

package commands_test

import (
	"context"
	"time"

	"innkeeper/internal/domain/maintenance"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"

	"github.com/google/uuid"
)

// Hand-written fakes for the repository ports. Each records the last write
// and returns canned results.

type fakeRoomRepo struct {
	rooms     map[string]*room.RoomType
	createErr error
	updated   *room.RoomType
	deleted   string
}

func newFakeRoomRepo(rooms ...*room.RoomType) *fakeRoomRepo {
	f := &fakeRoomRepo{rooms: map[string]*room.RoomType{}}
	for _, rt := range rooms {
		f.rooms[rt.Name()] = rt
	}
	return f
}

func (f *fakeRoomRepo) Create(_ context.Context, rt *room.RoomType) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rooms[rt.Name()] = rt
	return nil
}

func (f *fakeRoomRepo) Update(_ context.Context, rt *room.RoomType) error {
	f.updated = rt
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, name string) error {
	if _, ok := f.rooms[name]; !ok {
		return infra.NotFoundErr("room type not found")
	}
	delete(f.rooms, name)
	f.deleted = name
	return nil
}

func (f *fakeRoomRepo) FindByName(_ context.Context, name string) (*room.RoomType, error) {
	rt, ok := f.rooms[name]
	if !ok {
		return nil, infra.NotFoundErr("room type not found")
	}
	return rt, nil
}

type fakeReservationRepo struct {
	created      *reservation.Reservation
	stored       map[uuid.UUID]*reservation.Reservation
	statusSaved  *reservation.Reservation
	deleted      uuid.UUID
	createErr    error
}

func newFakeReservationRepo(existing ...*reservation.Reservation) *fakeReservationRepo {
	f := &fakeReservationRepo{stored: map[uuid.UUID]*reservation.Reservation{}}
	for _, res := range existing {
		f.stored[res.ID()] = res
	}
	return f
}

func (f *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = res
	f.stored[res.ID()] = res
	return res.ID(), nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := f.stored[id]
	if !ok {
		return nil, infra.NotFoundErr("reservation not found")
	}
	return res, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	f.statusSaved = res
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.stored[id]; !ok {
		return infra.NotFoundErr("reservation not found")
	}
	delete(f.stored, id)
	f.deleted = id
	return nil
}

type fakeMaintenanceRepo struct {
	created     *maintenance.Window
	stored      map[uuid.UUID]*maintenance.Window
	statusSaved *maintenance.Window
	deleted     uuid.UUID
}

func newFakeMaintenanceRepo(existing ...*maintenance.Window) *fakeMaintenanceRepo {
	f := &fakeMaintenanceRepo{stored: map[uuid.UUID]*maintenance.Window{}}
	for _, w := range existing {
		f.stored[w.ID()] = w
	}
	return f
}

func (f *fakeMaintenanceRepo) Create(_ context.Context, w *maintenance.Window) error {
	f.created = w
	f.stored[w.ID()] = w
	return nil
}

func (f *fakeMaintenanceRepo) FindByID(_ context.Context, id uuid.UUID) (*maintenance.Window, error) {
	w, ok := f.stored[id]
	if !ok {
		return nil, infra.NotFoundErr("maintenance window not found")
	}
	return w, nil
}

func (f *fakeMaintenanceRepo) UpdateStatus(_ context.Context, w *maintenance.Window) error {
	f.statusSaved = w
	return nil
}

func (f *fakeMaintenanceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.stored[id]; !ok {
		return infra.NotFoundErr("maintenance window not found")
	}
	delete(f.stored, id)
	f.deleted = id
	return nil
}

type enqueuedJob struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

type fakeNotificationRepo struct {
	jobs []enqueuedJob
	err  error
}

func (f *fakeNotificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, enqueuedJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}
