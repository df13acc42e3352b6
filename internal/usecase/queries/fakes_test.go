//go:build unit

package queries_test

import (
	"context"

	"innkeeper/internal/infra"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type fakeRoomStore struct {
	views []*queries.RoomTypeView
	err   error
}

func (f *fakeRoomStore) FindAll(_ context.Context) ([]*queries.RoomTypeView, error) {
	return f.views, f.err
}

func (f *fakeRoomStore) FindByName(_ context.Context, name string) (*queries.RoomTypeView, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.views {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, infra.NotFoundErr("room type not found")
}

type fakeReservationStore struct {
	views []*queries.ReservationView
	err   error
}

func (f *fakeReservationStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, infra.NotFoundErr("reservation not found")
}

func (f *fakeReservationStore) FindAll(_ context.Context, status *string) ([]*queries.ReservationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	if status == nil {
		return f.views, nil
	}
	var filtered []*queries.ReservationView
	for _, v := range f.views {
		if v.Status == *status {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

type fakeMaintenanceStore struct {
	views []*queries.MaintenanceView
	err   error
}

func (f *fakeMaintenanceStore) FindAll(_ context.Context) ([]*queries.MaintenanceView, error) {
	return f.views, f.err
}
