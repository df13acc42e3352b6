package commands

import (
	"context"

	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

var ErrDuplicateRoom = errs.ErrDuplicateRoom

type CreateRoomTypeParams struct {
	Name        string
	Description string
	Image       string
	NightlyRate decimal.Decimal
	Capacity    int
	PricingMode room.PricingMode
}

type UpdateRoomTypeParams struct {
	Name        string
	Description *string
	Image       *string
	NightlyRate *decimal.Decimal
	Capacity    *int
}

type RoomTypeCommands interface {
	CreateRoomType(ctx context.Context, params CreateRoomTypeParams) (*room.RoomType, error)
	UpdateRoomType(ctx context.Context, params UpdateRoomTypeParams) (*room.RoomType, error)
	DeleteRoomType(ctx context.Context, name string) error
}

type roomTypeCommandsImpl struct {
	roomRepo RoomTypeRepository
}

func NewRoomTypeCommands(roomRepo RoomTypeRepository) RoomTypeCommands {
	return &roomTypeCommandsImpl{roomRepo: roomRepo}
}

func (c *roomTypeCommandsImpl) CreateRoomType(ctx context.Context, params CreateRoomTypeParams) (*room.RoomType, error) {
	rt, err := room.NewRoomType(
		params.Name,
		params.Description,
		params.Image,
		params.NightlyRate,
		params.Capacity,
		params.PricingMode,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.roomRepo.Create(ctx, rt); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRoom
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rt, nil
}

// UpdateRoomType applies a partial admin edit. Rate changes only affect
// future quotes; payments already frozen on reservations keep their values.
func (c *roomTypeCommandsImpl) UpdateRoomType(ctx context.Context, params UpdateRoomTypeParams) (*room.RoomType, error) {
	rt, err := c.roomRepo.FindByName(ctx, params.Name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if params.NightlyRate != nil {
		if err := rt.ChangeRate(*params.NightlyRate); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}
	if params.Capacity != nil {
		if err := rt.ChangeCapacity(*params.Capacity); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}
	if params.Description != nil || params.Image != nil {
		rt.ChangeDescription(
			patch.Coalesce(params.Description, rt.Description()),
			patch.Coalesce(params.Image, rt.Image()),
		)
	}

	if err := c.roomRepo.Update(ctx, rt); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rt, nil
}

func (c *roomTypeCommandsImpl) DeleteRoomType(ctx context.Context, name string) error {
	if err := c.roomRepo.Delete(ctx, name); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomTypeNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
