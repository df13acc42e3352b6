package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/pkg/pgconv"
)

type RoomTypeRepository struct {
	db DBTX
}

func NewRoomTypeRepository(db DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

const insertRoomTypeSQL = `
INSERT INTO room_types (
	id, name, slug, description, image,
	nightly_rate, capacity, pricing_mode,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`

func (r *RoomTypeRepository) Create(ctx context.Context, rt *room.RoomType) error {
	_, err := r.db.Exec(ctx, insertRoomTypeSQL,
		pgconv.UUIDToPgtype(rt.ID()),
		rt.Name(),
		rt.Slug(),
		rt.Description(),
		rt.Image(),
		rt.NightlyRate(),
		rt.Capacity(),
		rt.PricingMode().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room type", err)
	}

	notifyChange(ctx, r.db, TopicRoomTypes)
	return nil
}

const updateRoomTypeSQL = `
UPDATE room_types
SET nightly_rate = $1, capacity = $2, description = $3, image = $4, updated_at = now()
WHERE name = $5`

func (r *RoomTypeRepository) Update(ctx context.Context, rt *room.RoomType) error {
	tag, err := r.db.Exec(ctx, updateRoomTypeSQL,
		rt.NightlyRate(),
		rt.Capacity(),
		rt.Description(),
		rt.Image(),
		rt.Name(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("room type not found")
	}

	notifyChange(ctx, r.db, TopicRoomTypes)
	return nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM room_types WHERE name = $1", name)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("room type not found")
	}

	notifyChange(ctx, r.db, TopicRoomTypes)
	return nil
}

const selectRoomTypeSQL = `
SELECT id, name, slug, description, image,
	nightly_rate, capacity, pricing_mode,
	created_at, updated_at
FROM room_types
WHERE name = $1`

func (r *RoomTypeRepository) FindByName(ctx context.Context, name string) (*room.RoomType, error) {
	var (
		id                             pgtype.UUID
		rowName, slug, description, image string
		nightlyRate                    pgtype.Numeric
		capacity                       int
		pricingMode                    string
		createdAt, updatedAt           pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectRoomTypeSQL, name).Scan(
		&id, &rowName, &slug, &description, &image,
		&nightlyRate, &capacity, &pricingMode,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}

	rate, err := pgconv.DecimalFromNumeric(nightlyRate)
	if err != nil {
		return nil, errs.Wrap(err, "stored nightly rate is invalid")
	}

	return room.ReconstructRoomType(
		uuid.UUID(id.Bytes),
		rowName,
		slug,
		description,
		image,
		rate,
		capacity,
		room.PricingMode(pricingMode),
		createdAt.Time,
		updatedAt.Time,
	), nil
}
