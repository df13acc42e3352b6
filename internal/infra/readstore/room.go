package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"
)

type RoomTypeReadStore struct {
	db DBTX
}

func NewRoomTypeReadStore(db DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{db: db}
}

const selectRoomTypesSQL = `
SELECT id, name, slug, description, image,
	nightly_rate, capacity, pricing_mode,
	created_at, updated_at
FROM room_types
ORDER BY name`

func (s *RoomTypeReadStore) FindAll(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := s.db.Query(ctx, selectRoomTypesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var views []*queries.RoomTypeView
	for rows.Next() {
		view, err := scanRoomType(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room types", err)
	}
	return views, nil
}

const selectRoomTypeByNameSQL = `
SELECT id, name, slug, description, image,
	nightly_rate, capacity, pricing_mode,
	created_at, updated_at
FROM room_types
WHERE name = $1`

func (s *RoomTypeReadStore) FindByName(ctx context.Context, name string) (*queries.RoomTypeView, error) {
	view, err := scanRoomType(s.db.QueryRow(ctx, selectRoomTypeByNameSQL, name))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomType(row rowScanner) (*queries.RoomTypeView, error) {
	var (
		id                   pgtype.UUID
		view                 queries.RoomTypeView
		nightlyRate          pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &view.Name, &view.Slug, &view.Description, &view.Image,
		&nightlyRate, &view.Capacity, &view.PricingMode,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ID = uuid.UUID(id.Bytes)
	if view.NightlyRate, err = pgconv.DecimalFromNumeric(nightlyRate); err != nil {
		return nil, errs.Wrap(err, "stored nightly rate is invalid")
	}
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	return &view, nil
}
