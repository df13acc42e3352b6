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

type ReservationReadStore struct {
	db DBTX
}

func NewReservationReadStore(db DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationColumns = `
	id, room_type_name,
	guest_name, guest_surname, guest_email, guest_phone,
	check_in, check_out, guest_count, status,
	payment_nights, payment_guests, base_price, extra_fee, total,
	created_at, updated_at`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx,
		"SELECT"+reservationColumns+" FROM reservations WHERE id = $1",
		pgconv.UUIDToPgtype(id),
	)
	view, err := scanReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindAll(ctx context.Context, status *string) ([]*queries.ReservationView, error) {
	sql := "SELECT" + reservationColumns + " FROM reservations"
	args := []any{}
	if status != nil {
		sql += " WHERE status = $1"
		args = append(args, *status)
	}
	sql += " ORDER BY check_in DESC, created_at DESC"

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		id                         pgtype.UUID
		view                       queries.ReservationView
		checkIn, checkOut          pgtype.Timestamptz
		basePrice, extraFee, total pgtype.Numeric
		createdAt, updatedAt       pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &view.RoomTypeName,
		&view.GuestName, &view.GuestSurname, &view.GuestEmail, &view.GuestPhone,
		&checkIn, &checkOut, &view.GuestCount, &view.Status,
		&view.Payment.Nights, &view.Payment.Guests, &basePrice, &extraFee, &total,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ID = uuid.UUID(id.Bytes)
	view.CheckIn = checkIn.Time
	view.CheckOut = checkOut.Time
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	if view.Payment.BasePrice, err = pgconv.DecimalFromNumeric(basePrice); err != nil {
		return nil, errs.Wrap(err, "stored base price is invalid")
	}
	if view.Payment.ExtraFee, err = pgconv.DecimalFromNumeric(extraFee); err != nil {
		return nil, errs.Wrap(err, "stored extra fee is invalid")
	}
	if view.Payment.Total, err = pgconv.DecimalFromNumeric(total); err != nil {
		return nil, errs.Wrap(err, "stored total is invalid")
	}
	return &view, nil
}
