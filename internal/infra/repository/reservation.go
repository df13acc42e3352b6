package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/stay"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/pkg/pgconv"
)

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const insertReservationSQL = `
INSERT INTO reservations (
	id, room_type_name,
	guest_name, guest_surname, guest_email, guest_phone,
	check_in, check_out, guest_count, status,
	payment_nights, payment_guests, base_price, extra_fee, total,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	p := res.Payment()
	_, err := r.db.Exec(ctx, insertReservationSQL,
		pgconv.UUIDToPgtype(res.ID()),
		res.RoomTypeName(),
		res.Guest().Name(),
		res.Guest().Surname(),
		res.Guest().Email(),
		res.Guest().Phone(),
		pgconv.TimeToPgtype(res.CheckIn()),
		pgconv.TimeToPgtype(res.CheckOut()),
		res.GuestCount(),
		res.Status().String(),
		p.Nights,
		p.Guests,
		p.BasePrice,
		p.ExtraFee,
		p.Total,
		pgconv.TimeToPgtype(res.CreatedAt()),
		pgconv.TimeToPgtype(res.UpdatedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	notifyChange(ctx, r.db, TopicReservations)
	return res.ID(), nil
}

const selectReservationSQL = `
SELECT id, room_type_name,
	guest_name, guest_surname, guest_email, guest_phone,
	check_in, check_out, guest_count, status,
	payment_nights, payment_guests, base_price, extra_fee, total,
	created_at, updated_at
FROM reservations
WHERE id = $1`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, selectReservationSQL, pgconv.UUIDToPgtype(id))
	res, err := scanReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3",
		res.Status().String(),
		pgconv.TimeToPgtype(res.UpdatedAt()),
		pgconv.UUIDToPgtype(res.ID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("reservation not found")
	}

	notifyChange(ctx, r.db, TopicReservations)
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM reservations WHERE id = $1", pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("reservation not found")
	}

	notifyChange(ctx, r.db, TopicReservations)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id                                              pgtype.UUID
		roomTypeName                                    string
		guestName, guestSurname, guestEmail, guestPhone string
		checkIn, checkOut                               pgtype.Timestamptz
		guestCount                                      int
		status                                          string
		payment                                         reservation.Payment
		basePrice, extraFee, total                      pgtype.Numeric
		createdAt, updatedAt                            pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &roomTypeName,
		&guestName, &guestSurname, &guestEmail, &guestPhone,
		&checkIn, &checkOut, &guestCount, &status,
		&payment.Nights, &payment.Guests, &basePrice, &extraFee, &total,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if payment.BasePrice, err = pgconv.DecimalFromNumeric(basePrice); err != nil {
		return nil, errs.Wrap(err, "stored base price is invalid")
	}
	if payment.ExtraFee, err = pgconv.DecimalFromNumeric(extraFee); err != nil {
		return nil, errs.Wrap(err, "stored extra fee is invalid")
	}
	if payment.Total, err = pgconv.DecimalFromNumeric(total); err != nil {
		return nil, errs.Wrap(err, "stored total is invalid")
	}

	guest, err := reservation.NewGuest(guestName, guestSurname, guestEmail, guestPhone)
	if err != nil {
		return nil, errs.Wrap(err, "stored guest record is invalid")
	}
	interval, err := stay.NewInterval(checkIn.Time, checkOut.Time)
	if err != nil {
		return nil, errs.Wrap(err, "stored stay range is invalid")
	}

	return reservation.ReconstructReservation(
		uuid.UUID(id.Bytes),
		roomTypeName,
		guest,
		interval,
		guestCount,
		reservation.Status(status),
		payment,
		createdAt.Time,
		updatedAt.Time,
	), nil
}
