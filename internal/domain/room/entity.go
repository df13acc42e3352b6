package room

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("room type name cannot be empty")
	ErrInvalidRate        = errors.New("nightly rate must be positive")
	ErrInvalidCapacity    = errors.New("capacity must be positive")
	ErrInvalidPricingMode = errors.New("invalid pricing mode")
)

// RoomType is a bookable room category (e.g. "Suite"), not a physical room.
// The display name doubles as the foreign key from reservations and
// maintenance windows; no surrogate id is guaranteed to exist on legacy
// records, so Name must stay unique.
type RoomType struct {
	id          uuid.UUID
	name        string
	slug        string
	description string
	image       string
	nightlyRate decimal.Decimal
	capacity    int
	pricingMode PricingMode
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoomType(
	name, description, image string,
	nightlyRate decimal.Decimal,
	capacity int,
	pricingMode PricingMode,
) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !nightlyRate.IsPositive() {
		return nil, ErrInvalidRate
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !pricingMode.IsValid() {
		return nil, ErrInvalidPricingMode
	}

	return &RoomType{
		id:          uuid.New(),
		name:        name,
		slug:        Slugify(name),
		description: description,
		image:       image,
		nightlyRate: nightlyRate,
		capacity:    capacity,
		pricingMode: pricingMode,
	}, nil
}

func ReconstructRoomType(
	id uuid.UUID,
	name, slug, description, image string,
	nightlyRate decimal.Decimal,
	capacity int,
	pricingMode PricingMode,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		image:       image,
		nightlyRate: nightlyRate,
		capacity:    capacity,
		pricingMode: pricingMode,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *RoomType) ID() uuid.UUID                { return r.id }
func (r *RoomType) Name() string                 { return r.name }
func (r *RoomType) Slug() string                 { return r.slug }
func (r *RoomType) Description() string          { return r.description }
func (r *RoomType) Image() string                { return r.image }
func (r *RoomType) NightlyRate() decimal.Decimal { return r.nightlyRate }
func (r *RoomType) Capacity() int                { return r.capacity }
func (r *RoomType) PricingMode() PricingMode     { return r.pricingMode }
func (r *RoomType) CreatedAt() time.Time         { return r.createdAt }
func (r *RoomType) UpdatedAt() time.Time         { return r.updatedAt }

// ChangeRate sets a new nightly rate. Payments already frozen on existing
// reservations are point-in-time snapshots and are never recomputed.
func (r *RoomType) ChangeRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return ErrInvalidRate
	}
	r.nightlyRate = rate
	return nil
}

func (r *RoomType) ChangeCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	r.capacity = capacity
	return nil
}

func (r *RoomType) ChangeDescription(description, image string) {
	r.description = description
	r.image = image
}

var slugPattern = regexp.MustCompile(`\s+`)

// Slugify derives the URL-friendly identifier used by the admin screens.
func Slugify(name string) string {
	return slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
