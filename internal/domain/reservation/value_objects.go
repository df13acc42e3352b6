package reservation

import (
	"errors"
	"strings"

	"innkeeper/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyGuestName  = errors.New("guest name cannot be empty")
	ErrInvalidEmail    = errors.New("guest email is invalid")
	ErrInvalidGuestNum = errors.New("guest count must be positive")
)

// Guest is the contact information captured on the booking form.
type Guest struct {
	name    string
	surname string
	email   string
	phone   string
}

func NewGuest(name, surname, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	email = strings.TrimSpace(email)
	if name == "" {
		return Guest{}, ErrEmptyGuestName
	}
	if email == "" || !strings.Contains(email, "@") {
		return Guest{}, ErrInvalidEmail
	}
	return Guest{
		name:    name,
		surname: surname,
		email:   email,
		phone:   strings.TrimSpace(phone),
	}, nil
}

func (g Guest) Name() string    { return g.name }
func (g Guest) Surname() string { return g.surname }
func (g Guest) Email() string   { return g.email }
func (g Guest) Phone() string   { return g.phone }

func (g Guest) FullName() string {
	if g.surname == "" {
		return g.name
	}
	return g.name + " " + g.surname
}

// Payment is the price breakdown frozen onto a reservation when it is
// created. It is a point-in-time snapshot: room rate changes after creation
// never alter it, and nothing in the system recomputes it.
type Payment struct {
	Nights    int
	Guests    int
	BasePrice decimal.Decimal
	ExtraFee  decimal.Decimal
	Total     decimal.Decimal
}

func PaymentFromQuote(q pricing.Quote) Payment {
	return Payment{
		Nights:    q.Nights,
		Guests:    q.Guests,
		BasePrice: q.BasePrice,
		ExtraFee:  q.ExtraFee,
		Total:     q.Total,
	}
}
