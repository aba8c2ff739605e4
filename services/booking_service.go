package services

import (
	"errors"
	"fmt"

	"event-ease/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidBookingInput = errors.New("invalid booking input")

// Quantity bounds per booking. Out-of-range values submitted directly are
// rejected; ClampQuantity is for callers that prefer to coerce first.
const (
	MinQuantity = 1
	MaxQuantity = 8
)

const (
	TierStandard = "standard"
	TierPremium  = "premium"
	TierPremier  = "premier"
)

// serviceFeeRate is applied on top of the ticket total at payment time.
var serviceFeeRate = decimal.NewFromFloat(0.10)

// Tier is a seating class. The multiplier scales the concert's base price.
type Tier struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Multiplier  decimal.Decimal `json:"-"`
}

// Tiers returns the three seating classes, cheapest first.
func Tiers() []Tier {
	return []Tier{
		{Name: TierStandard, Description: "General admission seating", Multiplier: decimal.NewFromInt(1)},
		{Name: TierPremium, Description: "Premium seating with better views", Multiplier: decimal.NewFromFloat(1.5)},
		{Name: TierPremier, Description: "Front section with exclusive access", Multiplier: decimal.NewFromInt(2)},
	}
}

// BookingService prices bookings. It is pure: no storage, no clock, the same
// inputs always produce the same intent.
type BookingService struct{}

func NewBookingService() *BookingService {
	return &BookingService{}
}

// UnitPrice is the per-ticket price for a tier, the concert's base price
// scaled by the tier multiplier.
func (s *BookingService) UnitPrice(concert models.Concert, tier string) (decimal.Decimal, error) {
	for _, t := range Tiers() {
		if t.Name == tier {
			return concert.Price.Mul(t.Multiplier), nil
		}
	}
	return decimal.Decimal{}, fmt.Errorf("%w: unknown tier %q", ErrInvalidBookingInput, tier)
}

// BuildIntent validates the selection and prices it. TotalPrice excludes the
// service fee; Quote adds it.
func (s *BookingService) BuildIntent(concert models.Concert, tier string, quantity int) (models.BookingIntent, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return models.BookingIntent{}, fmt.Errorf("%w: quantity %d outside [%d, %d]", ErrInvalidBookingInput, quantity, MinQuantity, MaxQuantity)
	}

	unit, err := s.UnitPrice(concert, tier)
	if err != nil {
		return models.BookingIntent{}, err
	}

	return models.BookingIntent{
		ConcertID:  concert.ID,
		Tier:       tier,
		Quantity:   quantity,
		TotalPrice: unit.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// ServiceFee is the surcharge on a ticket total.
func (s *BookingService) ServiceFee(total decimal.Decimal) decimal.Decimal {
	return total.Mul(serviceFeeRate)
}

// Quote is the amount actually charged: ticket total plus service fee.
func (s *BookingService) Quote(intent models.BookingIntent) decimal.Decimal {
	return intent.TotalPrice.Add(s.ServiceFee(intent.TotalPrice))
}

// ClampQuantity coerces a requested quantity into the allowed range.
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
