package models

import (
	"github.com/shopspring/decimal"
)

// BookingIntent is the transient result of the booking form: it lives in
// session state until payment confirms or the user backs out, and is never
// written to the store.
type BookingIntent struct {
	ConcertID  string          `json:"concert_id"`
	Tier       string          `json:"tier"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
