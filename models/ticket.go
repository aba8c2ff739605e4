package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ticket struct {
	ID           string          `json:"id"`
	ConcertID    string          `json:"concert_id"`
	AccountID    string          `json:"account_id"`
	Concert      Concert         `json:"concert"` // snapshot at purchase time
	PurchaseDate time.Time       `json:"purchase_date"`
	Tier         string          `json:"tier"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status"` // active, used, cancelled
	SeatNumber   string          `json:"seat_number,omitempty"`
}

const (
	TicketStatusActive    = "active"
	TicketStatusUsed      = "used"
	TicketStatusCancelled = "cancelled"
)
