package models

import (
	"github.com/shopspring/decimal"
)

type Concert struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Artist           string          `json:"artist"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
	Venue            string          `json:"venue"`
	Location         string          `json:"location"`
	Price            decimal.Decimal `json:"price"`
	Image            string          `json:"image,omitempty"`
	Description      string          `json:"description"`
	AvailableTickets int             `json:"available_tickets"`
	Category         string          `json:"category"`
}
