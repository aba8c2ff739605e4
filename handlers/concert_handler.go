package handlers

import (
	"net/http"

	"event-ease/services"
	"event-ease/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ConcertHandler struct {
	store   store.Store
	booking *services.BookingService
}

func NewConcertHandler(st store.Store, booking *services.BookingService) *ConcertHandler {
	return &ConcertHandler{store: st, booking: booking}
}

// List - the seeded catalog
func (h *ConcertHandler) List(c *gin.Context) {
	concerts, err := h.store.GetCatalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"concerts": concerts})
}

type tierQuote struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Get - one concert plus its per-tier unit prices for the booking form
func (h *ConcertHandler) Get(c *gin.Context) {
	concertID := c.Param("id")

	concerts, err := h.store.GetCatalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	for _, concert := range concerts {
		if concert.ID != concertID {
			continue
		}

		tiers := make([]tierQuote, 0, 3)
		for _, t := range services.Tiers() {
			unit, err := h.booking.UnitPrice(concert, t.Name)
			if err != nil {
				respondError(c, err)
				return
			}
			tiers = append(tiers, tierQuote{Name: t.Name, Description: t.Description, UnitPrice: unit})
		}

		c.JSON(http.StatusOK, gin.H{"concert": concert, "tiers": tiers})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "concert not found"})
}
