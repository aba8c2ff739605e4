package handlers

import (
	"net/http"

	"event-ease/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	session *services.Session
	booking *services.BookingService
}

func NewBookingHandler(session *services.Session, booking *services.BookingService) *BookingHandler {
	return &BookingHandler{session: session, booking: booking}
}

type selectRequest struct {
	ConcertID string `json:"concert_id"`
}

// Select - choose a concert, Browsing -> Booking
func (h *BookingHandler) Select(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	concert, err := h.session.SelectConcert(c.Request.Context(), req.ConcertID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"concert": concert,
		"state":   h.session.State(),
	})
}

type submitRequest struct {
	Tier     string `json:"tier"`
	Quantity int    `json:"quantity"`
}

// Submit - build the priced intent, Booking -> Paying. Out-of-range
// quantities are clamped here, before the intent is constructed.
func (h *BookingHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := h.session.SubmitBooking(req.Tier, services.ClampQuantity(req.Quantity))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intent":      intent,
		"service_fee": h.booking.ServiceFee(intent.TotalPrice),
		"total_due":   h.booking.Quote(*intent),
		"state":       h.session.State(),
	})
}

// Back - reverse one workflow step, discarding the state backed out of
func (h *BookingHandler) Back(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": h.session.Back()})
}
