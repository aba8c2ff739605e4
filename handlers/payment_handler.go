package handlers

import (
	"net/http"

	"event-ease/models"
	"event-ease/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	session *services.Session
}

func NewPaymentHandler(session *services.Session) *PaymentHandler {
	return &PaymentHandler{session: session}
}

type confirmRequest struct {
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
	BillingAddress string `json:"billing_address"`
}

// Confirm - run the mock processor, then issuance. A non-200 response means
// no confirmation: on a mid-batch issuance failure the session stays in
// Paying and nothing here claims success.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tickets, err := h.session.ConfirmPayment(c.Request.Context(), models.CardDetails{
		CardNumber:     req.CardNumber,
		ExpiryDate:     req.ExpiryDate,
		CVV:            req.CVV,
		CardholderName: req.CardholderName,
		BillingAddress: req.BillingAddress,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tickets": tickets,
		"state":   h.session.State(),
	})
}
