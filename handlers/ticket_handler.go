package handlers

import (
	"fmt"
	"net/http"

	"event-ease/monitoring"
	"event-ease/pdf"
	"event-ease/services"
	"event-ease/store"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	session *services.Session
	store   store.Store
	tracker *pdf.Tracker
}

func NewTicketHandler(session *services.Session, st store.Store, tracker *pdf.Tracker) *TicketHandler {
	return &TicketHandler{session: session, store: st, tracker: tracker}
}

// List - the active account's tickets, in purchase order
func (h *TicketHandler) List(c *gin.Context) {
	account := h.session.Account()
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	tickets, err := h.store.ListTicketsForAccount(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// Export - download one owned ticket as a PDF
func (h *TicketHandler) Export(c *gin.Context) {
	account := h.session.Account()
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	ticketID := c.Param("id")

	tickets, err := h.store.ListTicketsForAccount(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	for _, ticket := range tickets {
		if ticket.ID != ticketID {
			continue
		}

		if err := h.tracker.Begin(ticket.ID); err != nil {
			respondError(c, err)
			return
		}
		defer h.tracker.End(ticket.ID)

		document, err := pdf.TicketPDF(ticket)
		if err != nil {
			monitoring.TrackExport("single", "error")
			respondError(c, err)
			return
		}

		monitoring.TrackExport("single", "ok")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.TicketFileName(ticket)))
		c.Data(http.StatusOK, "application/pdf", document)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
}

// ExportAll - download every owned ticket in one document
func (h *TicketHandler) ExportAll(c *gin.Context) {
	account := h.session.Account()
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	tickets, err := h.store.ListTicketsForAccount(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(tickets) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no tickets to export"})
		return
	}

	if err := h.tracker.Begin(pdf.AllTickets); err != nil {
		respondError(c, err)
		return
	}
	defer h.tracker.End(pdf.AllTickets)

	document, err := pdf.AllTicketsPDF(tickets)
	if err != nil {
		monitoring.TrackExport("all", "error")
		respondError(c, err)
		return
	}

	monitoring.TrackExport("all", "ok")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.BatchFileName))
	c.Data(http.StatusOK, "application/pdf", document)
}
