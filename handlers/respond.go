package handlers

import (
	"errors"
	"net/http"

	"event-ease/pdf"
	"event-ease/services"
	"event-ease/store"

	"github.com/gin-gonic/gin"
)

// respondError maps the workflow error taxonomy onto HTTP statuses. Every
// error is a non-fatal notice to the client; nothing here kills the process.
func respondError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingLogin),
		errors.Is(err, services.ErrInvalidBookingInput),
		errors.Is(err, services.ErrInvalidCard):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrConcertNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrOperationInFlight),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, pdf.ErrExportInProgress):
		return http.StatusConflict
	case errors.Is(err, store.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
