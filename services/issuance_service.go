package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-ease/models"
	"event-ease/monitoring"
	"event-ease/notify"
	"event-ease/store"
	"event-ease/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotConfirmed = errors.New("payment not confirmed")
	ErrIssuanceFailure     = errors.New("ticket issuance failed")
)

// IssuanceService turns a confirmed payment plus a booking intent into
// persisted tickets, one record per unit purchased.
type IssuanceService struct {
	store    store.Store
	notifier notify.Notifier

	// seatSlot is swapped in tests for a deterministic source.
	seatSlot func() int
}

func NewIssuanceService(st store.Store, notifier notify.Notifier) *IssuanceService {
	return &IssuanceService{
		store:    st,
		notifier: notifier,
		seatSlot: utils.SeatSlot,
	}
}

// Issue commits exactly intent.Quantity tickets. Each carries a denormalized
// snapshot of the concert so later catalog edits cannot touch issued tickets.
// A failed append mid-batch returns ErrIssuanceFailure; the tickets already
// appended stay in the store (no compensating delete) and the caller must
// not report success.
func (s *IssuanceService) Issue(ctx context.Context, intent models.BookingIntent, account models.Account, concert models.Concert, confirmation models.PaymentConfirmation) ([]models.Ticket, error) {
	if !confirmation.Succeeded {
		return nil, ErrPaymentNotConfirmed
	}

	unitPrice := intent.TotalPrice.Div(decimal.NewFromInt(int64(intent.Quantity)))
	purchasedAt := time.Now()

	issued := make([]models.Ticket, 0, intent.Quantity)
	for i := 0; i < intent.Quantity; i++ {
		ticket := models.Ticket{
			ID:           uuid.NewString(),
			ConcertID:    concert.ID,
			AccountID:    account.ID,
			Concert:      concert,
			PurchaseDate: purchasedAt,
			Tier:         intent.Tier,
			Price:        unitPrice,
			Status:       models.TicketStatusActive,
			SeatNumber:   fmt.Sprintf("%s-%d", intent.Tier, s.seatSlot()),
		}

		if err := s.store.AppendTicket(ctx, ticket); err != nil {
			return issued, fmt.Errorf("%w: committed %d of %d tickets: %v",
				ErrIssuanceFailure, len(issued), intent.Quantity, err)
		}
		issued = append(issued, ticket)
	}

	monitoring.TrackTicketsIssued(intent.Tier, len(issued))

	ticketIDs := make([]string, len(issued))
	for i, t := range issued {
		ticketIDs[i] = t.ID
	}
	s.notifier.PaymentSucceeded(ctx, account.ID, confirmation.TransactionID, ticketIDs)

	return issued, nil
}
