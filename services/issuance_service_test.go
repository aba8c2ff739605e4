package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"event-ease/models"
	"event-ease/notify"
	"event-ease/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedPayment(amount int64) models.PaymentConfirmation {
	return models.PaymentConfirmation{
		Succeeded:     true,
		TransactionID: "txn_TEST",
		Amount:        decimal.NewFromInt(amount),
		ProcessedAt:   time.Now(),
	}
}

func TestIssuanceService_Issue_OneTicketPerUnit(t *testing.T) {
	st := store.NewMemoryStore()
	service := NewIssuanceService(st, notify.Noop{})
	service.seatSlot = func() int { return 7 }

	concert := testConcert(1000)
	account := models.NewAccount("alice@example.com")
	intent := models.BookingIntent{
		ConcertID:  concert.ID,
		Tier:       TierPremium,
		Quantity:   3,
		TotalPrice: decimal.NewFromInt(4500),
	}

	tickets, err := service.Issue(context.Background(), intent, account, concert, confirmedPayment(4950))
	require.NoError(t, err)
	require.Len(t, tickets, 3)

	seen := map[string]bool{}
	for _, ticket := range tickets {
		assert.False(t, seen[ticket.ID], "duplicate ticket id %s", ticket.ID)
		seen[ticket.ID] = true

		assert.Equal(t, concert.ID, ticket.ConcertID)
		assert.Equal(t, account.ID, ticket.AccountID)
		assert.Equal(t, concert.Title, ticket.Concert.Title)
		assert.Equal(t, TierPremium, ticket.Tier)
		assert.Equal(t, models.TicketStatusActive, ticket.Status)
		assert.Equal(t, "premium-7", ticket.SeatNumber)
		assert.True(t, ticket.Price.Equal(decimal.NewFromInt(1500)),
			"per-ticket price: got %s", ticket.Price)
	}

	// The issued prices sum back to the intent total.
	sum := decimal.Zero
	for _, ticket := range tickets {
		sum = sum.Add(ticket.Price)
	}
	assert.True(t, sum.Equal(intent.TotalPrice))

	stored, err := st.ListTicketsForAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestIssuanceService_Issue_RejectsUnconfirmedPayment(t *testing.T) {
	service := NewIssuanceService(store.NewMemoryStore(), notify.Noop{})

	_, err := service.Issue(context.Background(),
		models.BookingIntent{Quantity: 1, TotalPrice: decimal.NewFromInt(100)},
		models.NewAccount("alice@example.com"),
		testConcert(100),
		models.PaymentConfirmation{Succeeded: false, FailureReason: "declined"})

	assert.ErrorIs(t, err, ErrPaymentNotConfirmed)
}

// flakyStore fails every append after the first n.
type flakyStore struct {
	store.Store
	appends int
	allow   int
}

func (s *flakyStore) AppendTicket(ctx context.Context, ticket models.Ticket) error {
	if s.appends >= s.allow {
		return fmt.Errorf("%w: write refused", store.ErrStorageUnavailable)
	}
	s.appends++
	return s.Store.AppendTicket(ctx, ticket)
}

func TestIssuanceService_Issue_MidBatchFailure(t *testing.T) {
	backing := store.NewMemoryStore()
	st := &flakyStore{Store: backing, allow: 2}
	service := NewIssuanceService(st, notify.Noop{})

	account := models.NewAccount("bob@example.com")
	intent := models.BookingIntent{
		ConcertID:  "concert-1",
		Tier:       TierStandard,
		Quantity:   4,
		TotalPrice: decimal.NewFromInt(4000),
	}

	issued, err := service.Issue(context.Background(), intent, account, testConcert(1000), confirmedPayment(4400))
	assert.ErrorIs(t, err, ErrIssuanceFailure)
	assert.Len(t, issued, 2)

	// No rollback: the committed part of the batch stays in the store.
	stored, listErr := backing.ListTickets(context.Background())
	require.NoError(t, listErr)
	assert.Len(t, stored, 2)
}
