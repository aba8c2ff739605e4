package notify

import (
	"context"
	"log"

	"event-ease/utils"

	pubnub "github.com/pubnub/go"
)

// Notifier delivers best-effort realtime messages to the owning account's
// channel. Delivery failures never fail the booking flow.
type Notifier interface {
	PaymentSucceeded(ctx context.Context, accountID, transactionID string, ticketIDs []string)
}

// PubNubNotifier publishes to the user-<id> channel. Publishes go through a
// breaker so a dead PubNub backend stops costing a round trip per booking.
type PubNubNotifier struct {
	pn      *pubnub.PubNub
	breaker *utils.Breaker
}

func NewPubNubNotifier(pn *pubnub.PubNub) *PubNubNotifier {
	return &PubNubNotifier{
		pn:      pn,
		breaker: utils.NewBreaker("pubnub"),
	}
}

func (n *PubNubNotifier) PaymentSucceeded(ctx context.Context, accountID, transactionID string, ticketIDs []string) {
	channel := "user-" + accountID

	err := n.breaker.Execute(ctx, func() error {
		_, _, err := n.pn.Publish().
			Channel(channel).
			Message(map[string]interface{}{
				"type":           "payment_success",
				"transaction_id": transactionID,
				"tickets":        ticketIDs,
			}).
			Execute()
		return err
	})
	if err != nil {
		log.Printf("notify: payment_success publish to %s failed: %v", channel, err)
	}
}

// Noop is used in tests and when no PubNub keys are configured.
type Noop struct{}

func (Noop) PaymentSucceeded(ctx context.Context, accountID, transactionID string, ticketIDs []string) {
}

var (
	_ Notifier = (*PubNubNotifier)(nil)
	_ Notifier = Noop{}
)
