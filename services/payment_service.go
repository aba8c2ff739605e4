package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"event-ease/models"
	"event-ease/utils"

	"github.com/shopspring/decimal"
)

var ErrInvalidCard = errors.New("invalid card details")

// PaymentProcessor is the slot a real provider would fill. The issuance
// contract only consumes the tagged confirmation, so swapping the mock for a
// live processor needs no reshaping downstream.
type PaymentProcessor interface {
	Process(ctx context.Context, card models.CardDetails, amount decimal.Decimal) (*models.PaymentConfirmation, error)
}

// MockProcessor emulates a payment network round trip: a fixed delay, then
// success. There is no decline path.
type MockProcessor struct {
	Delay time.Duration
}

func NewMockProcessor(delay time.Duration) *MockProcessor {
	return &MockProcessor{Delay: delay}
}

func (p *MockProcessor) Process(ctx context.Context, card models.CardDetails, amount decimal.Decimal) (*models.PaymentConfirmation, error) {
	if err := validateCard(card); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.Delay):
	}

	ref, err := utils.GenerateCode(8)
	if err != nil {
		return nil, err
	}

	return &models.PaymentConfirmation{
		Succeeded:     true,
		TransactionID: "txn_" + ref,
		Amount:        amount,
		ProcessedAt:   time.Now(),
	}, nil
}

// validateCard is a shape check only; nothing is verified against a payment
// network and the details are never persisted.
func validateCard(card models.CardDetails) error {
	number := strings.ReplaceAll(card.CardNumber, " ", "")
	if len(number) != 16 {
		return errors.Join(ErrInvalidCard, errors.New("card number must have 16 digits"))
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return errors.Join(ErrInvalidCard, errors.New("card number must be numeric"))
		}
	}
	if card.ExpiryDate == "" || card.CVV == "" || card.CardholderName == "" {
		return errors.Join(ErrInvalidCard, errors.New("expiry, cvv and cardholder name are required"))
	}
	return nil
}

var _ PaymentProcessor = (*MockProcessor)(nil)
