package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CardDetails struct {
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
	BillingAddress string `json:"billing_address"`
}

// PaymentConfirmation is a tagged result so a real processor can slot in
// without reshaping the issuance contract. The mock processor only ever
// produces Succeeded == true.
type PaymentConfirmation struct {
	Succeeded     bool            `json:"succeeded"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	ProcessedAt   time.Time       `json:"processed_at"`
	FailureReason string          `json:"failure_reason,omitempty"`
}
