package store

import (
	"context"
	"errors"

	"event-ease/models"
)

// Fixed profile keys. Every value is a whole JSON document: reads and writes
// always cover the entire collection, which bounds the usable ticket list to
// what fits in a single value.
const (
	KeyAccount = "event_ease_user"
	KeyTickets = "event_ease_tickets"
	KeyCatalog = "event_ease_concerts"
)

// ErrStorageUnavailable wraps any read or write failure of the backing
// store. Callers surface it as a non-fatal notice, never a crash.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store holds everything durable for a single profile: the one active
// account, the ticket list, and the seeded catalog.
type Store interface {
	SaveAccount(ctx context.Context, account models.Account) error
	// GetAccount returns (nil, nil) when no account is stored.
	GetAccount(ctx context.Context) (*models.Account, error)
	ClearAccount(ctx context.Context) error

	AppendTicket(ctx context.Context, ticket models.Ticket) error
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	ListTicketsForAccount(ctx context.Context, accountID string) ([]models.Ticket, error)

	// SeedCatalogIfAbsent writes the catalog only when none exists yet, so
	// the seed happens exactly once per profile no matter how often the
	// process boots.
	SeedCatalogIfAbsent(ctx context.Context, concerts []models.Concert) error
	GetCatalog(ctx context.Context) ([]models.Concert, error)
}
