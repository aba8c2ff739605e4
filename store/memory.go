package store

import (
	"context"
	"sync"

	"event-ease/models"
)

// MemoryStore is the in-process adapter used by tests and by runs without a
// Redis backend. Same whole-collection semantics as RedisStore.
type MemoryStore struct {
	mu      sync.RWMutex
	account *models.Account
	tickets []models.Ticket
	catalog []models.Concert
	seeded  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveAccount(ctx context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = &account
	return nil
}

func (s *MemoryStore) GetAccount(ctx context.Context) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.account == nil {
		return nil, nil
	}
	account := *s.account
	return &account, nil
}

func (s *MemoryStore) ClearAccount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	return nil
}

func (s *MemoryStore) AppendTicket(ctx context.Context, ticket models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = append(s.tickets, ticket)
	return nil
}

func (s *MemoryStore) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tickets := make([]models.Ticket, len(s.tickets))
	copy(tickets, s.tickets)
	return tickets, nil
}

func (s *MemoryStore) ListTicketsForAccount(ctx context.Context, accountID string) ([]models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owned := []models.Ticket{}
	for _, t := range s.tickets {
		if t.AccountID == accountID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

func (s *MemoryStore) SeedCatalogIfAbsent(ctx context.Context, concerts []models.Concert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded {
		return nil
	}
	s.catalog = make([]models.Concert, len(concerts))
	copy(s.catalog, concerts)
	s.seeded = true
	return nil
}

func (s *MemoryStore) GetCatalog(ctx context.Context) ([]models.Concert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	catalog := make([]models.Concert, len(s.catalog))
	copy(catalog, s.catalog)
	return catalog, nil
}

var _ Store = (*MemoryStore)(nil)
