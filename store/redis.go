package store

import (
	"context"
	"encoding/json"
	"fmt"

	"event-ease/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the profile in Redis, one JSON blob per key. Collections
// are rewritten wholesale on every mutation; two clients appending to the
// same profile race last-write-wins and one append can be lost. That is the
// accepted single-profile contract, not something this adapter fixes.
type RedisStore struct {
	Redis *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{Redis: redisClient}
}

func (s *RedisStore) SaveAccount(ctx context.Context, account models.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("marshal account: %w", err)
	}

	if err := s.Redis.Set(ctx, KeyAccount, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *RedisStore) GetAccount(ctx context.Context) (*models.Account, error) {
	data, err := s.Redis.Get(ctx, KeyAccount).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	var account models.Account
	if err := json.Unmarshal([]byte(data), &account); err != nil {
		return nil, fmt.Errorf("unmarshal account: %w", err)
	}
	return &account, nil
}

func (s *RedisStore) ClearAccount(ctx context.Context) error {
	if err := s.Redis.Del(ctx, KeyAccount).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *RedisStore) AppendTicket(ctx context.Context, ticket models.Ticket) error {
	tickets, err := s.ListTickets(ctx)
	if err != nil {
		return err
	}

	tickets = append(tickets, ticket)

	data, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("marshal tickets: %w", err)
	}

	if err := s.Redis.Set(ctx, KeyTickets, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *RedisStore) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	data, err := s.Redis.Get(ctx, KeyTickets).Result()
	if err == redis.Nil {
		return []models.Ticket{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	var tickets []models.Ticket
	if err := json.Unmarshal([]byte(data), &tickets); err != nil {
		return nil, fmt.Errorf("unmarshal tickets: %w", err)
	}
	return tickets, nil
}

func (s *RedisStore) ListTicketsForAccount(ctx context.Context, accountID string) ([]models.Ticket, error) {
	tickets, err := s.ListTickets(ctx)
	if err != nil {
		return nil, err
	}

	owned := []models.Ticket{}
	for _, t := range tickets {
		if t.AccountID == accountID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

func (s *RedisStore) SeedCatalogIfAbsent(ctx context.Context, concerts []models.Concert) error {
	data, err := json.Marshal(concerts)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	// SETNX keeps the first-seeded catalog even if the seed list changes
	// between boots.
	if err := s.Redis.SetNX(ctx, KeyCatalog, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *RedisStore) GetCatalog(ctx context.Context) ([]models.Concert, error) {
	data, err := s.Redis.Get(ctx, KeyCatalog).Result()
	if err == redis.Nil {
		return []models.Concert{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	var concerts []models.Concert
	if err := json.Unmarshal([]byte(data), &concerts); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return concerts, nil
}

var _ Store = (*RedisStore)(nil)
