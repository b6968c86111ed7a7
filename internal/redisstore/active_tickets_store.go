package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ActiveTicket is the slim projection of an open ticket kept in redis for
// quick dashboard access. The tickets table stays the source of truth.
type ActiveTicket struct {
	TicketID  int64     `json:"ticket_id"`
	Plate     string    `json:"plate"`
	RateID    int64     `json:"rate_id"`
	EntryTime time.Time `json:"entry_time"`
}

// Store manages the active ticket cache.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore returns a redis-backed store.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) key(ticketID int64) string {
	return fmt.Sprintf("smartpark:tickets:active:%d", ticketID)
}

// Save caches an open ticket.
func (s *Store) Save(ctx context.Context, ticket ActiveTicket) error {
	data, err := json.Marshal(ticket)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(ticket.TicketID), data, s.ttl).Err()
}

// Get returns a cached ticket.
func (s *Store) Get(ctx context.Context, ticketID int64) (*ActiveTicket, error) {
	raw, err := s.client.Get(ctx, s.key(ticketID)).Result()
	if err != nil {
		return nil, err
	}
	var ticket ActiveTicket
	if err := json.Unmarshal([]byte(raw), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Delete removes a cached ticket once it closes.
func (s *Store) Delete(ctx context.Context, ticketID int64) error {
	return s.client.Del(ctx, s.key(ticketID)).Err()
}
