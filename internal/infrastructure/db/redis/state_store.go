package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultStateTTL = 10 * time.Minute

// StateStore keeps the anti-forgery state of in-flight federated logins.
// Key format: oauth2:state:<state>
type StateStore struct {
	client *redis.Client
}

func NewStateStore(client *redis.Client) *StateStore {
	return &StateStore{client: client}
}

// Put records state until ttl elapses.
func (s *StateStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultStateTTL
	}
	if err := s.client.Set(ctx, s.key(state), "1", ttl).Err(); err != nil {
		return fmt.Errorf("store oauth state: %w", err)
	}
	return nil
}

// Consume reports whether state was issued and not yet used, removing it in
// the same round trip so a state is accepted at most once.
func (s *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	err := s.client.GetDel(ctx, s.key(state)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consume oauth state: %w", err)
	}
	return true, nil
}

func (s *StateStore) key(state string) string {
	return "oauth2:state:" + state
}
