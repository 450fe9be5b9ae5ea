package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "draft:"

// DraftStore keeps the per-session reservation draft in Redis. The TTL is the
// abandonment window: an untouched draft simply expires.
type DraftStore struct {
	Rdb *redis.Client
	TTL time.Duration
}

func (s *DraftStore) key(sessionID string) string {
	return draftKeyPrefix + sessionID
}

// Get returns the session's draft, or nil when none exists.
func (s *DraftStore) Get(ctx context.Context, sessionID string) (*Draft, error) {
	b, err := s.Rdb.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Save writes the draft back and refreshes the TTL (every step touch extends
// the abandonment window).
func (s *DraftStore) Save(ctx context.Context, sessionID string, d *Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.Rdb.Set(ctx, s.key(sessionID), b, s.TTL).Err()
}

// Delete removes the draft (called after a confirmed reservation).
func (s *DraftStore) Delete(ctx context.Context, sessionID string) error {
	return s.Rdb.Del(ctx, s.key(sessionID)).Err()
}
