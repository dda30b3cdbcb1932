package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// SessionStore persists sessions in Redis as JSON documents under an opaque
// uuid token. Key format: session:<token>. Every write refreshes the TTL, so
// active sessions stay alive and idle ones expire.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultSessionTTL = 7 * 24 * time.Hour

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// If ttl <= 0, defaultSessionTTL is used.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, data ports.SessionData) (string, error) {
	token := uuid.NewString()
	if err := s.write(ctx, token, data); err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*ports.SessionData, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data ports.SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		// A corrupt document is unusable; treat it like a missing session.
		return nil, domain.ErrSessionNotFound
	}
	return &data, nil
}

func (s *SessionStore) Save(ctx context.Context, token string, data ports.SessionData) error {
	return s.write(ctx, token, data)
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) write(ctx context.Context, token string, data ports.SessionData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
