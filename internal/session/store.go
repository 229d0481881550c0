package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL is how long a login session stays valid without re-authentication.
const TTL = 24 * time.Hour

// Store keeps login sessions in Redis, keyed by an opaque random token handed
// to the client as a cookie.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create stores a new session for the user and returns its token.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.client.Set(ctx, sessionKey(token), userID, TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get resolves a session token to a user ID. Returns "" for unknown or
// expired tokens.
func (s *Store) Get(ctx context.Context, token string) (string, error) {
	result := s.client.Get(ctx, sessionKey(token))
	if result.Err() == redis.Nil {
		return "", nil
	}
	if result.Err() != nil {
		return "", fmt.Errorf("failed to read session: %w", result.Err())
	}
	return result.Val(), nil
}

// Destroy removes a session.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
