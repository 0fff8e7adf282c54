package redis

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/redis/go-redis/v9"
)

// SessionStore เก็บ identity ของ user ที่ login อยู่
// ไม่มี TTL เชื่อ identity จนกว่าจะ logout (ลบ key) เท่านั้น
type SessionStore struct {
	client *Client
}

func NewSessionStore(client *Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("session:%s", userID)
}

func (s *SessionStore) Save(ctx context.Context, userID uuid.UUID, username string) error {
	return s.client.Set(ctx, sessionKey(userID), username, 0)
}

func (s *SessionStore) Get(ctx context.Context, userID uuid.UUID) (string, bool, error) {
	username, err := s.client.Get(ctx, sessionKey(userID))
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return username, true, nil
}

func (s *SessionStore) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(userID))
}
