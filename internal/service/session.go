// File: internal/service/session.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/cache"
	"jobboard/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound session 不存在或已過期
var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "session:"

var (
	newSessionID  = uuid.NewString
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// Session 是已驗證的身分，由 middleware 放入 request context 後明確傳給 handler
type Session struct {
	ID       string         `json:"-"`
	UserID   int            `json:"user_id"`
	UserType model.UserType `json:"user_type"`
	Email    string         `json:"email"`
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// CreateSession 將 session 寫入 Redis 並回傳新的 session ID
func CreateSession(ctx context.Context, c cache.Cache, s Session, ttl time.Duration) (string, error) {
	if !s.UserType.Valid() {
		return "", fmt.Errorf("CreateSession: %w", model.ErrUnknownUserType)
	}
	payload, err := jsonMarshal(s)
	if err != nil {
		return "", fmt.Errorf("CreateSession: %w", err)
	}
	id := newSessionID()
	if err := c.Set(ctx, sessionKey(id), payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("CreateSession: %w", err)
	}
	return id, nil
}

// LoadSession 讀取 session；使用者類型無法辨識時視為無效 session
func LoadSession(ctx context.Context, c cache.Cache, id string) (*Session, error) {
	raw, err := c.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("LoadSession: %w", err)
	}
	s := &Session{}
	if err := jsonUnmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("LoadSession: %w", err)
	}
	if s.UserID == 0 || !s.UserType.Valid() {
		return nil, fmt.Errorf("LoadSession: %w", ErrSessionNotFound)
	}
	s.ID = id
	return s, nil
}

// DestroySession 刪除 session，不存在時不視為錯誤
func DestroySession(ctx context.Context, c cache.Cache, id string) error {
	if err := c.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("DestroySession: %w", err)
	}
	return nil
}
