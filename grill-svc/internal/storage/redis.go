package storage

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"mikes-grill/grill-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	ContactsUnreadKey      = "contacts:unread"
	ContactsDailyKeyPrefix = "contacts:daily:"
	ThrottleCooldownCap    = 30 * time.Second
)

type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) SessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) CreateSession(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.SessionKey(session.Token), payload, s.TTL).Err()
}

// GetSession returns nil without error when the token is unknown or expired.
func (s *RedisSessionStore) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := s.Client.Get(ctx, s.SessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	session.Token = token
	return &session, nil
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, token string) error {
	return s.Client.Del(ctx, s.SessionKey(token)).Err()
}

// RedisLoginThrottle enforces a cooldown of min(30s, 2^failures seconds) after each failed login.
type RedisLoginThrottle struct {
	Client *redis.Client
}

func NewRedisLoginThrottle(client *redis.Client) *RedisLoginThrottle {
	return &RedisLoginThrottle{Client: client}
}

func (t *RedisLoginThrottle) failKey(username string) string {
	return "login:fail:" + username
}

func (t *RedisLoginThrottle) cooldownKey(username string) string {
	return "login:cooldown:" + username
}

func (t *RedisLoginThrottle) WaitSeconds(ctx context.Context, username string) (int, error) {
	ttl, err := t.Client.PTTL(ctx, t.cooldownKey(username)).Result()
	if err != nil {
		return 0, err
	}
	if ttl <= 0 {
		return 0, nil
	}
	return int(math.Ceil(ttl.Seconds())), nil
}

func (t *RedisLoginThrottle) RecordFailure(ctx context.Context, username string) error {
	failures, err := t.Client.Incr(ctx, t.failKey(username)).Result()
	if err != nil {
		return err
	}
	t.Client.Expire(ctx, t.failKey(username), 24*time.Hour)
	return t.Client.Set(ctx, t.cooldownKey(username), "1", CooldownForFailures(int(failures))).Err()
}

func (t *RedisLoginThrottle) Reset(ctx context.Context, username string) error {
	return t.Client.Del(ctx, t.failKey(username), t.cooldownKey(username)).Err()
}

func CooldownForFailures(failures int) time.Duration {
	if failures <= 0 {
		return 0
	}
	if failures >= 5 {
		return ThrottleCooldownCap
	}
	cooldown := time.Duration(1<<failures) * time.Second
	if cooldown > ThrottleCooldownCap {
		return ThrottleCooldownCap
	}
	return cooldown
}

type RedisContactCounter struct {
	Client *redis.Client
}

func NewRedisContactCounter(client *redis.Client) *RedisContactCounter {
	return &RedisContactCounter{Client: client}
}

func DailyContactsKey(day time.Time) string {
	return ContactsDailyKeyPrefix + day.Format("2006-01-02")
}

func (c *RedisContactCounter) Summary(ctx context.Context) (domain.ContactSummary, error) {
	var summary domain.ContactSummary
	unread, err := c.Client.Get(ctx, ContactsUnreadKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return summary, err
	}
	today, err := c.Client.Get(ctx, DailyContactsKey(time.Now())).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return summary, err
	}
	summary.Unread = unread
	summary.Today = today
	return summary, nil
}

func (c *RedisContactCounter) ResetUnread(ctx context.Context) error {
	return c.Client.Del(ctx, ContactsUnreadKey).Err()
}
