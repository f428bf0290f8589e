package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ContactsUnreadKey      = "contacts:unread"
	ContactsDailyKeyPrefix = "contacts:daily:"
	DailyKeyRetention      = 7 * 24 * time.Hour
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func DailyContactsKey(day time.Time) string {
	return ContactsDailyKeyPrefix + day.Format("2006-01-02")
}

// RecordContact bumps the unread counter and the per-day counter for at.
// A zero at counts against today.
func (s *Store) RecordContact(ctx context.Context, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	dailyKey := DailyContactsKey(at.Local())

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, ContactsUnreadKey)
		pipe.Incr(ctx, dailyKey)
		pipe.Expire(ctx, dailyKey, DailyKeyRetention)
		return nil
	})
	return err
}
