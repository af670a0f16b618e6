package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCursorTTL is how long an untouched rotation cursor is kept. An
// expired cursor restarts its rotation from the first item.
const DefaultCursorTTL = 90 * 24 * time.Hour

const defaultMaxCursorRetries = 10

// ErrCursorContention is returned when a cursor kept changing underneath
// every retry of an update.
var ErrCursorContention = errors.New("rotation cursor contention")

// CursorStore persists rotation cursors.
type CursorStore interface {
	// Advance reads the cursor at key (0 if unset), stores step(cursor)
	// and returns the cursor it read. The read and write are atomic with
	// respect to other Advance calls on the same key; step may run more
	// than once and must not have side effects beyond its return value.
	Advance(ctx context.Context, key CursorKey, step func(current int) int) (int, error)
}

// redisCursorStore keeps cursors in Redis and serialises updates with an
// optimistic WATCH/MULTI transaction.
type redisCursorStore struct {
	rdb        *redis.Client
	ttl        time.Duration
	maxRetries int
}

// NewRedisCursorStore creates a Redis-backed cursor store. A ttl of 0 keeps
// cursors forever.
func NewRedisCursorStore(rdb *redis.Client, ttl time.Duration) CursorStore {
	return &redisCursorStore{rdb: rdb, ttl: ttl, maxRetries: defaultMaxCursorRetries}
}

func (s *redisCursorStore) Advance(ctx context.Context, key CursorKey, step func(current int) int) (int, error) {
	k := key.String()

	var read int
	txf := func(tx *redis.Tx) error {
		current, err := readCursor(ctx, tx, k)
		if err != nil {
			return err
		}
		next := step(current)

		// Fails with redis.TxFailedErr if k changed since WATCH.
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, next, s.ttl)
			return nil
		})
		if err == nil {
			read = current
		}
		return err
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err := s.rdb.Watch(ctx, txf, k)
		if err == nil {
			return read, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return 0, fmt.Errorf("advancing cursor %s: %w", k, err)
	}

	return 0, fmt.Errorf("advancing cursor %s after %d attempts: %w", k, s.maxRetries, ErrCursorContention)
}

// readCursor returns the stored cursor, or 0 if it is unset or unreadable.
func readCursor(ctx context.Context, tx *redis.Tx, key string) (int, error) {
	raw, err := tx.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading cursor: %w", err)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("resetting unreadable rotation cursor",
			slog.String("key", key),
			slog.String("value", raw),
		)
		return 0, nil
	}
	return n, nil
}
