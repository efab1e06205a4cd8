package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"phrasebingo/models"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "room:"
	// Sessions expire after a couple of hours of inactivity; every write
	// refreshes the TTL.
	sessionTTL = 2 * time.Hour
	// Per-operation deadline so a slow redis surfaces as an error to the
	// caller instead of a hung request.
	opTimeout = 3 * time.Second
)

// RedisStore keeps each session as a JSON document under room:<CODE>.
// CompareAndSwap runs as a WATCH-guarded transaction, so a concurrent write
// between read and write aborts the pipeline and reports ErrConflict.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(roomCode string) string {
	return keyPrefix + strings.ToUpper(roomCode)
}

func (s *RedisStore) Get(ctx context.Context, roomCode string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, sessionKey(roomCode)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", roomCode, err)
	}
	return &session, nil
}

func (s *RedisStore) CreateIfAbsent(ctx context.Context, session *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.RoomCode, err)
	}

	ok, err := s.client.SetNX(ctx, sessionKey(session.RoomCode), data, sessionTTL).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return ErrConflict
	}
	return nil
}

func (s *RedisStore) CompareAndSwap(ctx context.Context, expectedVersion int64, session *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	key := sessionKey(session.RoomCode)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("redis get: %w", err)
		}

		var current models.Session
		if err := json.Unmarshal([]byte(data), &current); err != nil {
			return fmt.Errorf("unmarshal session %s: %w", session.RoomCode, err)
		}
		if current.Version != expectedVersion {
			return ErrConflict
		}

		session.Version = expectedVersion + 1
		next, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("marshal session %s: %w", session.RoomCode, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, sessionTTL)
			return nil
		})
		return err
	}, key)

	// The key changed under the WATCH before the pipeline committed.
	if err == redis.TxFailedErr {
		return ErrConflict
	}
	return err
}
