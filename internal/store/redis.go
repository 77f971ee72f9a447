package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vyrodovalexey/contacts-api/internal/model"
)

// DefaultRedisKeyPrefix is prepended to contact names to form Redis keys.
const DefaultRedisKeyPrefix = "contact:"

// RedisStore implements Store with one Redis string key per contact.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to the Redis server at redisURL and pings it.
func NewRedisStore(ctx context.Context, redisURL, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisStoreFromClient(client, prefix), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

// Create writes the contact with SETNX so only the first writer wins.
func (s *RedisStore) Create(ctx context.Context, contact *model.Contact) (bool, error) {
	if contact == nil {
		return false, ErrNilContact
	}

	data, err := json.Marshal(contact)
	if err != nil {
		return false, fmt.Errorf("encode contact: %w", err)
	}

	created, err := s.client.SetNX(ctx, s.key(contact.Name), data, 0).Result()
	if err != nil {
		return false, fmt.Errorf("create contact: %w", err)
	}

	return created, nil
}

// Retrieve fetches and decodes the contact stored under name.
func (s *RedisStore) Retrieve(ctx context.Context, name string) (*model.Contact, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieve contact: %w", err)
	}

	var c model.Contact
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode contact: %w", err)
	}

	return &c, nil
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
