package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// idempotencyProcessing marks a key whose first request is still in flight.
const idempotencyProcessing = "processing"

// IdempotencyStore implements usecase.IdempotencyStore using Redis. A replayed
// Idempotency-Key returns the cached response of the first mutating request
// instead of running the mutation again.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "idempotency:",
	}
}

// CheckAndSet reports whether the key was seen before, returning the cached
// response if so. A fresh key is claimed with a processing placeholder (or the
// given response directly) so concurrent replays observe the claim.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return true, existing, nil
	}
	if err != redis.Nil {
		return false, nil, err
	}

	if response != nil {
		if err := s.client.Set(ctx, fullKey, response, ttl).Err(); err != nil {
			return false, nil, err
		}

		return false, nil, nil
	}

	set, err := s.client.SetNX(ctx, fullKey, idempotencyProcessing, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if !set {
		// A concurrent request claimed the key between Get and SetNX.
		existing, err := s.client.Get(ctx, fullKey).Bytes()
		if err != nil && err != redis.Nil {
			return false, nil, err
		}

		return true, existing, nil
	}

	return false, nil, nil
}

// Update replaces the placeholder with the final response body.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}
