package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisProvider implements IterableProvider for Redis. Ledger keys are
// already human-readable prefixed strings, so they map onto Redis keys
// directly.
type RedisProvider struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisProvider connects to the Redis instance at address
func NewRedisProvider(address string) (*RedisProvider, error) {
	client := redis.NewClient(&redis.Options{
		Addr: address,
	})

	ctx := context.Background()

	// Test connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisProvider{
		client: client,
		ctx:    ctx,
	}, nil
}

func (p *RedisProvider) Get(key []byte) ([]byte, error) {
	value, err := p.client.Get(p.ctx, string(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // absent key, consistent with interface
		}
		return nil, err
	}
	return value, nil
}

func (p *RedisProvider) Put(key, value []byte) error {
	return p.client.Set(p.ctx, string(key), value, 0).Err()
}

func (p *RedisProvider) Delete(key []byte) error {
	return p.client.Del(p.ctx, string(key)).Err()
}

func (p *RedisProvider) Has(key []byte) (bool, error) {
	count, err := p.client.Exists(p.ctx, string(key)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Close closes the database connection
func (p *RedisProvider) Close() error {
	return p.client.Close()
}

func (p *RedisProvider) Batch() DatabaseBatch {
	return &redisBatch{
		client: p.client,
		ctx:    p.ctx,
		pipe:   p.client.Pipeline(),
	}
}

// IteratePrefix iterates over keys matching the prefix using SCAN
func (p *RedisProvider) IteratePrefix(prefix []byte, callback func(key, value []byte) bool) error {
	pattern := string(prefix) + "*"
	var cursor uint64
	for {
		keys, newCursor, err := p.client.Scan(p.ctx, cursor, pattern, 1000).Result()
		if err != nil {
			return err
		}
		cursor = newCursor
		for _, k := range keys {
			value, err := p.client.Get(p.ctx, k).Bytes()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				return err
			}
			if !callback([]byte(k), value) {
				return nil
			}
		}
		if cursor == 0 {
			break
		}
	}
	return nil
}

type redisBatch struct {
	client *redis.Client
	ctx    context.Context
	pipe   redis.Pipeliner
}

func (b *redisBatch) Put(key, value []byte) {
	b.pipe.Set(b.ctx, string(key), value, 0)
}

func (b *redisBatch) Delete(key []byte) {
	b.pipe.Del(b.ctx, string(key))
}

func (b *redisBatch) Write() error {
	_, err := b.pipe.Exec(b.ctx)
	return err
}

func (b *redisBatch) Reset() {
	b.pipe.Discard()
	b.pipe = b.client.Pipeline()
}
