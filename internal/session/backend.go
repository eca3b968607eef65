// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// valkeyBackend stores sessions in Valkey, which enforces TTL expiry
// itself. This is the backend used when VALKEY_HOST is configured.
type valkeyBackend struct {
	client *redis.Client
}

// NewValkeyBackend wraps a Valkey client as a session backend.
func NewValkeyBackend(client *redis.Client) Backend {
	return &valkeyBackend{client: client}
}

func (b *valkeyBackend) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return b.client.Set(ctx, key, payload, ttl).Err()
}

func (b *valkeyBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := b.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (b *valkeyBackend) Del(ctx context.Context, key string) error {
	return b.client.Del(ctx, key).Err()
}

// memoryBackend keeps sessions in process memory. Sessions are lost on
// restart, which is acceptable for a single-operator site run without
// Valkey.
type memoryBackend struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	payload []byte
	expires time.Time
}

// NewMemoryBackend creates an in-memory session backend.
func NewMemoryBackend() Backend {
	return &memoryBackend{entries: make(map[string]memoryEntry)}
}

func (b *memoryBackend) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = memoryEntry{
		payload: append([]byte(nil), payload...),
		expires: time.Now().Add(ttl),
	}
	return nil
}

func (b *memoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry, ok := b.entries[key]
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expires) {
		delete(b.entries, key)
		return nil, false, nil
	}
	return entry.payload, true, nil
}

func (b *memoryBackend) Del(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, key)
	return nil
}
