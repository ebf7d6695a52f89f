// Package keymutex provides a fixed-size set of mutexes addressed by string
// key. Two goroutines holding the same key are serialized; distinct keys
// usually proceed in parallel (keys hashing to the same shard share a
// mutex, which only costs throughput, never correctness).
package keymutex

import (
	"hash/fnv"
	"sync"
)

const defaultShards = 64

// KeyMutex serializes operations per key via consistent hashing onto a
// fixed set of shards.
type KeyMutex struct {
	shards []sync.Mutex
}

// New creates a KeyMutex with n shards. If n <= 0, defaultShards is used.
func New(n int) *KeyMutex {
	if n <= 0 {
		n = defaultShards
	}
	return &KeyMutex{shards: make([]sync.Mutex, n)}
}

// Lock acquires the mutex owning key.
func (m *KeyMutex) Lock(key string) {
	m.shards[m.shardIndex(key)].Lock()
}

// Unlock releases the mutex owning key. Must pair with a prior Lock of the
// same key.
func (m *KeyMutex) Unlock(key string) {
	m.shards[m.shardIndex(key)].Unlock()
}

// shardIndex maps a key deterministically to a shard.
func (m *KeyMutex) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(m.shards)
}
