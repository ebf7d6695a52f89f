package keymutex

import (
	"sync"
	"testing"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	m := New(8)

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			m.Lock("user-123")
			counter++
			m.Unlock("user-123")
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Fatalf("expected %d increments, got %d", goroutines, counter)
	}
}

func TestKeyMutex_SameKeySameShard(t *testing.T) {
	m := New(16)
	if m.shardIndex("abc") != m.shardIndex("abc") {
		t.Fatalf("shard index not deterministic")
	}
}

func TestKeyMutex_DefaultShards(t *testing.T) {
	m := New(0)
	if len(m.shards) != defaultShards {
		t.Fatalf("expected %d shards, got %d", defaultShards, len(m.shards))
	}
}
