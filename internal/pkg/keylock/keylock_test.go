package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLock_SerializesSameKey(t *testing.T) {
	kl := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = kl.WithLock("consignment-1", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestWithLock_DifferentKeysDoNotBlock(t *testing.T) {
	kl := New()

	kl.Lock("a")
	done := make(chan struct{})
	go func() {
		kl.Lock("b")
		kl.Unlock("b")
		close(done)
	}()

	<-done // would deadlock if "b" waited on "a"
	kl.Unlock("a")
}

func TestUnlock_ReleasesEntry(t *testing.T) {
	kl := New()
	kl.Lock("x")
	kl.Unlock("x")

	kl.mu.Lock()
	defer kl.mu.Unlock()
	assert.Empty(t, kl.locks)
}
