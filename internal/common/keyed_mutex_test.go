package common

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SameKey(t *testing.T) {
	m := NewKeyedMutex()

	counter := 0
	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("user1")
			defer unlock()

			// Not atomic, only safe if the lock works.
			value := counter
			value++
			counter = value
		}()
	}

	wg.Wait()
	require.Equal(t, 100, counter)
}

func TestKeyedMutex_DifferentKeys(t *testing.T) {
	m := NewKeyedMutex()

	unlock1 := m.Lock("user1")
	defer unlock1()

	done := make(chan struct{})
	go func() {
		unlock2 := m.Lock("user2")
		unlock2()
		close(done)
	}()

	<-done
}

func TestKeyedMutex_ReleaseKeys(t *testing.T) {
	m := NewKeyedMutex()

	for i := 0; i < 1000; i++ {
		unlock := m.Lock(fmt.Sprintf("unknown-user-%d", i))
		unlock()
	}
	require.Equal(t, 0, m.Len())

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			unlock := m.Lock(fmt.Sprintf("user%d", i%5))
			defer unlock()
		}(i)
	}

	wg.Wait()
	require.Equal(t, 0, m.Len())
}

func TestKeyedMutex_KeepWaitedKey(t *testing.T) {
	m := NewKeyedMutex()

	unlock := m.Lock("user1")
	require.Equal(t, 1, m.Len())

	locked := make(chan struct{})
	released := make(chan struct{})
	go func() {
		unlock2 := m.Lock("user1")
		close(locked)
		<-released
		unlock2()
	}()

	unlock()
	<-locked
	require.Equal(t, 1, m.Len())

	// Calling unlock twice must not release the lock of another holder.
	unlock()
	require.Equal(t, 1, m.Len())

	close(released)
	require.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 10*time.Millisecond)
}
