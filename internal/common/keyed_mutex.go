package common

import (
	"sync"

	"github.com/puzpuzpuz/xsync"
)

type keyedLock struct {
	mutex sync.Mutex

	// refs counts holders and waiters of mutex, it is guarded by
	// KeyedMutex.guard.
	refs int
}

// KeyedMutex serializes operations sharing the same key. Locks of different
// keys never block each other. A key is forgotten once nobody holds or waits
// for its lock.
type KeyedMutex struct {
	guard sync.Mutex
	locks *xsync.MapOf[string, *keyedLock]
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: xsync.NewMapOf[*keyedLock]()}
}

// Lock acquires the mutex of key and returns the function releasing it.
func (m *KeyedMutex) Lock(key string) func() {
	m.guard.Lock()
	lock, _ := m.locks.LoadOrCompute(key, func() *keyedLock { return &keyedLock{} })
	lock.refs++
	m.guard.Unlock()

	lock.mutex.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			lock.mutex.Unlock()

			m.guard.Lock()
			defer m.guard.Unlock()

			lock.refs--
			if lock.refs == 0 {
				m.locks.Delete(key)
			}
		})
	}
}

// Len returns the number of keys currently held or waited for.
func (m *KeyedMutex) Len() int {
	return m.locks.Size()
}
