package concurrency

import (
	"sync"
)

// LockManager handles named locks. The profile cache uses one lock per
// (user, sport) key so a regeneration for a key is at-most-one-concurrent:
// a second request racing the first waits behind it instead of running an
// independent rebuild.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
