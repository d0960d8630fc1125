package concurrency

import (
	"sync"
)

// LockManager handles named locks. The withdrawal engine uses one lock per
// session ID to serialize withdrawal attempts, so a double-click cannot pass
// the winnings check twice and submit two payments.
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
