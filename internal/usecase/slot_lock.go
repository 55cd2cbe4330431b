package usecase

import (
	"sync"
)

// slotLocker serializes work per slot key within this process, so a booking's
// check-then-insert never interleaves with another booking for the same
// (counselor, date, time). The partial unique index on appointments remains
// the cross-process backstop.
type slotLocker struct {
	mu    sync.Mutex
	slots map[string]*slotLock
}

type slotLock struct {
	mu   sync.Mutex
	refs int
}

func newSlotLocker() *slotLocker {
	return &slotLocker{slots: make(map[string]*slotLock)}
}

func (l *slotLocker) lock(key string) {
	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slotLock{}
		l.slots[key] = s
	}
	s.refs++
	l.mu.Unlock()

	s.mu.Lock()
}

func (l *slotLocker) unlock(key string) {
	l.mu.Lock()
	s := l.slots[key]
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
	l.mu.Unlock()

	s.mu.Unlock()
}
