package usecase

import (
	"sync"
	"testing"
)

func TestSlotLockerSerializesSameKey(t *testing.T) {
	locker := newSlotLocker()

	const goroutines = 32
	var inCritical, max int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locker.lock("slot-a")
			defer locker.unlock("slot-a")

			mu.Lock()
			inCritical++
			if inCritical > max {
				max = inCritical
			}
			mu.Unlock()

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if max != 1 {
		t.Errorf("expected at most 1 goroutine in critical section, observed %d", max)
	}
}

func TestSlotLockerIndependentKeys(t *testing.T) {
	locker := newSlotLocker()

	locker.lock("slot-a")
	done := make(chan struct{})
	go func() {
		// Must not block on a different key
		locker.lock("slot-b")
		locker.unlock("slot-b")
		close(done)
	}()
	<-done
	locker.unlock("slot-a")
}

func TestSlotLockerCleansUpReleasedKeys(t *testing.T) {
	locker := newSlotLocker()

	locker.lock("slot-a")
	locker.unlock("slot-a")

	locker.mu.Lock()
	defer locker.mu.Unlock()
	if len(locker.slots) != 0 {
		t.Errorf("expected released keys to be removed, found %d entries", len(locker.slots))
	}
}
