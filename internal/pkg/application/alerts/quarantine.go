package alerts

import (
	"strings"
	"sync"
)

func quarantineKey(alertTypeCode string, deviceID, deviceSessionID *string, dataCollectorID string) string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	return strings.Join([]string{alertTypeCode, deref(deviceID), deref(deviceSessionID), dataCollectorID}, "/")
}

// keyedMutex serializes the quarantine check-then-act sequence per key while
// letting alerts for unrelated keys proceed concurrently. Entries are
// reference counted so the map does not grow with the key space.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[string]*keyedLock),
	}
}

func (k *keyedMutex) Lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
}

func (k *keyedMutex) Unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	l.mu.Unlock()
}
