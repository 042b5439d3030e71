package alerts

import (
	"sync"
	"testing"

	"github.com/matryer/is"
)

func TestQuarantineKey(t *testing.T) {
	is := is.New(t)

	deviceID := "d1"
	sessionID := "s1"

	is.Equal("LAF-002/d1/s1/c1", quarantineKey("LAF-002", &deviceID, &sessionID, "c1"))
	is.Equal("LAF-002///c1", quarantineKey("LAF-002", nil, nil, "c1"))
}

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	is := is.New(t)

	km := newKeyedMutex()

	var wg sync.WaitGroup
	var a, b int

	for i := 0; i < 100; i++ {
		counter := &a
		key := "a"
		if i%2 == 0 {
			counter = &b
			key = "b"
		}

		wg.Add(1)
		go func(key string, counter *int) {
			defer wg.Done()
			km.Lock(key)
			defer km.Unlock(key)
			*counter = *counter + 1
		}(key, counter)
	}

	wg.Wait()

	is.Equal(50, a)
	is.Equal(50, b)
	is.Equal(0, len(km.locks))
}
