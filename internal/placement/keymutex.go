package placement

import "sync"

// keyedMutex serializes critical sections per string key. Entries are
// reference counted and dropped once the last holder releases, so the map
// does not grow with the number of distinct group ids ever seen.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*lockEntry)}
}

func (k *keyedMutex) Lock(key string) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &lockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
}

func (k *keyedMutex) Unlock(key string) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if ok {
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
	}
	k.mu.Unlock()

	if ok {
		entry.mu.Unlock()
	}
}
