package arena

import "github.com/golang/groupcache/lru"

// quarantine holds the most recently freed blocks out of reuse. When it is
// full the oldest block is released to onRelease. Callers hold Arena.mu.
type quarantine struct {
	cache *lru.Cache
}

func newQuarantine(size int, onRelease func(b *Block)) *quarantine {
	c := lru.New(size)
	c.OnEvicted = func(key lru.Key, value interface{}) {
		onRelease(value.(*Block))
	}
	return &quarantine{cache: c}
}

func (q *quarantine) add(b *Block) {
	q.cache.Add(b.id, b)
}

func (q *quarantine) len() int {
	return q.cache.Len()
}

// clear drops every block without releasing it.
func (q *quarantine) clear() {
	q.cache.OnEvicted = nil
	q.cache.Clear()
}
