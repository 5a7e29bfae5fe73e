// Package arena is a debugging allocator for byte views.
//
// Blocks handed out by an Arena are poisoned when freed and kept out of reuse
// for a while, so a Byte_View.ByteView that outlives its block either reads
// poison or is reported by Check. Once a freed block is reused, a stale view
// reads the new owner's bytes, the same way it would with a real allocator.
package arena

import (
	"Byte_View"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// Arena tracks the blocks it hands out. It is safe for concurrent use.
type Arena struct {
	mu         sync.Mutex
	opts       Options
	nextID     uint64
	quarantine *quarantine       // nil when disabled
	pool       *pool
	freed      map[uint64]*Block // quarantined or pooled
	closed     int32
	stats      arenaStats
}

// arenaStats 统计信息
type arenaStats struct {
	allocs        int64 // 分配次数
	frees         int64 // 释放次数
	reuses        int64 // 复用已释放块的次数
	doubleFrees   int64 // 重复释放次数
	danglingHits  int64 // 检测到悬垂视图的次数
	poisonedBytes int64 // 累计填充毒值的字节数
}

// New creates an Arena configured from DefaultOptions and opts.
func New(opts ...Option) *Arena {
	a := &Arena{
		opts:  DefaultOptions(),
		freed: make(map[uint64]*Block),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.opts.Poison == 0 {
		a.opts.Poison = DefaultPoison
	}

	a.pool = newPool(a.opts.PoolMaxBytes, a.dropBlock)
	if a.opts.QuarantineSize > 0 {
		a.quarantine = newQuarantine(a.opts.QuarantineSize, a.pool.put)
	}
	logrus.Infof("arena created with poison=%#x, quarantine=%d, pool bytes=%d",
		a.opts.Poison, a.opts.QuarantineSize, a.opts.PoolMaxBytes)
	return a
}

// Alloc returns a zeroed block of n bytes, reusing freed storage when it can.
func (a *Arena) Alloc(n int) (*Block, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if atomic.LoadInt32(&a.closed) == 1 {
		return nil, ErrArenaClosed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	// Close may have run while we waited for the lock.
	if atomic.LoadInt32(&a.closed) == 1 {
		return nil, ErrArenaClosed
	}

	var buf []byte
	if n > 0 {
		if old := a.pool.take(n); old != nil {
			delete(a.freed, old.id)
			buf = old.buf
			clear(buf[:n])
			atomic.AddInt64(&a.stats.reuses, 1)
			logrus.Debugf("arena reusing storage of block %d for %d bytes", old.id, n)
		} else {
			buf = make([]byte, n)
		}
	}

	a.nextID++
	atomic.AddInt64(&a.stats.allocs, 1)
	return &Block{id: a.nextID, buf: buf, n: n, arena: a}, nil
}

// AllocString returns a block holding a copy of s.
func (a *Arena) AllocString(s string) (*Block, error) {
	b, err := a.Alloc(len(s))
	if err != nil {
		return nil, err
	}
	copy(b.buf, s)
	return b, nil
}

// Free poisons b and quarantines its storage. Views into b become dangling.
func (a *Arena) Free(b *Block) error {
	if b == nil || b.arena != a {
		return ErrForeignBlock
	}
	if atomic.LoadInt32(&a.closed) == 1 {
		return ErrArenaClosed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if atomic.LoadInt32(&a.closed) == 1 {
		return ErrArenaClosed
	}

	if !atomic.CompareAndSwapInt32(&b.freed, 0, 1) {
		atomic.AddInt64(&a.stats.doubleFrees, 1)
		logrus.Warnf("arena: block %d freed twice", b.id)
		return fmt.Errorf("%w: block %d", ErrDoubleFree, b.id)
	}
	atomic.AddInt64(&a.stats.frees, 1)

	if cap(b.buf) == 0 {
		return nil
	}
	full := b.buf[:cap(b.buf)]
	for i := range full {
		full[i] = a.opts.Poison
	}
	atomic.AddInt64(&a.stats.poisonedBytes, int64(len(full)))
	logrus.Debugf("arena poisoned block %d (%d bytes)", b.id, len(full))

	a.freed[b.id] = b
	if a.quarantine != nil {
		a.quarantine.add(b)
	} else {
		a.pool.put(b)
	}
	return nil
}

// Check reports whether v overlaps a freed block the arena still tracks.
// Storage that has been reused or dropped from the pool is not tracked.
func (a *Arena) Check(v Byte_View.ByteView) error {
	if atomic.LoadInt32(&a.closed) == 1 {
		return ErrArenaClosed
	}
	if v.Empty() {
		return nil
	}
	start := uintptr(unsafe.Pointer(unsafe.SliceData(v.Data())))
	end := start + uintptr(v.Len())

	a.mu.Lock()
	defer a.mu.Unlock()
	if atomic.LoadInt32(&a.closed) == 1 {
		return ErrArenaClosed
	}

	for _, b := range a.freed {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
		limit := base + uintptr(cap(b.buf))
		if start < limit && base < end {
			atomic.AddInt64(&a.stats.danglingHits, 1)
			logrus.WithFields(logrus.Fields{
				"block": b.id,
				"len":   v.Len(),
			}).Warn("arena: dangling view detected")
			return fmt.Errorf("%w: view [%#x, %#x) overlaps freed block %d", ErrDangling, start, end, b.id)
		}
	}
	return nil
}

// dropBlock forgets a block evicted from the reuse pool.
func (a *Arena) dropBlock(b *Block) {
	delete(a.freed, b.id)
	logrus.Debugf("arena dropped block %d from the reuse pool", b.id)
}

// Close releases all tracked storage. It is safe to call more than once.
func (a *Arena) Close() {
	if !atomic.CompareAndSwapInt32(&a.closed, 0, 1) {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.quarantine != nil {
		a.quarantine.clear()
	}
	a.pool.clear()
	a.freed = make(map[uint64]*Block)
	logrus.Infof("arena closed, allocs:%d, frees:%d, reuses:%d, dangling:%d",
		atomic.LoadInt64(&a.stats.allocs), atomic.LoadInt64(&a.stats.frees),
		atomic.LoadInt64(&a.stats.reuses), atomic.LoadInt64(&a.stats.danglingHits))
}

// Stats exposes allocation counters and the size of the freed-block tracking.
func (a *Arena) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"allocs":         atomic.LoadInt64(&a.stats.allocs),
		"frees":          atomic.LoadInt64(&a.stats.frees),
		"reuses":         atomic.LoadInt64(&a.stats.reuses),
		"double_frees":   atomic.LoadInt64(&a.stats.doubleFrees),
		"dangling_hits":  atomic.LoadInt64(&a.stats.danglingHits),
		"poisoned_bytes": atomic.LoadInt64(&a.stats.poisonedBytes),
		"closed":         atomic.LoadInt32(&a.closed) == 1,
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	quarantined := 0
	if a.quarantine != nil && atomic.LoadInt32(&a.closed) == 0 {
		quarantined = a.quarantine.len()
	}
	stats["quarantined"] = quarantined
	stats["pooled"] = a.pool.len()
	stats["pooled_bytes"] = a.pool.bytes()
	stats["tracked"] = len(a.freed)
	return stats
}
