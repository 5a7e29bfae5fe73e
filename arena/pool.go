package arena

import "container/list"

// pool keeps freed blocks for reuse, oldest at the front. Callers hold Arena.mu.
type pool struct {
	list      *list.List
	items     map[uint64]*list.Element
	maxBytes  int64
	usedBytes int64
	onEvicted func(b *Block)
}

// newPool builds a pool bounded by maxBytes; maxBytes <= 0 means unbounded.
func newPool(maxBytes int64, onEvicted func(b *Block)) *pool {
	return &pool{
		list:      list.New(),
		items:     make(map[uint64]*list.Element),
		maxBytes:  maxBytes,
		onEvicted: onEvicted,
	}
}

// put adds a freed block as the most recent entry, then enforces the size limit.
func (p *pool) put(b *Block) {
	if elem, ok := p.items[b.id]; ok {
		p.list.MoveToBack(elem)
		return
	}
	p.items[b.id] = p.list.PushBack(b)
	p.usedBytes += b.size()
	p.evict()
}

// take removes and returns the most recently freed block that can hold n bytes.
func (p *pool) take(n int) *Block {
	for elem := p.list.Back(); elem != nil; elem = elem.Prev() {
		b := elem.Value.(*Block)
		if cap(b.buf) >= n {
			p.removeElement(elem, false)
			return b
		}
	}
	return nil
}

func (p *pool) len() int {
	return p.list.Len()
}

func (p *pool) bytes() int64 {
	return p.usedBytes
}

// clear drops every block without calling onEvicted.
func (p *pool) clear() {
	p.list.Init()
	p.items = make(map[uint64]*list.Element)
	p.usedBytes = 0
}

func (p *pool) evict() {
	if p.maxBytes <= 0 {
		return
	}
	for p.usedBytes > p.maxBytes {
		if !p.removeOldest() {
			break
		}
	}
}

// removeElement unlinks a block; evicted blocks are reported to onEvicted.
func (p *pool) removeElement(elem *list.Element, evicted bool) {
	b := elem.Value.(*Block)
	delete(p.items, b.id)
	p.list.Remove(elem)
	p.usedBytes -= b.size()
	if evicted && p.onEvicted != nil {
		p.onEvicted(b)
	}
}

func (p *pool) removeOldest() bool {
	elem := p.list.Front()
	if elem == nil {
		return false
	}
	p.removeElement(elem, true)
	return true
}
