package arena

import (
	"Byte_View"
	"sync/atomic"
)

// Block is an owned buffer handed out by an Arena.
type Block struct {
	id    uint64
	buf   []byte // whole backing array
	n     int
	freed int32
	arena *Arena
}

func (b *Block) ID() uint64 {
	return b.id
}

func (b *Block) Len() int {
	return b.n
}

// Live reports whether the block has not been freed yet.
func (b *Block) Live() bool {
	return atomic.LoadInt32(&b.freed) == 0
}

// Bytes returns the owner's writable buffer. After Free it still points at
// the same storage, which is poisoned and may be handed to a later Alloc.
func (b *Block) Bytes() []byte {
	return b.buf[:b.n:b.n]
}

// View borrows the block's contents.
func (b *Block) View() Byte_View.ByteView {
	return Byte_View.New(b.buf, b.n)
}

// size is what the block costs in the reuse pool.
func (b *Block) size() int64 {
	return int64(cap(b.buf))
}
