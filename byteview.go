// Package Byte_View provides ByteView, a non-owning view of bytes that live
// somewhere else.
//
// A ByteView never allocates, copies or frees the bytes it references, except
// through the explicit owned-copy methods ByteSlice, String and Clone. Its
// validity is bound to the lifetime of the data it was built from: if the
// owner reuses or rewrites that storage, the view silently observes the new
// contents. Keeping the source alive and unmodified is the caller's job.
package Byte_View

import (
	"bytes"
	"unsafe"
)

// ByteView is a borrowed, read-only view of a contiguous run of bytes.
// The zero value is the empty view.
type ByteView struct {
	b []byte // cap(b) == len(b)
}

// New returns a view of the first n bytes of b.
func New(b []byte, n int) ByteView {
	if n < 0 || n > len(b) {
		outOfRange("new", n, len(b))
	}
	return ByteView{b: b[:n:n]}
}

// FromBytes borrows the current contents of b. The view does not keep b's
// owner from reusing the storage.
func FromBytes(b []byte) ByteView {
	return ByteView{b: b[:len(b):len(b)]}
}

// FromPointer views the n bytes starting at p.
//
// SAFETY: [p, p+n) must be a single live allocation for as long as the view
// is used.
func FromPointer(p *byte, n int) ByteView {
	if n < 0 || (p == nil && n > 0) {
		outOfRange("from pointer", n, 0)
	}
	if n == 0 {
		return ByteView{}
	}
	return ByteView{b: unsafe.Slice(p, n)}
}

// FromCString views b up to, not including, its first NUL byte. Without a
// terminator the whole of b is viewed.
func FromCString(b []byte) ByteView {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return FromBytes(b)
}

// FromString views the bytes of s without copying them. Strings are
// immutable, so bytes obtained through Data must never be written.
func FromString(s string) ByteView {
	if len(s) == 0 {
		return ByteView{}
	}
	return ByteView{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// BorrowBuffer views the unread portion of buf. Any later write, Reset or
// Grow on buf may reuse or abandon that storage; the view is then stale.
func BorrowBuffer(buf *bytes.Buffer) ByteView {
	return FromBytes(buf.Bytes())
}

// Data returns the borrowed bytes. No terminator follows them.
//
// The slice aliases the source. For views built by FromString the source is
// read-only string memory and any write through the slice crashes the process.
func (v ByteView) Data() []byte {
	return v.b
}

func (v ByteView) Len() int {
	return len(v.b)
}

func (v ByteView) Empty() bool {
	return len(v.b) == 0
}

// At returns the byte at offset i and panics if i is outside [0, Len()).
func (v ByteView) At(i int) byte {
	if i < 0 || i >= len(v.b) {
		outOfRange("at", i, len(v.b))
	}
	return v.b[i]
}

// Slice returns the sub-view [from, to).
func (v ByteView) Slice(from, to int) ByteView {
	if from < 0 || from > to {
		outOfRange("slice from", from, len(v.b))
	}
	if to > len(v.b) {
		outOfRange("slice to", to, len(v.b))
	}
	return ByteView{b: v.b[from:to:to]}
}

// RemovePrefix drops the first n bytes from the view.
func (v *ByteView) RemovePrefix(n int) {
	if n < 0 || n > len(v.b) {
		outOfRange("remove prefix", n, len(v.b))
	}
	v.b = v.b[n:]
}

// Clear makes v the empty view. The referenced bytes are untouched.
func (v *ByteView) Clear() {
	v.b = nil
}

// ByteSlice returns an owned copy of the viewed bytes.
func (v ByteView) ByteSlice() []byte {
	return cloneBytes(v.b)
}

// String returns an owned copy of the viewed bytes as a string.
func (v ByteView) String() string {
	return string(v.b)
}

// Clone returns a view over a private copy of the bytes.
func (v ByteView) Clone() ByteView {
	return FromBytes(cloneBytes(v.b))
}

// UnsafeString aliases the viewed bytes as a string without copying.
//
// SAFETY: the result is only valid while the bytes stay alive and unmodified.
func (v ByteView) UnsafeString() string {
	return unsafe.String(unsafe.SliceData(v.b), len(v.b))
}

// Compare orders views by raw byte value; a strict prefix sorts first.
func (v ByteView) Compare(other ByteView) int {
	return bytes.Compare(v.b, other.b)
}

func (v ByteView) Equal(other ByteView) bool {
	return bytes.Equal(v.b, other.b)
}

// HasPrefix reports whether prefix's bytes begin v.
func (v ByteView) HasPrefix(prefix ByteView) bool {
	return bytes.HasPrefix(v.b, prefix.b)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
