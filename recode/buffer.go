package recode

import (
	"sync"

	"github.com/calebcase/csd/digit"
)

// Buffer accumulates the characters of one CSD string.
type Buffer struct {
	chars   []byte
	nonZero int
	point   bool
}

// Push appends a digit.
func (b *Buffer) Push(d digit.Digit) {
	b.chars = append(b.chars, d.Char)

	if d.NonZero() {
		b.nonZero++
	}
}

// Point appends the point. A second call is a programming error.
func (b *Buffer) Point() {
	if b.point {
		panic("recode: point written twice")
	}

	b.point = true
	b.chars = append(b.chars, digit.Point)
}

// NonZero returns the number of non-zero digits pushed.
func (b *Buffer) NonZero() int {
	return b.nonZero
}

// Len returns the number of characters written.
func (b *Buffer) Len() int {
	return len(b.chars)
}

// String returns a copy of the characters written.
func (b *Buffer) String() string {
	return string(b.chars)
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.chars = b.chars[:0]
	b.nonZero = 0
	b.point = false
}

// maxPooled bounds the capacity of buffers returned to the pool so that one
// very long encoding does not pin its memory.
const maxPooled = 4096

var pool = sync.Pool{
	New: func() interface{} {
		return &Buffer{
			chars: make([]byte, 0, 64),
		}
	},
}

// Acquire returns an empty buffer from the pool. Callers must Release it,
// typically with defer.
func Acquire() *Buffer {
	b := pool.Get().(*Buffer)
	b.Reset()

	return b
}

// Release returns b to the pool. b must not be used afterwards.
func Release(b *Buffer) {
	if b == nil || cap(b.chars) > maxPooled {
		return
	}

	b.Reset()
	pool.Put(b)
}
