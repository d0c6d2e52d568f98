package buffer

import "unsafe"

// minCapacity is the element capacity allocated on the first append when no
// sizing hint was given.
const minCapacity = 1024

// Buffer is a growable contiguous store of elements of type T.
//
// The zero value is not usable; create buffers with New. A Buffer must not
// be used from multiple goroutines.
type Buffer[T any] struct {
	elems []T
	done  bool
}

// New creates a Buffer whose initial capacity covers roughly hintBytes of
// element storage. A zero or negative hint defers allocation to the first
// append.
func New[T any](hintBytes int) *Buffer[T] {
	b := &Buffer[T]{}
	if hintBytes > 0 {
		var zero T
		n := hintBytes / int(unsafe.Sizeof(zero))
		if n > 0 {
			b.elems = make([]T, 0, n)
		}
	}
	return b
}

// Append adds v to the end of the buffer, growing the backing store
// geometrically when full. Append panics if the buffer was finalized.
func (b *Buffer[T]) Append(v T) {
	if b.done {
		panic("buffer: append after Finalize")
	}
	if len(b.elems) == cap(b.elems) {
		b.grow()
	}
	b.elems = append(b.elems, v)
}

func (b *Buffer[T]) grow() {
	newCap := cap(b.elems) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}
	grown := make([]T, len(b.elems), newCap)
	copy(grown, b.elems)
	b.elems = grown
}

// Len returns the number of elements appended so far.
func (b *Buffer[T]) Len() int { return len(b.elems) }

// Cap returns the current capacity of the backing store.
func (b *Buffer[T]) Cap() int { return cap(b.elems) }

// Finalize returns the accumulated elements as an exactly-sized slice and
// consumes the buffer. The result never aliases the internal backing store,
// so it can be retained, resized, or freed independently. An empty buffer
// finalizes to a non-nil empty slice.
func (b *Buffer[T]) Finalize() []T {
	if b.done {
		panic("buffer: Finalize called twice")
	}
	b.done = true

	out := make([]T, len(b.elems))
	copy(out, b.elems)
	b.elems = nil
	return out
}

// Discard releases the backing store without producing a result. Used on
// the error path so partially built arrays never escape.
func (b *Buffer[T]) Discard() {
	b.done = true
	b.elems = nil
}
