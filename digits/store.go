package digits

import (
	"fmt"
	"math/bits"
)

// Digit is one base 2^32 position.
type Digit = uint32

// InlineCap is the number of digits a Store holds without allocating. The
// inline array takes the same space as a pointer.
const InlineCap = bits.UintSize / 32

// Store is an ordered sequence of digits, least significant first.
//
// The zero value is an empty inline store ready to use.
//
// A Store must not be copied by assignment. A copy made with = or by passing
// the value shares the heap buffer without taking a reference, so a write
// through one copy shows through the other. Copy with Clone or Assign.
type Store struct {
	n      int
	inline [InlineCap]Digit

	// buf is nil while the digits are inline.
	buf *buffer
}

// Len returns the number of digits.
func (s *Store) Len() int {
	return s.n
}

// Cap returns the number of digits the store can hold before reallocating.
func (s *Store) Cap() int {
	if s.buf == nil {
		return InlineCap
	}

	return len(s.buf.data)
}

// Inline reports whether the digits are held without a heap buffer.
func (s *Store) Inline() bool {
	return s.buf == nil
}

// Shared reports whether the heap buffer is referenced by another Store.
func (s *Store) Shared() bool {
	return s.buf != nil && s.buf.shared()
}

func (s *Store) view() []Digit {
	if s.buf == nil {
		return s.inline[:s.n]
	}

	return s.buf.data[:s.n]
}

func (s *Store) check(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("digits: index out of range [%d] with length %d", i, s.n))
	}
}

// At returns the digit at index i.
func (s *Store) At(i int) Digit {
	s.check(i)

	return s.view()[i]
}

// Back returns the most significant digit.
func (s *Store) Back() Digit {
	return s.At(s.n - 1)
}

// Set writes v at index i, unsharing the buffer first if needed.
func (s *Store) Set(i int, v Digit) {
	s.check(i)

	if s.buf == nil {
		s.inline[i] = v

		return
	}

	s.unshare()
	s.buf.data[i] = v
}

// Push appends v.
func (s *Store) Push(v Digit) {
	switch {
	case s.buf == nil && s.n < InlineCap:
		s.inline[s.n] = v
		s.n++

		return
	case s.buf == nil:
		s.realloc(2 * InlineCap)
	case s.n == len(s.buf.data):
		s.realloc(grow(len(s.buf.data)))
	case s.buf.shared():
		s.realloc(len(s.buf.data))
	}

	s.buf.data[s.n] = v
	s.n++
}

// Pop removes the most significant digit. The buffer is neither shrunk nor
// unshared.
func (s *Store) Pop() {
	if s.n == 0 {
		panic("digits: pop from empty store")
	}

	s.n--
	if s.buf == nil {
		s.inline[s.n] = 0
	}
}

// Clear empties the store and releases its heap buffer.
func (s *Store) Clear() {
	if s.buf != nil {
		s.buf.release()
		s.buf = nil
	}

	s.n = 0
	s.inline = [InlineCap]Digit{}
}

// Clone returns a store with the same digits. Heap buffers are shared until
// either side writes.
func (s *Store) Clone() Store {
	c := Store{
		n:      s.n,
		inline: s.inline,
	}

	if s.buf != nil {
		c.buf = s.buf.acquire()
	}

	return c
}

// Assign replaces the contents of s with a clone of src.
func (s *Store) Assign(src *Store) {
	if s == src {
		return
	}

	// Acquire before release in case both already share a buffer.
	c := src.Clone()
	s.Clear()
	*s = c
}

// Swap exchanges the contents of s and o.
func (s *Store) Swap(o *Store) {
	*s, *o = *o, *s
}

// Digits returns a copy of the digits, least significant first.
func (s *Store) Digits() []Digit {
	out := make([]Digit, s.n)
	copy(out, s.view())

	return out
}

func (s *Store) unshare() {
	if s.buf != nil && s.buf.shared() {
		s.realloc(len(s.buf.data))
	}
}

// realloc moves the digits into a fresh exclusive buffer of the given
// capacity.
func (s *Store) realloc(capacity int) {
	b := newBuffer(capacity)
	copy(b.data, s.view())

	if s.buf != nil {
		s.buf.release()
	}

	s.buf = b
	s.inline = [InlineCap]Digit{}
}
