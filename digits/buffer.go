package digits

import "sync/atomic"

// buffer is the heap storage shared between Store clones. len(data) is the
// capacity.
type buffer struct {
	refs atomic.Int32
	data []Digit
}

func newBuffer(capacity int) *buffer {
	b := &buffer{
		data: make([]Digit, capacity),
	}
	b.refs.Store(1)

	return b
}

func (b *buffer) acquire() *buffer {
	b.refs.Add(1)

	return b
}

// release drops one reference. The last owner clears data so a stale handle
// fails loudly instead of reading recycled digits.
func (b *buffer) release() {
	if b.refs.Add(-1) == 0 {
		b.data = nil
	}
}

func (b *buffer) shared() bool {
	return b.refs.Load() > 1
}

// grow returns the next capacity in the doubling sequence 1, 2, 4, ...
func grow(capacity int) int {
	if capacity == 0 {
		return 1
	}

	return capacity * 2
}
