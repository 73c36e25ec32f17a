package peekable

import "math/bits"

// deque is a growable ring buffer holding the elements that have been
// pulled from the source but not yet consumed. The capacity is always a
// power of two so indices can wrap with a mask instead of a modulo.
type deque[T any] struct {
	buf  []T
	head int
	size int
	mask int
}

// grow reallocates the buffer so it can hold at least size+extra elements.
func (self *deque[T]) grow(extra int) {
	need := self.size + extra
	capacity := 1 << uint(bits.Len(uint(need-1)))
	if capacity < 4 {
		capacity = 4
	}
	newBuf := make([]T, capacity)
	if self.head+self.size <= len(self.buf) {
		copy(newBuf, self.buf[self.head:self.head+self.size])
	} else {
		// wrapped around
		n := copy(newBuf, self.buf[self.head:])
		copy(newBuf[n:], self.buf[:(self.head+self.size)&self.mask])
	}
	self.buf = newBuf
	self.head = 0
	self.mask = capacity - 1
}

// pushBack appends a value at the back of the deque.
func (self *deque[T]) pushBack(value T) {
	if self.size == len(self.buf) {
		self.grow(1)
	}
	self.buf[(self.head+self.size)&self.mask] = value
	self.size++
}

// pushFront prepends a value at the front of the deque.
func (self *deque[T]) pushFront(value T) {
	if self.size == len(self.buf) {
		self.grow(1)
	}
	self.head = (self.head - 1) & self.mask
	self.buf[self.head] = value
	self.size++
}

// popFront removes and returns the front value.
func (self *deque[T]) popFront() (value T, ok bool) {
	if self.size == 0 {
		return value, false
	}
	value = self.buf[self.head]
	var zero T
	self.buf[self.head] = zero // clear reference
	self.head = (self.head + 1) & self.mask
	self.size--
	return value, true
}

// at returns a pointer to the element at the given offset from the front,
// or nil if the offset is out of range. The pointer stays valid until the
// deque grows or the element is popped.
func (self *deque[T]) at(index int) *T {
	if index < 0 || index >= self.size {
		return nil
	}
	return &self.buf[(self.head+index)&self.mask]
}

// len returns the number of buffered elements.
func (self *deque[T]) len() int {
	return self.size
}
