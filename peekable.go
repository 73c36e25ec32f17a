// Package peekable provides an iterator adapter that allows you to fully
// peek forward any number of elements without consuming them, while still
// supporting normal linear consumption afterwards.
//
// The adapter pulls from its source only as far as a lookahead request
// demands and keeps the pulled elements in an internal queue; Next drains
// the queue before touching the source again, so the observed element
// order is always the source order.
package peekable

import "math"

// FullyPeekable wraps an Iterator with the ability to peek forward any
// number of elements.
//
// Pointers returned by the peeking operations point into the internal
// queue. They may be used to modify an element in place before it is
// consumed, and stay valid until the next call to any method on the
// wrapper.
//
// A FullyPeekable is not safe for concurrent use; guard it externally if
// it must be shared.
type FullyPeekable[T any] struct {
	iter  Iterator[T]
	queue deque[T]
}

// New creates a fully-peekable iterator from an existing iterator, taking
// ownership of it.
func New[T any](iter Iterator[T]) *FullyPeekable[T] {
	return &FullyPeekable[T]{iter: iter}
}

// fill pulls from the source until the queue holds count elements or the
// source is exhausted.
func (self *FullyPeekable[T]) fill(count int) {
	for self.queue.len() < count {
		item := self.iter.Next()
		if !item.IsSome() {
			break
		}
		self.queue.pushBack(item.Unwrap())
	}
}

// Next returns the next value, advancing the iterator. Buffered elements
// are returned before the source is pulled again.
func (self *FullyPeekable[T]) Next() Optional[T] {
	if value, ok := self.queue.popFront(); ok {
		return Some(value)
	}
	return self.iter.Next()
}

// SizeHint returns the bounds on the remaining length of the iterator:
// the source's own hint plus the number of buffered elements. The lower
// bound saturates at math.MaxInt and the upper bound becomes None if the
// addition would overflow.
func (self *FullyPeekable[T]) SizeHint() (int, Optional[int]) {
	buffered := self.queue.len()
	lo, hi := self.iter.SizeHint()
	if lo > math.MaxInt-buffered {
		lo = math.MaxInt
	} else {
		lo += buffered
	}
	if hi.IsSome() {
		if h := hi.Unwrap(); h > math.MaxInt-buffered {
			hi = None[int]()
		} else {
			hi = Some(h + buffered)
		}
	}
	return lo, hi
}

// HasNext tests if the iterator has another element to yield. May advance
// the underlying source by one element.
func (self *FullyPeekable[T]) HasNext() bool {
	return self.Peek() != nil
}

// Lift peeks forward to the element at the given offset without advancing
// the iterator, pulling from the source as needed. It returns nil if the
// sequence ends before that offset. Repeated calls with the same or a
// smaller offset cause no further pulls.
func (self *FullyPeekable[T]) Lift(index int) *T {
	if index < 0 {
		return nil
	}
	self.fill(index + 1)
	return self.queue.at(index)
}

// LiftMany peeks forward to the half-open offset range [start, end)
// without advancing the iterator. The result holds one entry per offset
// in ascending order, nil for offsets past the end of the sequence.
// Degenerate ranges (end <= start, negative start) yield an empty result.
func (self *FullyPeekable[T]) LiftMany(start, end int) []*T {
	// Even a degenerate range performs the well-defined fill for end-1,
	// with end clamped to at least 1.
	self.fill(max(end, 1))
	if start < 0 || start >= end {
		return nil
	}
	result := make([]*T, 0, end-start)
	for index := start; index < end; index++ {
		result = append(result, self.queue.at(index))
	}
	return result
}

// Peek peeks forward to the next element without advancing the iterator.
func (self *FullyPeekable[T]) Peek() *T {
	return self.Lift(0)
}

// PeekMany peeks forward to the next n elements without advancing the
// iterator.
func (self *FullyPeekable[T]) PeekMany(n int) []*T {
	return self.LiftMany(0, n)
}

// NextIf consumes and returns the next value if pred is true for it.
// A rejected value is pushed back onto the front of the queue, so the
// sequence observed by later calls is unchanged. pred is called at most
// once, and exactly once if an element was available.
func (self *FullyPeekable[T]) NextIf(pred func(T) bool) Optional[T] {
	item := self.Next()
	if !item.IsSome() {
		return item
	}
	if pred(item.Unwrap()) {
		return item
	}
	self.queue.pushFront(item.Unwrap())
	return None[T]()
}

// NextIfEq consumes and returns the next value of the iterator if it is
// equal to expected. This is a free function since a method cannot
// require T to be comparable.
func NextIfEq[T comparable](it *FullyPeekable[T], expected T) Optional[T] {
	return it.NextIf(func(next T) bool { return next == expected })
}
