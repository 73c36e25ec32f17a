package peekable

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// sliceIterator yields the elements of a slice in order.
type sliceIterator[T any] struct {
	items []T
}

// FromSlice creates an iterator over the elements of a slice. The slice
// is not copied; it must not be modified while the iterator is in use.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items}
}

func (self *sliceIterator[T]) Next() Optional[T] {
	if len(self.items) == 0 {
		return None[T]()
	}
	item := self.items[0]
	self.items = self.items[1:]
	return Some(item)
}

func (self *sliceIterator[T]) SizeHint() (int, Optional[int]) {
	return len(self.items), Some(len(self.items))
}

// funcIterator adapts a pull function into an Iterator with an unknown
// upper bound.
type funcIterator[T any] struct {
	next func() Optional[T]
}

// FromFunc creates an iterator that pulls elements from the given
// function until it returns an empty Optional.
func FromFunc[T any](next func() Optional[T]) Iterator[T] {
	return &funcIterator[T]{next}
}

func (self *funcIterator[T]) Next() Optional[T] {
	return self.next()
}

func (self *funcIterator[T]) SizeHint() (int, Optional[int]) {
	return 0, None[int]()
}

// chanIterator yields values received from a channel.
type chanIterator[T any] struct {
	ch <-chan T
}

// FromChan creates an iterator that receives from a channel until it is
// closed. Next blocks while the channel is open but empty.
func FromChan[T any](ch <-chan T) Iterator[T] {
	return &chanIterator[T]{ch}
}

func (self *chanIterator[T]) Next() Optional[T] {
	if value, ok := <-self.ch; ok {
		return Some(value)
	}
	return None[T]()
}

func (self *chanIterator[T]) SizeHint() (int, Optional[int]) {
	return 0, None[int]()
}

// seqIterator bridges an iter.Seq into an Iterator using iter.Pull.
type seqIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq creates an iterator over a Go range-over-func sequence. The
// underlying coroutine is stopped when the sequence reports exhaustion.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &seqIterator[T]{next, stop}
}

func (self *seqIterator[T]) Next() Optional[T] {
	value, ok := self.next()
	if !ok {
		self.stop()
		return None[T]()
	}
	return Some(value)
}

func (self *seqIterator[T]) SizeHint() (int, Optional[int]) {
	return 0, None[int]()
}

// rangeIterator counts from start up to but not including end.
type rangeIterator[T constraints.Integer] struct {
	next, end T
}

// Range creates an iterator over the half-open interval [start, end).
// An empty interval yields nothing.
func Range[T constraints.Integer](start, end T) Iterator[T] {
	if end < start {
		end = start
	}
	return &rangeIterator[T]{start, end}
}

func (self *rangeIterator[T]) Next() Optional[T] {
	if self.next >= self.end {
		return None[T]()
	}
	value := self.next
	self.next++
	return Some(value)
}

func (self *rangeIterator[T]) SizeHint() (int, Optional[int]) {
	remaining := int(self.end - self.next)
	return remaining, Some(remaining)
}

// All adapts an Iterator into an iter.Seq so it can drive a range loop.
// Ranging over the result consumes the iterator.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item := it.Next()
			if !item.IsSome() || !yield(item.Unwrap()) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice, pre-sizing it from the size
// hint's lower bound.
func Collect[T any](it Iterator[T]) []T {
	lo, _ := it.SizeHint()
	result := make([]T, 0, lo)
	for {
		item := it.Next()
		if !item.IsSome() {
			return result
		}
		result = append(result, item.Unwrap())
	}
}
