package peekable

// Iterator describes a forward-only, single-pass sequence producer.
//
// Next advances the sequence by one element; an empty Optional signals
// exhaustion. A producer is not required to be fused: unless it documents
// otherwise, calling Next again after exhaustion has unspecified results.
//
// SizeHint returns bounds on the number of remaining elements. The first
// value is a true lower bound, the second an optional upper bound. The
// default for a producer that cannot estimate its length is (0, None).
type Iterator[T any] interface {
	Next() Optional[T]
	SizeHint() (int, Optional[int])
}
