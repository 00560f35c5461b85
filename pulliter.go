package iterkit

import (
	"io"
	"iter"

	"go.llib.dev/iterkit/errorkit"
)

// PullIter is the cursor form of an iterator.
// The consumer asks for the next value with Next and reads it with Value,
// and the Next return value tells when the sequence is finished.
// It decouples the consumer from the representation of the iterated aggregate,
// the same way iter.Seq does for push style iteration.
//
// Interface design inspired by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type PullIter[V any] interface {
	// Next advances the cursor and reports whether Value has a new value to return.
	// When the next value is not retrievable, Next returns false and Err returns the cause.
	Next() bool
	// Value returns the value the cursor currently points at.
	// Calling it repeatedly without advancing the cursor returns the same value.
	Value() V
	// Closer releases the resources the cursor holds onto.
	// For cursors where the underlying io is managed on a higher level, it simply returns nil.
	io.Closer
	// Err returns the error that stopped the cursor, if there was any.
	Err() error
}

// ToPullIter adapts a failable sequence to the PullIter cursor protocol.
// The returned cursor is single use.
func ToPullIter[T any](itr ErrSeq[T]) PullIter[T] {
	fetch, release := iter.Pull2(itr)
	return &seqPullIter[T]{fetch: fetch, release: release}
}

// FromPullIter adapts a PullIter into a failable sequence.
// The resulting sequence is single use, and it closes the cursor when the iteration is finished.
// The cursor's Err and Close errors end up as the last element of the sequence.
func FromPullIter[T any](itr PullIter[T]) SingleUseErrSeq[T] {
	return Once2(func(yield func(T, error) bool) {
		defer itr.Close()
		for itr.Next() {
			if !yield(itr.Value(), nil) {
				return
			}
		}
		if err := errorkit.Merge(itr.Err(), itr.Close()); err != nil {
			var zero T
			yield(zero, err)
		}
	})
}

// CollectPullIter gathers all remaining values of a PullIter into a slice, then closes it.
func CollectPullIter[T any](itr PullIter[T]) ([]T, error) {
	if itr == nil {
		return nil, nil
	}
	defer itr.Close()
	var vs []T
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	return vs, errorkit.Merge(itr.Err(), itr.Close())
}

// seqPullIter exposes an iter.Pull2 cursor through the PullIter protocol.
type seqPullIter[T any] struct {
	fetch   func() (T, error, bool)
	release func()

	value  T
	err    error
	closed bool
}

func (c *seqPullIter[T]) Next() bool {
	if c.closed {
		return false
	}
	v, err, ok := c.fetch()
	if !ok {
		return false
	}
	c.value, c.err = v, err
	return true
}

func (c *seqPullIter[T]) Value() T { return c.value }

func (c *seqPullIter[T]) Err() error { return c.err }

func (c *seqPullIter[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.release()
	return nil
}
