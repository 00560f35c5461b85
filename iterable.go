package iterkit

import (
	"errors"
	"iter"

	"go.llib.dev/iterkit/errorkit"
)

// Break is the error that a ForEach block can return to stop the iteration early without failing it.
const Break errorkit.Error = "iterkit: Break"

// ForEach is a generic for-each looping construct over a sequence.
// It calls the block with each element, and stops the iteration when the block returns an error.
// Returning Break from the block stops the iteration without an error.
// The optional error functions are checked after the iteration,
// and their error values are merged into the returned error.
func ForEach[T any](i iter.Seq[T], blk func(T) error, errFuncs ...ErrFunc) (rErr error) {
	defer func() {
		if 0 < len(errFuncs) {
			rErr = errorkit.Merge(rErr, errorkit.MergeErrFunc(errFuncs...)())
		}
	}()
	for v := range i {
		if err := blk(v); err != nil {
			if errors.Is(err, Break) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Iterable is the capability of an aggregate object to produce an iterator over its elements,
// which enables it to be consumed by a generic for-each looping construct.
type Iterable[V any] interface {
	// Iter returns an iterator over the elements of the aggregate.
	// Unless documented otherwise, calling it again walks the elements again.
	Iter() iter.Seq[V]
}

// IterableFunc is an adapter that allows a plain sequence constructor function to act as an Iterable.
type IterableFunc[V any] func() iter.Seq[V]

func (fn IterableFunc[V]) Iter() iter.Seq[V] { return fn() }

// Each consumes an Iterable with the ForEach looping construct.
func Each[V any](i Iterable[V], blk func(V) error) error {
	return ForEach(i.Iter(), blk)
}
