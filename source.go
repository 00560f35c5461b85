package iterkit

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"go.llib.dev/iterkit/errorkit"
)

// Slice returns an iterator over the elements of the given slice.
func Slice[T any](vs []T) iter.Seq[T] {
	return slices.Values(vs)
}

// Strings returns an iterator over the runes of the given string,
// walking the string character by character rather than byte by byte.
func Strings(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, char := range s {
			if !yield(char) {
				return
			}
		}
	}
}

// Chan creates an iterator out of a channel.
// The sequence finishes when the channel is closed.
func Chan[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if ch == nil {
			return
		}
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// SingleValue creates an iterator that yields a single element.
func SingleValue[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) { yield(v) }
}

// Empty iterator is used to represent a nil result with the Null Object pattern.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Empty2 iterator is used to represent a nil result with the Null Object pattern.
func Empty2[K, V any]() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {}
}

// Error returns a failable sequence whose only element is the given error.
func Error[T any](err error) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// ErrorF behaves exactly like fmt.Errorf but returns the error wrapped as a failable sequence.
func ErrorF[T any](format string, a ...any) ErrSeq[T] {
	return Error[T](fmt.Errorf(format, a...))
}

// IntRange returns an iterator that ranges between the specified begin and end int, both inclusive.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := begin; i <= end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// CharRange returns an iterator that ranges between the specified begin and end rune, both inclusive.
func CharRange(begin, end rune) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for char := begin; char <= end; char++ {
			if !yield(char) {
				return
			}
		}
	}
}

// FromKV returns an iter.Seq2 over the given key-value pairs.
func FromKV[K, V any](kvs []KV[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range kvs {
			if !yield(kv.K, kv.V) {
				return
			}
		}
	}
}

// FromPull adapts a pull function into an iter.Seq.
// The optional stop functions run when the iteration is finished.
func FromPull[T any](next func() (T, bool), stops ...func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromPull2 adapts a pull function into an iter.Seq2.
// The optional stop functions run when the iteration is finished.
func FromPull2[K, V any](next func() (K, V, bool), stops ...func()) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			k, v, ok := next()
			if !ok {
				break
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

const errNoMorePage errorkit.Error = "ErrNoMorePage"

// NoMore is the error a FromPages next function can return
// to signal that the last page was already retrieved.
const NoMore = errNoMorePage

// FromPages creates a failable sequence which can be used like any other iterator,
// while under the hood the next function is used to dynamically retrieve more values
// whenever the previously fetched values are used up.
//
// An empty page result is interpreted as the end of the pagination.
// Values returned together with the NoMore error still belong to the sequence,
// they are yielded before the pagination ends.
func FromPages[T any](next func(offset int) (values []T, _ error)) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		var (
			offset  int
			hasMore = true
		)
		for hasMore {
			vs, err := next(offset)
			if err != nil {
				if errors.Is(err, NoMore) {
					hasMore = false
				} else {
					var zero T
					yield(zero, err)
					return
				}
			}
			if len(vs) == 0 {
				return
			}
			offset += len(vs)
			for _, v := range vs {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}
