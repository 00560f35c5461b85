package genkit

import (
	"context"
	"iter"
	"math/rand"
)

// Naturals is a generator over the natural numbers.
// The returned sequence is infinite, cap it with iterkit.Limit before collecting it.
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := 1; ; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// NaturalsBetween is a generator over the natural numbers from "from" up to and including "upto".
func NaturalsBetween(from, upto int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := from; n <= upto; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Counter returns a reset-capable counting generator.
// It yields start, start+1, start+2 and so on.
// Resuming it with Send(true) resets the counting,
// and the generator yields the start value again.
func Counter(start int) *Gen[int, bool] {
	return New(func(ctx context.Context, yield func(int) (bool, bool)) error {
		for current := start; ; current++ {
			reset, ok := yield(current)
			if !ok {
				return nil
			}
			if reset {
				current = start - 1
			}
		}
	})
}

// Fibonacci is a generator over the Fibonacci numbers, starting from 1, 1.
// The returned sequence is infinite, cap it with iterkit.Limit before collecting it.
func Fibonacci() iter.Seq[int] {
	return func(yield func(int) bool) {
		a, b := 1, 1
		for {
			if !yield(a) {
				return
			}
			a, b = b, a+b
		}
	}
}

// Random is an infinite generator over non-negative pseudo-random int values.
// When src is nil, the shared global source of math/rand is used.
func Random(src *rand.Rand) iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			var n int
			if src != nil {
				n = src.Int()
			} else {
				n = rand.Int()
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Repeat is an infinite generator that yields the same value over and over again.
func Repeat[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(v) {
		}
	}
}

// Cycle is an infinite generator that yields the given values in order, starting over after the last one.
// With no values given, the sequence is empty.
func Cycle[T any](vs ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(vs) == 0 {
			return
		}
		for {
			for _, v := range vs {
				if !yield(v) {
					return
				}
			}
		}
	}
}
