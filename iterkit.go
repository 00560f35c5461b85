// Package iterkit provides tools to produce, transform and consume iterators.
//
// # Summary
//
// An iterator decouples the origin of the data from the consumer who uses that data.
// Most commonly, iterators hide whether the data comes from a database, the standard input,
// an in-memory collection, or a generator function that computes values on demand.
// An iterator represents an iterable sequence of elements,
// whose length is not known until it is fully iterated, thus can range from zero to infinity.
//
// The package builds on the standard library's iter.Seq protocol for push style iteration,
// and provides the PullIter protocol for cursor style consumption,
// where the caller asks for the next value and is told when the sequence is finished.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://go.dev/blog/range-functions
package iterkit

import (
	"iter"

	"go.llib.dev/iterkit/errorkit"
)

// SingleUseSeq is an iter.Seq[T] that can be iterated only once.
// After iteration, it is expected to yield no more values.
//
// Most iterators provide the ability to walk an entire sequence:
// when called, the iterator does any setup necessary to start the sequence,
// then calls yield on successive elements of the sequence, and then cleans up before returning.
// Calling the iterator again walks the sequence again.
//
// SingleUseSeq iterators break that convention, providing the ability to walk a sequence only once.
// These single-use iterators typically report values from a data stream that cannot be rewound to start over.
// Calling the iterator again after stopping early may continue the stream,
// but calling it again after the sequence is finished will yield no values at all.
//
// A function or method that returns a single-use sequence
// should either say so in its documentation
// or use SingleUseSeq as its return type to express it.
type SingleUseSeq[T any] = iter.Seq[T]

// SingleUseSeq2 is an iter.Seq2[K, V] that can be iterated only once.
// After iteration, it is expected to yield no more values.
// For more information on single-use sequences, see SingleUseSeq.
type SingleUseSeq2[K, V any] = iter.Seq2[K, V]

// SingleUseErrSeq is an ErrSeq[T] that can be iterated only once.
// After iteration, it is expected to yield no more values.
// For more information on single-use sequences, see SingleUseSeq.
type SingleUseErrSeq[T any] = ErrSeq[T]

// ErrSeq is a failable sequence.
// It yields values along with the error that occurred while producing them,
// which makes it possible to represent iteration over fallible sources
// such as a network stream or database rows.
type ErrSeq[T any] = iter.Seq2[T, error]

// ErrFunc reports the error state that belongs to an iteration, if there is any.
type ErrFunc = errorkit.ErrFunc

// I1 is the type constraint for sequence arguments
// that are accepted both in plain and in failable form.
type I1[T any] interface {
	iter.Seq[T] | ErrSeq[T]
}

// KV is a key-value pair, used to express an iter.Seq2 element as a single value.
type KV[K, V any] struct {
	K K
	V V
}

// KVMapFunc maps a key-value pair into a single value.
type KVMapFunc[KV any, K, V any] func(K, V) KV
