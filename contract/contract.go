// Package contract provides reusable behavioral test suites
// for types that produce sequences, so their authors can verify
// that the produced iterators behave according to the iteration protocol.
package contract

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// IterSeq returns a test suite that verifies the sequences made by the given constructor.
// The constructor is expected to return a non-empty, repeatable sequence.
func IterSeq[T any](mk func(testing.TB) iter.Seq[T]) testcase.SpecSuite {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("iteration can be stopped early without blocking", func(t *testcase.T) {
		for range subject.Get(t) {
			break
		}
	})

	s.Then("the sequence is repeatable", func(t *testcase.T) {
		var fst []T
		for v := range subject.Get(t) {
			fst = append(fst, v)
		}
		var snd []T
		for v := range subject.Get(t) {
			snd = append(snd, v)
		}
		assert.Equal(t, fst, snd)
	})

	return s.AsSuite("iterator")
}

// ErrSeq returns a test suite that verifies the failable sequences made by the given constructor.
// The constructor is expected to return a non-empty sequence without failing elements.
func ErrSeq[T any](mk func(testing.TB) iter.Seq2[T, error]) testcase.SpecSuite {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq2[T, error] {
		return mk(t)
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		var vs []T
		for v, err := range subject.Get(t) {
			assert.NoError(t, err)
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("iteration can be stopped early without blocking", func(t *testcase.T) {
		for range subject.Get(t) {
			break
		}
	})

	return s.AsSuite("err-iterator")
}
