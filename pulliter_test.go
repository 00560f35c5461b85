package iterkit_test

import (
	"testing"

	"go.llib.dev/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

var _ iterkit.PullIter[int] = iterkit.ToPullIter(iterkit.ToErrSeq(iterkit.IntRange(1, 3)))

func TestToPullIter(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the cursor protocol walks the sequence value by value", func(t *testcase.T) {
		itr := iterkit.ToPullIter(iterkit.ToErrSeq(iterkit.Slice([]int{42, 4, 2})))
		defer itr.Close()

		assert.True(t, itr.Next())
		assert.Equal(t, 42, itr.Value())

		// Value is repeatable without advancing the cursor
		assert.Equal(t, 42, itr.Value())

		assert.True(t, itr.Next())
		assert.Equal(t, 4, itr.Value())

		assert.True(t, itr.Next())
		assert.Equal(t, 2, itr.Value())

		assert.False(t, itr.Next())
		assert.NoError(t, itr.Err())
	})

	s.Test("after Close the cursor reports no more values", func(t *testcase.T) {
		itr := iterkit.ToPullIter(iterkit.ToErrSeq(iterkit.IntRange(1, 3)))
		assert.NoError(t, itr.Close())
		assert.False(t, itr.Next())
	})

	s.Test("Close can be called multiple times", func(t *testcase.T) {
		itr := iterkit.ToPullIter(iterkit.ToErrSeq(iterkit.IntRange(1, 3)))
		for i := 0; i < 42; i++ {
			assert.NoError(t, itr.Close())
		}
	})

	s.Test("the error of the failable sequence is reported through Err", func(t *testcase.T) {
		expErr := t.Random.Error()
		itr := iterkit.ToPullIter(iterkit.Error[int](expErr))
		defer itr.Close()
		assert.True(t, itr.Next())
		assert.ErrorIs(t, expErr, itr.Err())
	})
}

func TestFromPullIter(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the values of the pull iterator are yielded", func(t *testcase.T) {
		src := iterkit.ToPullIter(iterkit.ToErrSeq(iterkit.IntRange(1, 3)))
		vs, err := iterkit.CollectErr(iterkit.FromPullIter(src))
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, vs)
	})

	s.Test("the sequence is single use", func(t *testcase.T) {
		src := iterkit.ToPullIter(iterkit.ToErrSeq(iterkit.IntRange(1, 3)))
		i := iterkit.FromPullIter(src)
		_, _ = iterkit.CollectErr(i)
		vs, err := iterkit.CollectErr(i)
		assert.NoError(t, err)
		assert.Empty(t, vs)
	})

	s.Test("the iterator error is yielded at the end", func(t *testcase.T) {
		expErr := t.Random.Error()
		src := &stubPullIter{NextValues: []int{1, 2}, ErrValue: expErr}
		vs, err := iterkit.CollectErr(iterkit.FromPullIter[int](src))
		assert.Equal(t, []int{1, 2}, vs)
		assert.ErrorIs(t, err, expErr)
	})

	s.Test("both the cursor error and the close error are part of the outcome", func(t *testcase.T) {
		cursorErr := t.Random.Error()
		closeErr := t.Random.Error()
		src := &stubPullIter{NextValues: []int{1}, ErrValue: cursorErr, CloseErr: closeErr}
		vs, err := iterkit.CollectErr(iterkit.FromPullIter[int](src))
		assert.Equal(t, []int{1}, vs)
		assert.ErrorIs(t, err, cursorErr)
		assert.ErrorIs(t, err, closeErr)
	})

	s.Test("the iterator is closed after the iteration", func(t *testcase.T) {
		src := &stubPullIter{NextValues: []int{1, 2}}
		_, _ = iterkit.CollectErr(iterkit.FromPullIter[int](src))
		assert.True(t, src.Closed)
	})
}

func TestCollectPullIter(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("all values are collected and the iterator is closed", func(t *testcase.T) {
		src := &stubPullIter{NextValues: []int{4, 2}}
		vs, err := iterkit.CollectPullIter[int](src)
		assert.NoError(t, err)
		assert.Equal(t, []int{4, 2}, vs)
		assert.True(t, src.Closed)
	})

	s.Test("a nil iterator collects to nil", func(t *testcase.T) {
		vs, err := iterkit.CollectPullIter[int](nil)
		assert.NoError(t, err)
		assert.Nil(t, vs)
	})

	s.Test("the iterator error is part of the result", func(t *testcase.T) {
		expErr := t.Random.Error()
		src := &stubPullIter{NextValues: []int{1}, ErrValue: expErr}
		vs, err := iterkit.CollectPullIter[int](src)
		assert.Equal(t, []int{1}, vs)
		assert.ErrorIs(t, err, expErr)
	})

	s.Test("the close error is part of the result", func(t *testcase.T) {
		expErr := t.Random.Error()
		src := &stubPullIter{NextValues: []int{1}, CloseErr: expErr}
		vs, err := iterkit.CollectPullIter[int](src)
		assert.Equal(t, []int{1}, vs)
		assert.ErrorIs(t, err, expErr)
	})
}

type stubPullIter struct {
	NextValues []int
	ErrValue   error
	CloseErr   error

	Closed bool
	value  int
}

func (i *stubPullIter) Next() bool {
	if i.Closed {
		return false
	}
	if len(i.NextValues) == 0 {
		return false
	}
	i.value = i.NextValues[0]
	i.NextValues = i.NextValues[1:]
	return true
}

func (i *stubPullIter) Value() int { return i.value }

func (i *stubPullIter) Err() error { return i.ErrValue }

func (i *stubPullIter) Close() error {
	i.Closed = true
	return i.CloseErr
}
