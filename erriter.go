package iterkit

import (
	"context"
	"iter"
	"sync"

	"go.llib.dev/iterkit/errorkit"
)

// ToErrSeq turns an iter.Seq[T] into a failable sequence,
// using the error functions to yield potential issues found after the iteration.
func ToErrSeq[T any](i iter.Seq[T], errFuncs ...ErrFunc) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		for v := range i {
			if !yield(v, nil) {
				return
			}
		}
		if 0 < len(errFuncs) {
			errFunc := errorkit.MergeErrFunc(errFuncs...)
			if err := errFunc(); err != nil {
				var zero T
				yield(zero, err)
			}
		}
	}
}

// SplitErrSeq splits a failable sequence into a plain iter.Seq[T] plus an error retrieval function.
// The error function reports the errors encountered during the last iteration.
func SplitErrSeq[T any](i ErrSeq[T]) (iter.Seq[T], ErrFunc) {
	var m sync.RWMutex
	var errs []error
	return func(yield func(T) bool) {
			m.Lock()
			errs = nil
			m.Unlock()
			for v, err := range i {
				if err != nil {
					m.Lock()
					errs = append(errs, err)
					m.Unlock()
					continue
				}
				if !yield(v) {
					return
				}
			}
		},
		func() error {
			m.RLock()
			defer m.RUnlock()
			return errorkit.Merge(errs...)
		}
}

// CollectErr gathers all values of a failable sequence into a slice,
// along with the merged error of the failed elements.
func CollectErr[T any](i ErrSeq[T]) ([]T, error) {
	if i == nil {
		return nil, nil
	}
	var (
		vs   []T
		errs []error
	)
	for v, err := range i {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vs = append(vs, v)
	}
	return vs, errorkit.Merge(errs...)
}

// OnErrSeqValue applies an iterator pipeline on the value part of a failable sequence,
// while passing through the errors of the source untouched.
func OnErrSeqValue[To, From any](itr ErrSeq[From], pipeline func(i iter.Seq[From]) iter.Seq[To]) ErrSeq[To] {
	return func(yield func(To, error) bool) {
		var (
			ctx, cancel = context.WithCancel(context.Background())
			wg          sync.WaitGroup

			in   = make(chan From)
			out  = make(chan To)
			errs = make(chan error)
		)
		defer wg.Wait()
		defer cancel()

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer close(errs)
			defer close(in)
			for from, err := range itr {
				if err != nil {
					select {
					case errs <- err:
						continue
					case <-ctx.Done():
						return
					}
				}
				select {
				case in <- from:
				case <-ctx.Done():
					return
				}
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer close(out)
			for output := range pipeline(Chan(in)) {
				select {
				case out <- output:
				case <-ctx.Done():
					return
				}
			}
		}()

		for {
			select {
			case output, ok := <-out:
				if !ok {
					return
				}
				if !yield(output, nil) {
					return
				}
			case err, ok := <-errs:
				if !ok {
					// close(errs) happens earlier than close(out),
					// the remaining transformed values still need collecting
					output, ok := <-out
					if !ok {
						return
					}
					if !yield(output, nil) {
						return
					}
					continue
				}
				var zero To
				if !yield(zero, err) {
					return
				}
			}
		}
	}
}

func castToErrSeq[T any, I I1[T]](i I) ErrSeq[T] {
	switch i := any(i).(type) {
	case ErrSeq[T]:
		return i
	case iter.Seq[T]:
		return func(yield func(T, error) bool) {
			for v := range i {
				if !yield(v, nil) {
					return
				}
			}
		}
	default:
		panic("not-implemented")
	}
}
