package iterkit

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"go.llib.dev/iterkit/internal/option"
)

// Filter will keep the values from the sequence for which the filter function returns true.
// It accepts both plain and failable sequences, and returns the same kind it received.
func Filter[T any, Iter I1[T]](i Iter, filter func(T) bool) Iter {
	if i == nil {
		return nil
	}
	switch i := any(i).(type) {
	case iter.Seq[T]:
		var itr iter.Seq[T] = func(yield func(T) bool) {
			for v := range i {
				if filter(v) {
					if !yield(v) {
						return
					}
				}
			}
		}
		return any(itr).(Iter)
	case ErrSeq[T]:
		var itr ErrSeq[T] = func(yield func(T, error) bool) {
			for v, err := range i {
				if err != nil {
					var zero T
					if !yield(zero, err) {
						return
					}
					continue
				}
				if filter(v) {
					if !yield(v, nil) {
						return
					}
				}
			}
		}
		return any(itr).(Iter)
	default:
		panic("not-implemented")
	}
}

// Filter2 will keep the key-value pairs from the sequence for which the filter function returns true.
func Filter2[K, V any](i iter.Seq2[K, V], filter func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range i {
			if filter(k, v) {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Map allows you to do additional transformation on the values.
// This is useful in cases where you have to alter the input value,
// or change the type altogether.
// Like when you read lines from an input stream,
// and then map the line content to a certain data structure,
// in order to not expose what steps are needed to deserialize the input stream,
// thus protecting the business rules from this information.
func Map[To, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Map2 transforms the key-value pairs of the sequence.
func Map2[OK, OV, IK, IV any](i iter.Seq2[IK, IV], transform func(IK, IV) (OK, OV)) iter.Seq2[OK, OV] {
	return func(yield func(OK, OV) bool) {
		for k, v := range i {
			if !yield(transform(k, v)) {
				return
			}
		}
	}
}

// MapErr transforms the values of the sequence with a fallible transform function.
// It accepts both plain and failable input sequences.
func MapErr[To, From any, Iter I1[From]](i Iter, transform func(From) (To, error)) ErrSeq[To] {
	var src ErrSeq[From] = castToErrSeq[From](i)
	return func(yield func(To, error) bool) {
		for v, err := range src {
			if err != nil {
				var zero To
				if !yield(zero, err) {
					return
				}
				continue
			}
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Limit caps the sequence at n elements.
// It makes it safe to consume the beginning of an infinite sequence.
func Limit[V any](i iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n <= 0 {
			return
		}
		var count int
		for v := range i {
			if !yield(v) {
				return
			}
			count++
			if n <= count {
				return
			}
		}
	}
}

// Offset skips the first offset elements of the sequence.
func Offset[V any](i iter.Seq[V], offset int) iter.Seq[V] {
	return func(yield func(V) bool) {
		var index int
		for v := range i {
			index++
			if index <= offset {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Head takes the first n elements, similarly to how the coreutils "head" command works.
func Head[T any](i iter.Seq[T], n int) iter.Seq[T] {
	return Limit(i, n)
}

// Head2 takes the first n key-value pairs, similarly to how the coreutils "head" command works.
func Head2[K, V any](i iter.Seq2[K, V], n int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if n <= 0 {
			return
		}
		var count int
		for k, v := range i {
			if !yield(k, v) {
				return
			}
			count++
			if n <= count {
				return
			}
		}
	}
}

// Merge combines multiple sequences into a single one,
// yielding all values of each in argument order.
func Merge[T any](is ...iter.Seq[T]) iter.Seq[T] {
	if len(is) == 0 {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		for _, i := range is {
			for v := range i {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Merge2 combines multiple key-value sequences into a single one,
// yielding all pairs of each in argument order.
func Merge2[K, V any](is ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	if len(is) == 0 {
		return Empty2[K, V]()
	}
	return func(yield func(K, V) bool) {
		for _, i := range is {
			for k, v := range i {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite sequences,
// as it has to collect all values before it can yield the last one first.
func Reverse[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vs = Collect(i)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}

// Once turns a sequence into a single-use sequence.
// The second and any further range over the result yields nothing.
func Once[T any](i iter.Seq[T]) SingleUseSeq[T] {
	var done int32
	return func(yield func(T) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for v := range i {
			if !yield(v) {
				return
			}
		}
	}
}

// Once2 turns a key-value sequence into a single-use sequence.
// The second and any further range over the result yields nothing.
func Once2[K, V any](i iter.Seq2[K, V]) SingleUseSeq2[K, V] {
	var done int32
	return func(yield func(K, V) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for k, v := range i {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Sync ensures that a sequence can be safely consumed by multiple goroutines at the same time.
// The values are distributed between the concurrent consumers.
// The returned function releases the underlying pull iterator.
func Sync[T any](i iter.Seq[T]) (SingleUseSeq[T], func()) {
	// pull is initiated before the range iterations
	// because multiple range sessions are expected to start simultaneously,
	// and the values must be distributed between them from a shared cursor.
	next, stop := iter.Pull(i)
	var m sync.Mutex
	var fetch = func() (T, bool) {
		m.Lock()
		defer m.Unlock()
		return next()
	}
	var finish = func() {
		m.Lock()
		defer m.Unlock()
		stop()
	}
	return func(yield func(T) bool) {
		for {
			v, ok := fetch()
			if !ok {
				finish()
				return
			}
			if !yield(v) {
				return
			}
		}
	}, finish
}

// Sync2 ensures that a key-value sequence can be safely consumed by multiple goroutines at the same time.
// The values are distributed between the concurrent consumers.
// The returned function releases the underlying pull iterator.
func Sync2[K, V any](i iter.Seq2[K, V]) (SingleUseSeq2[K, V], func()) {
	next, stop := iter.Pull2(i)
	var m sync.Mutex
	var fetch = func() (K, V, bool) {
		m.Lock()
		defer m.Unlock()
		return next()
	}
	var finish = func() {
		m.Lock()
		defer m.Unlock()
		stop()
	}
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := fetch()
			if !ok {
				finish()
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}, finish
}

// ToChan exposes the sequence as a channel.
// The cancel function stops the feeding goroutine and must be called when the channel is no longer consumed.
func ToChan[T any](i iter.Seq[T]) (_ <-chan T, cancel func()) {
	var (
		ch          = make(chan T)
		ctx, cancFn = context.WithCancel(context.Background())
		wg          sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(ch)
		for v := range i {
			select {
			case ch <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, func() {
		cancFn()
		wg.Wait()
	}
}

// Batch will bundle the values of the sequence into slices.
// By default it batches synchronously with BatchConfig's default size.
// When a wait limit is configured, batching becomes asynchronous,
// and a non-full batch is flushed when the wait limit is reached.
func Batch[T any](i iter.Seq[T], opts ...BatchOption) iter.Seq[[]T] {
	c := option.ToConfig(opts)
	if 0 < c.WaitLimit {
		return asyncBatch(i, c)
	}
	return syncBatch(i, c)
}

// BatchConfig contains the batching configuration.
type BatchConfig struct {
	// Size is the maximum element count of a single batch.
	Size int
	// WaitLimit is the maximum duration batching waits for further values
	// before flushing a non-empty, non-full batch.
	WaitLimit time.Duration
}

func (c BatchConfig) Configure(t *BatchConfig) {
	if 0 < c.Size {
		t.Size = c.Size
	}
	if 0 < c.WaitLimit {
		t.WaitLimit = c.WaitLimit
	}
}

func (c BatchConfig) getSize() int {
	const defaultBatchSize = 64
	if c.Size <= 0 {
		return defaultBatchSize
	}
	return c.Size
}

// BatchOption configures the Batch combinator.
type BatchOption = option.Option[BatchConfig]

// BatchSize configures the maximum element count of a single batch.
func BatchSize(n int) BatchOption {
	return option.Func[BatchConfig](func(c *BatchConfig) {
		c.Size = n
	})
}

// BatchWaitLimit configures how long batching waits for further values
// before flushing a non-empty, non-full batch.
func BatchWaitLimit(d time.Duration) BatchOption {
	return option.Func[BatchConfig](func(c *BatchConfig) {
		c.WaitLimit = d
	})
}

func syncBatch[T any](i iter.Seq[T], c BatchConfig) iter.Seq[[]T] {
	size := c.getSize()
	return func(yield func([]T) bool) {
		var vs = make([]T, 0, size)
		var flush = func() bool {
			if len(vs) == 0 {
				return true
			}
			cont := yield(vs)
			vs = make([]T, 0, size)
			return cont
		}
		for v := range i {
			vs = append(vs, v)
			if size <= len(vs) {
				if !flush() {
					return
				}
			}
		}
		flush()
	}
}

func asyncBatch[T any](i iter.Seq[T], c BatchConfig) iter.Seq[[]T] {
	if c.WaitLimit <= 0 {
		panic(fmt.Sprintf("[Batch with WaitLimit] invalid wait limit: %d", c.WaitLimit))
	}
	size := c.getSize()
	return func(yield func([]T) bool) {
		var (
			feed = make(chan T)
			done = make(chan struct{})
		)
		defer close(done)

		go func() {
			defer close(feed)
			for v := range i {
				select {
				case feed <- v:
				case <-done:
					return
				}
			}
		}()

		var (
			vs     = make([]T, 0, size)
			ticker = time.NewTicker(c.WaitLimit)
		)
		defer ticker.Stop()

		var flush = func() bool {
			if len(vs) == 0 {
				return true
			}
			cont := yield(vs)
			vs = make([]T, 0, size)
			return cont
		}

		for {
			ticker.Reset(c.WaitLimit)
			select {
			case v, ok := <-feed:
				if !ok {
					flush()
					return
				}
				vs = append(vs, v)
				if size <= len(vs) {
					if !flush() {
						return
					}
				}
			case <-ticker.C:
				if !flush() {
					return
				}
			}
		}
	}
}
