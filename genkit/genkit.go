// Package genkit provides generators: function forms that return iterators.
//
// A generator's body executes incrementally.
// It pauses at each yield point and resumes only when the next value is requested,
// optionally receiving a value passed in at resumption.
// This makes it possible to express infinite or stateful sequences as plain sequential code,
// while the consumer stays in control of how far the sequence is advanced.
package genkit

import (
	"context"
	"iter"
	"sync"

	"go.llib.dev/iterkit"
)

// Func is the generator function form for the common case,
// where the body doesn't expect values back at resumption.
// The returned iterator executes the body incrementally,
// suspending the body at each yield call until the next value is requested.
func Func[V any](body func(yield func(V) bool)) iter.Seq[V] {
	return iter.Seq[V](body)
}

// New creates a suspended generator from the given body.
//
// The body is not started until the first Next or Send call.
// Each yield call within the body suspends its execution,
// hands the yielded value over to the consumer,
// and blocks until the consumer requests the next value.
// The value the consumer passes with Send is returned by the suspended yield call at resumption.
// The yield call reports false when the generator is stopped, at which point the body should return.
//
// The body's context is cancelled when the generator is stopped.
func New[V, In any](body func(ctx context.Context, yield func(V) (In, bool)) error) *Gen[V, In] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Gen[V, In]{
		body:     body,
		ctx:      ctx,
		cancel:   cancel,
		out:      make(chan V),
		in:       make(chan In),
		finished: make(chan struct{}),
	}
}

// Gen is a suspended generator.
// V is the type the generator yields,
// In is the type the consumer may pass back at resumption.
//
// A Gen is safe for use by a single consumer goroutine.
// For concurrent consumption, wrap Seq with iterkit.Sync.
type Gen[V, In any] struct {
	body func(ctx context.Context, yield func(V) (In, bool)) error

	ctx    context.Context
	cancel context.CancelFunc

	out      chan V
	in       chan In
	finished chan struct{}

	m        sync.Mutex
	started  bool
	done     bool
	sendPeek *In

	errM sync.Mutex
	err  error
}

// Next resumes the generator body until its next yield point,
// and returns the yielded value.
// It reports false when the body has returned or the generator was stopped.
func (g *Gen[V, In]) Next() (V, bool) {
	var zero In
	return g.resume(zero, false)
}

// Send resumes the generator body until its next yield point,
// passing the given value back to the yield call the body is suspended at.
// On a generator that has not started yet,
// Send starts the body and the value is delivered to the body's first yield.
// It reports false when the body has returned or the generator was stopped.
func (g *Gen[V, In]) Send(in In) (V, bool) {
	return g.resume(in, true)
}

// Stop cancels the generator body's context,
// waits until the body returned, and reports the body's error, if any.
// Calling Stop multiple times is safe.
// After Stop, Next and Send report false.
func (g *Gen[V, In]) Stop() error {
	g.cancel()
	g.m.Lock()
	if !g.started || g.done {
		g.done = true
		g.m.Unlock()
		return g.Err()
	}
	g.m.Unlock()
	<-g.finished
	g.m.Lock()
	g.done = true
	g.m.Unlock()
	return g.Err()
}

// Err reports the error the generator body returned with.
// It yields nil while the body is still suspended or running.
func (g *Gen[V, In]) Err() error {
	g.errM.Lock()
	defer g.errM.Unlock()
	return g.err
}

// Seq exposes the generator as a single-use sequence.
// The generator is stopped when the iteration finishes,
// including when the consumer breaks out of the loop early.
func (g *Gen[V, In]) Seq() iterkit.SingleUseSeq[V] {
	return func(yield func(V) bool) {
		defer g.Stop()
		for {
			v, ok := g.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (g *Gen[V, In]) resume(in In, hasIn bool) (V, bool) {
	var zero V
	g.m.Lock()
	if g.done {
		g.m.Unlock()
		return zero, false
	}
	if !g.started {
		g.started = true
		if hasIn {
			g.sendPeek = &in
		}
		go g.run()
	} else {
		select {
		case g.in <- in:
		case <-g.finished:
		}
	}
	v, ok := <-g.out
	if !ok {
		g.done = true
		g.m.Unlock()
		return zero, false
	}
	g.m.Unlock()
	return v, true
}

func (g *Gen[V, In]) run() {
	defer close(g.finished)
	defer close(g.out)
	err := g.body(g.ctx, g.yield)
	g.errM.Lock()
	g.err = err
	g.errM.Unlock()
}

func (g *Gen[V, In]) yield(v V) (In, bool) {
	var zero In
	select {
	case g.out <- v:
	case <-g.ctx.Done():
		return zero, false
	}
	if g.sendPeek != nil {
		// the value that was passed with a Send that started the generator
		in := *g.sendPeek
		g.sendPeek = nil
		return in, true
	}
	select {
	case in := <-g.in:
		return in, true
	case <-g.ctx.Done():
		return zero, false
	}
}
