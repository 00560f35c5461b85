package iterkit

import (
	"iter"
)

// Collect gathers all values of the sequence into a slice.
func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// Collect2 gathers all key-value pairs of the sequence into a slice,
// using the mapping function to turn each pair into a single value.
func Collect2[K, V, KV any](i iter.Seq2[K, V], m KVMapFunc[KV, K, V]) []KV {
	if i == nil {
		return nil
	}
	var es []KV
	for k, v := range i {
		es = append(es, m(k, v))
	}
	return es
}

// CollectKV gathers all key-value pairs of the sequence into a slice of KV pairs.
func CollectKV[K, V any](i iter.Seq2[K, V]) []KV[K, V] {
	return Collect2(i, func(k K, v V) KV[K, V] {
		return KV[K, V]{K: k, V: v}
	})
}

// Collect2Map gathers an iter.Seq2 into a map.
func Collect2Map[K comparable, V any](i iter.Seq2[K, V]) map[K]V {
	if i == nil {
		return nil
	}
	var out = make(map[K]V)
	for k, v := range i {
		out[k] = v
	}
	return out
}

// CollectPull gathers all remaining values of a pull function into a slice.
// The optional stop functions run before returning.
func CollectPull[T any](next func() (T, bool), stops ...func()) []T {
	for _, stop := range stops {
		defer stop()
	}
	var vs = make([]T, 0)
	for {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Reduce folds the sequence into a single value, starting from the initial value.
func Reduce[R, T any](i iter.Seq[T], initial R, fn func(R, T) R) R {
	var v = initial
	for c := range i {
		v = fn(v, c)
	}
	return v
}

// ReduceErr folds the sequence into a single value with a fallible reducer function.
// It accepts both plain and failable sequences.
func ReduceErr[R, T any, I I1[T]](i I, initial R, fn func(R, T) (R, error)) (R, error) {
	var v = initial
	for c, err := range castToErrSeq[T](i) {
		if err != nil {
			return v, err
		}
		v, err = fn(v, c)
		if err != nil {
			return v, err
		}
	}
	return v, nil
}

// Count iterates over the sequence and counts the total iteration number.
//
// Good when all you want is to count the elements in a sequence, but don't want to do anything else with them.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// Count2 iterates over the key-value sequence and counts the total iteration number.
func Count2[K, V any](i iter.Seq2[K, V]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// First returns the first value of the sequence,
// and reports whether the sequence had any value at all.
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

// First2 returns the first key-value pair of the sequence,
// and reports whether the sequence had any pair at all.
func First2[K, V any](i iter.Seq2[K, V]) (K, V, bool) {
	for k, v := range i {
		return k, v, true
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

// Last returns the last value of the sequence,
// and reports whether the sequence had any value at all.
func Last[T any](i iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range i {
		last = v
		ok = true
	}
	return last, ok
}

// Last2 returns the last key-value pair of the sequence,
// and reports whether the sequence had any pair at all.
func Last2[K, V any](i iter.Seq2[K, V]) (K, V, bool) {
	var (
		lastK K
		lastV V
		ok    bool
	)
	for k, v := range i {
		lastK = k
		lastV = v
		ok = true
	}
	return lastK, lastV, ok
}

// Take will take the next n values from a pull function.
func Take[T any](next func() (T, bool), n int) []T {
	var vs []T
	for i := 0; i < n; i++ {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Take2 will take the next n key-value pairs from a pull function,
// using the mapping function to turn each pair into a single value.
func Take2[KV any, K, V any](next func() (K, V, bool), n int, m KVMapFunc[KV, K, V]) []KV {
	var kvs []KV
	for i := 0; i < n; i++ {
		k, v, ok := next()
		if !ok {
			break
		}
		kvs = append(kvs, m(k, v))
	}
	return kvs
}

// TakeAll will take all the remaining values from a pull function.
func TakeAll[T any](next func() (T, bool)) []T {
	var vs []T
	for {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}
