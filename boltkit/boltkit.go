// Package boltkit exposes the content of boltdb buckets as iterable sequences.
package boltkit

import (
	"bytes"

	"github.com/boltdb/bolt"

	"go.llib.dev/iterkit"
	"go.llib.dev/iterkit/errorkit"
)

// ErrBucketNotFound is yielded when the named bucket doesn't exist in the database.
const ErrBucketNotFound errorkit.Error = "boltkit: bucket not found"

// Pairs returns a failable sequence over the key-value pairs of the named bucket, in key order.
// Each iteration runs in its own read transaction,
// and the yielded byte slices are copies that stay valid after the transaction ended.
func Pairs(db *bolt.DB, bucket []byte) iterkit.ErrSeq[iterkit.KV[[]byte, []byte]] {
	return scan(db, bucket, nil)
}

// Prefix returns a failable sequence over the key-value pairs of the named bucket
// whose key starts with the given prefix, in key order.
func Prefix(db *bolt.DB, bucket, prefix []byte) iterkit.ErrSeq[iterkit.KV[[]byte, []byte]] {
	return scan(db, bucket, prefix)
}

// Keys returns a failable sequence over the keys of the named bucket, in key order.
func Keys(db *bolt.DB, bucket []byte) iterkit.ErrSeq[[]byte] {
	return iterkit.MapErr(Pairs(db, bucket), func(kv iterkit.KV[[]byte, []byte]) ([]byte, error) {
		return kv.K, nil
	})
}

// Values returns a failable sequence over the values of the named bucket, in key order.
func Values(db *bolt.DB, bucket []byte) iterkit.ErrSeq[[]byte] {
	return iterkit.MapErr(Pairs(db, bucket), func(kv iterkit.KV[[]byte, []byte]) ([]byte, error) {
		return kv.V, nil
	})
}

// Put stores the key-value pair in the named bucket, creating the bucket when needed.
func Put(db *bolt.DB, bucket, key, value []byte) error {
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		return b.Put(key, value)
	})
}

func scan(db *bolt.DB, bucket, prefix []byte) iterkit.ErrSeq[iterkit.KV[[]byte, []byte]] {
	type pair = iterkit.KV[[]byte, []byte]
	return func(yield func(pair, error) bool) {
		err := db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucket)
			if b == nil {
				return ErrBucketNotFound
			}
			c := b.Cursor()
			var k, v []byte
			if prefix != nil {
				k, v = c.Seek(prefix)
			} else {
				k, v = c.First()
			}
			for ; k != nil; k, v = c.Next() {
				if prefix != nil && !bytes.HasPrefix(k, prefix) {
					break
				}
				kv := pair{
					K: bytes.Clone(k),
					V: bytes.Clone(v),
				}
				if !yield(kv, nil) {
					break
				}
			}
			return nil
		})
		if err != nil {
			yield(pair{}, err)
		}
	}
}
