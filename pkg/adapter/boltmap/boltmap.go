// Package boltmap exposes a go.etcd.io/bbolt bucket as a string keyed mapping.
//
// Every read opens its own read-only transaction,
// so a view over a Map always reflects the last committed state of the bucket.
package boltmap

import (
	"bytes"
	"context"
	"iter"

	bolt "go.etcd.io/bbolt"

	"go.llib.dev/views/pkg/datastruct"
	"go.llib.dev/views/pkg/errorkit"
	"go.llib.dev/views/pkg/logging"
)

const ErrNoDB errorkit.Error = "boltmap: missing database"

// Map reads and writes the keys of a single bucket.
// A missing bucket reads as an empty mapping.
type Map struct {
	DB     *bolt.DB
	Bucket string
	// Logger receives read failures.
	// When nil, logging.Default is used.
	Logger *logging.Logger
}

var (
	_ datastruct.MapReader[string, []byte]        = Map{}
	_ datastruct.ReverseIterable2[string, []byte] = Map{}
)

func (m Map) logger() *logging.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return logging.Default
}

func (m Map) view(op string, fn func(b *bolt.Bucket) error) bool {
	if m.DB == nil {
		m.logger().Error(context.Background(), "bolt read failed",
			logging.Field("bucket", m.Bucket),
			logging.Field("operation", op),
			logging.ErrField(ErrNoDB))
		return false
	}
	err := m.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(m.Bucket))
		if b == nil {
			return nil
		}
		return fn(b)
	})
	if err != nil {
		m.logger().Error(context.Background(), "bolt read failed",
			logging.Field("bucket", m.Bucket),
			logging.Field("operation", op),
			logging.ErrField(err))
		return false
	}
	return true
}

// Lookup returns a copy of the stored value.
// A failed read is logged and reported as an absent key.
func (m Map) Lookup(key string) ([]byte, bool) {
	var (
		val   []byte
		found bool
	)
	m.view("Lookup", func(b *bolt.Bucket) error {
		if v := b.Get([]byte(key)); v != nil {
			val, found = bytes.Clone(v), true
		}
		return nil
	})
	return val, found
}

func (m Map) Len() int {
	var n int
	m.view("Len", func(b *bolt.Bucket) error {
		n = b.Stats().KeyN
		return nil
	})
	return n
}

// Iter iterates the entries in key byte order within a single read transaction.
// The loop body must not write to the same database.
func (m Map) Iter() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		m.view("Iter", func(b *bolt.Bucket) error {
			c := b.Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				if !yield(string(k), bytes.Clone(v)) {
					return nil
				}
			}
			return nil
		})
	}
}

// Backward iterates the entries in reverse key byte order.
func (m Map) Backward() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		m.view("Backward", func(b *bolt.Bucket) error {
			c := b.Cursor()
			for k, v := c.Last(); k != nil; k, v = c.Prev() {
				if !yield(string(k), bytes.Clone(v)) {
					return nil
				}
			}
			return nil
		})
	}
}

// Set stores val under key, creating the bucket when needed.
func (m Map) Set(key string, val []byte) error {
	if m.DB == nil {
		return ErrNoDB
	}
	return m.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(m.Bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), val)
	})
}

func (m Map) Delete(key string) error {
	if m.DB == nil {
		return ErrNoDB
	}
	return m.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(m.Bucket))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}
