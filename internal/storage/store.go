package storage

import (
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// ErrNotFound is returned by Get when a key has never been written.
// Callers use it to tell "no data yet" apart from corrupt data.
var ErrNotFound = errors.New("key not found")

// CorruptError wraps a decode failure for a collection that was present
// in the store but could not be deserialized.
type CorruptError struct {
	Key string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt data under key %q: %v", e.Key, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

var bucketName = []byte("collections")

// Store is a single-writer key-value store backed by an embedded bbolt
// file. One key per collection, values are JSON arrays.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("could not open store at %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw == nil {
			return ErrNotFound
		}
		value = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) Put(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}

func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

// Reset drops every stored key and rewrites the provided seed values in
// one transaction.
func (s *Store) Reset(seed map[string][]byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil {
			return err
		}
		bucket, err := tx.CreateBucket(bucketName)
		if err != nil {
			return err
		}
		for key, value := range seed {
			if err := bucket.Put([]byte(key), value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
