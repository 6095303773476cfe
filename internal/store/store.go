// Package store wraps a local bbolt file as the durable key-value home of
// every collection. Each collection is stored as one JSON array under a
// namespaced key; a missing or malformed value degrades to the caller's
// default rather than surfacing an error.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

// Collection key suffixes, one per entity type.
const (
	Students       = "students"
	ClassRecords   = "class-records"
	Accounts       = "accounts"
	Transactions   = "transactions"
	ScheduledWorks = "scheduled-works"
	ShoppingItems  = "shopping-items"
	Notes          = "notes"
)

var bucketName = []byte("collections")

// Store is a namespaced key-value store over a single bbolt file.
type Store struct {
	db  *bolt.DB
	ns  string
	log logrus.FieldLogger
}

// Open opens (creating if needed) the bbolt file at path. Keys are prefixed
// with namespace so several trackers can share a file.
func Open(path, namespace string, log logrus.FieldLogger) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{db: db, ns: namespace, log: log}, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) key(name string) []byte {
	return []byte(s.ns + "-" + name)
}

// Get unmarshals the value stored under name into dest. It reports false,
// leaving dest untouched, when the key is absent or the stored bytes do not
// unmarshal; a malformed value is logged and discarded.
func (s *Store) Get(name string, dest any) bool {
	var raw []byte
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get(s.key(name)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.WithError(err).WithField("key", string(s.key(name))).
			Warn("discarding malformed stored value, falling back to default")
		return false
	}
	return true
}

// Set marshals value and writes it under name in a single update
// transaction. The write is durable before Set returns.
func (s *Store) Set(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(s.key(name), data)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Load reads a whole collection, returning def when the collection is absent
// or unreadable.
func Load[T any](s *Store, name string, def []T) []T {
	var records []T
	if !s.Get(name, &records) {
		return def
	}
	return records
}

// Save writes a whole collection back. A nil slice is stored as an empty
// array so a later Load distinguishes "empty" from "absent".
func Save[T any](s *Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	return s.Set(name, records)
}
