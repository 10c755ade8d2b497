package storage

import "errors"

var ErrRecordNotFound = errors.New("record not found")

// Store is the key-value persistence the booking session runs on. Records are
// whole JSON documents: every write replaces the full value for its key, so a
// reader never observes a partially updated record.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
