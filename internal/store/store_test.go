package store_test

import (
	"errors"
	"time"

	"github.com/kalorieapp/kalorie-cli/internal/storage"
	"github.com/kalorieapp/kalorie-cli/internal/store"
)

// fixedClock pins the store to a known Monday afternoon.
var fixedNow = time.Date(2026, 3, 9, 12, 30, 0, 0, time.Local)

func newTestStore() (*store.Store, *storage.Memory) {
	backend := storage.NewMemory()
	s := store.Open(backend, store.WithClock(func() time.Time { return fixedNow }))
	return s, backend
}

// brokenBackend fails every write and delete; reads come up empty. It stands
// in for a full disk or unwritable config dir.
type brokenBackend struct{}

func (brokenBackend) Read(key string) ([]byte, bool, error) { return nil, false, nil }
func (brokenBackend) Write(key string, value []byte) error  { return errors.New("disk full") }
func (brokenBackend) Delete(key string) error               { return errors.New("disk full") }
func (brokenBackend) Keys() ([]string, error)               { return nil, nil }
