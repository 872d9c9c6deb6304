// Package store is the single source of truth for all mutable state: the
// profile, activity level, food entries, favorites, recents, and weight logs.
// Each entity lives under its own namespaced key so corruption of one key
// never invalidates the others. Writes are best-effort: a failing backend
// degrades the session to in-memory operation instead of surfacing errors.
package store

import (
	"encoding/json"
	"time"

	"github.com/kalorieapp/kalorie-cli/internal/energy"
	"github.com/kalorieapp/kalorie-cli/internal/model"
	"github.com/kalorieapp/kalorie-cli/internal/storage"
)

// KeyPrefix namespaces every persisted key; import and reset only ever touch
// keys carrying it.
const KeyPrefix = "kalorie_"

const (
	keyProfile      = KeyPrefix + "savedProfile"
	keyProfileSaved = KeyPrefix + "profileSaved"
	keyActivity     = KeyPrefix + "activity"
	keyEntries      = KeyPrefix + "entries"
	keyFavorites    = KeyPrefix + "favorites"
	keyRecents      = KeyPrefix + "recentFoods"
	keyWeightLogs   = KeyPrefix + "weightLogs"
)

const maxRecentFoods = 15

type Store struct {
	backend storage.Backend
	now     func() time.Time

	profile      *model.Profile
	profileSaved bool
	activity     string
	entries      []model.FoodEntry
	favorites    []string
	recents      []model.Food
	weightLogs   []model.WeightLog
}

type Option func(*Store)

// WithClock replaces the wall clock used to stamp entries and weight logs.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads the persisted state from backend. Unreadable or corrupt keys
// load as their zero values without affecting the rest.
func Open(backend storage.Backend, opts ...Option) *Store {
	s := &Store{backend: backend, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.Reload()
	return s
}

// Reload discards the in-memory state and re-reads every key, the moral
// equivalent of a fresh process start. Required after ImportAll.
func (s *Store) Reload() {
	s.profile = nil
	s.profileSaved = false
	s.activity = energy.DefaultLevelID
	s.entries = nil
	s.favorites = nil
	s.recents = nil
	s.weightLogs = nil

	s.read(keyProfile, &s.profile)
	s.read(keyProfileSaved, &s.profileSaved)
	var activity string
	s.read(keyActivity, &activity)
	if _, err := energy.LevelByID(activity); err == nil {
		s.activity = activity
	}
	s.read(keyEntries, &s.entries)
	s.read(keyFavorites, &s.favorites)
	s.read(keyRecents, &s.recents)
	s.read(keyWeightLogs, &s.weightLogs)
	if len(s.recents) > maxRecentFoods {
		s.recents = s.recents[:maxRecentFoods]
	}
}

// Today returns the current calendar date key.
func (s *Store) Today() string {
	return model.DateString(s.now())
}

// Now exposes the store's clock for time-of-day defaults.
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) read(key string, v any) {
	raw, ok, err := s.backend.Read(key)
	if err != nil || !ok {
		return
	}
	// A corrupt value leaves the zero value in place; other keys are
	// unaffected.
	_ = json.Unmarshal(raw, v)
}

// persist writes one key, fire-and-forget. Durability is best-effort: on
// failure the in-memory state stays authoritative for the session.
func (s *Store) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.backend.Write(key, raw)
}
