package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ExportAll dumps the whole namespaced key space as one JSON object: keys are
// the storage keys verbatim, values the parsed per-key values rather than
// re-stringified blobs, so an export round-trips byte-for-byte through
// ImportAll.
func (s *Store) ExportAll() ([]byte, error) {
	keys, err := s.backend.Keys()
	if err != nil {
		return nil, fmt.Errorf("list stored keys: %w", err)
	}
	dump := map[string]json.RawMessage{}
	for _, key := range keys {
		if !strings.HasPrefix(key, KeyPrefix) {
			continue
		}
		raw, ok, err := s.backend.Read(key)
		if err != nil {
			return nil, fmt.Errorf("read key %q for export: %w", key, err)
		}
		if !ok || !json.Valid(raw) {
			continue
		}
		dump[key] = json.RawMessage(raw)
	}
	out, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return out, nil
}

// ImportAll applies a backup produced by ExportAll, overwriting matching
// namespaced keys only. Keys outside the namespace are ignored; unknown keys
// within it pass through opaquely for forward compatibility. A malformed
// blob leaves the stored state untouched. The caller must Reload afterwards:
// imported data is not merged into live state.
func (s *Store) ImportAll(blob []byte) ([]string, error) {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, fmt.Errorf("invalid backup file")
	}
	applied := make([]string, 0, len(data))
	for key, value := range data {
		if !strings.HasPrefix(key, KeyPrefix) {
			continue
		}
		if err := s.backend.Write(key, value); err != nil {
			return applied, fmt.Errorf("apply backup key %q: %w", key, err)
		}
		applied = append(applied, key)
	}
	sort.Strings(applied)
	return applied, nil
}

// ResetAll deletes every namespaced key and clears the in-memory state. With
// keepBackup it first takes an ExportAll snapshot and returns it.
func (s *Store) ResetAll(keepBackup bool) ([]byte, error) {
	var backup []byte
	if keepBackup {
		var err error
		backup, err = s.ExportAll()
		if err != nil {
			return nil, err
		}
	}
	keys, err := s.backend.Keys()
	if err != nil {
		return nil, fmt.Errorf("list stored keys: %w", err)
	}
	for _, key := range keys {
		if !strings.HasPrefix(key, KeyPrefix) {
			continue
		}
		if err := s.backend.Delete(key); err != nil {
			return backup, fmt.Errorf("delete key %q: %w", key, err)
		}
	}
	s.Reload()
	return backup, nil
}
