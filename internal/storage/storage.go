// Package storage provides the persistence port behind the store: one JSON
// value per key, each key written atomically and independently.
package storage

import "sort"

type Backend interface {
	// Read returns the stored value for key, reporting whether it exists.
	Read(key string) ([]byte, bool, error)
	// Write replaces the value for key.
	Write(key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(key string) error
	// Keys lists every stored key in unspecified order.
	Keys() ([]string, error)
}

// Memory is an in-process Backend used by tests and as the fallback when no
// durable backend is available.
type Memory struct {
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

func (m *Memory) Read(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Write(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
