package config

import (
	"strings"
)

// Store holds configuration values as a nested tree of maps. Leaves are
// string, int64, float64 or bool; interior nodes are map[string]any.
type Store struct {
	values map[string]any
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// FromMap wraps an existing nested map.
func FromMap(values map[string]any) *Store {
	if values == nil {
		values = make(map[string]any)
	}
	return &Store{values: values}
}

// Get returns a top-level entry.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set replaces a top-level entry.
func (s *Store) Set(key string, value any) {
	s.values[key] = value
}

// GetNested resolves a dot-path such as "general.wallpaper".
func (s *Store) GetNested(path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = s.values
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// SetNested writes a dot-path, creating interior maps as needed.
// Intermediate non-map values are overwritten.
func (s *Store) SetNested(path string, value any) {
	parts := strings.Split(path, ".")
	m := s.values
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

// AsMap exposes the underlying nested map.
func (s *Store) AsMap() map[string]any {
	return s.values
}

// FlatMap flattens the nested tree into dot-path keys:
// {"general": {"wallpaper": "x"}} becomes {"general.wallpaper": "x"}.
func (s *Store) FlatMap() map[string]any {
	flat := make(map[string]any)
	for key, value := range s.values {
		flattenValue(key, value, flat)
	}
	return flat
}

func flattenValue(prefix string, value any, out map[string]any) {
	if m, ok := value.(map[string]any); ok {
		for key, v := range m {
			flattenValue(prefix+"."+key, v, out)
		}
		return
	}
	out[prefix] = value
}
