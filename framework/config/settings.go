package config

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Settings is an immutable set of named string values with layered
// provenance: process environment overridden by properties files discovered
// by Resolve. It is never modified after construction, so it is safe to share
// between goroutines without locking.
type Settings struct {
	values map[string]string
}

// NewSettings creates a Settings from a plain map. The map is copied.
func NewSettings(values map[string]string) *Settings {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Settings{values: copied}
}

// Get returns the value for key, and whether it was present.
func (s *Settings) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetDefault returns the value for key, or fallback if it is not present.
func (s *Settings) GetDefault(key, fallback string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

// Keys returns all keys in sorted order.
func (s *Settings) Keys() []string {
	keys := maps.Keys(s.values)
	slices.Sort(keys)
	return keys
}

// Len returns the number of entries.
func (s *Settings) Len() int { return len(s.values) }
