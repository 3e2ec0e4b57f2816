package config

import (
	"sync"

	"github.com/katalvlaran/frequent/singleton"
)

// globalState holds the process-wide configuration; cfg is nil until first use.
type globalState struct {
	mu  sync.Mutex
	cfg *Configuration
}

func state() *globalState {
	return singleton.GetOrCreate(func() *globalState { return &globalState{} })
}

// ensure returns the global configuration, creating it empty if needed.
// The caller holds s.mu.
func (s *globalState) ensure() *Configuration {
	if s.cfg == nil {
		s.cfg = New()
	}

	return s.cfg
}

// LoadGlobal replaces the global configuration with the one stored at path,
// or with an empty one when path is "". On error the global is unchanged.
func LoadGlobal(path string) error {
	cfg := New()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	s := state()
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	return nil
}

// Global returns a shallow copy of the global configuration.
func Global() *Configuration {
	s := state()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensure().Copy()
}

// GetGlobal returns the global setting under the key path.
func GetGlobal(key string) (any, error) {
	s := state()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensure().Get(key)
}

// GlobalOr returns the global setting under the key path, or def when absent.
func GlobalOr(key string, def any) any {
	s := state()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensure().GetOr(key, def)
}

// SetGlobal stores value under the key path in the global configuration.
func SetGlobal(key string, value any) error {
	s := state()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensure().Set(key, value)
}

// ClearGlobal drops the global configuration; the next access starts empty.
func ClearGlobal() {
	s := state()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg != nil {
		s.cfg.Clear()
	}
	s.cfg = nil
}

// WithTemp applies settings to the global configuration, calls fn with a copy
// of the result, and then restores the global configuration as it was before,
// discarding any change made in between. fn may call the global functions.
func WithTemp(settings map[string]any, fn func(cfg *Configuration) error) error {
	s := state()

	s.mu.Lock()
	saved := s.ensure().clone()
	err := s.cfg.Update(settings)
	snapshot := s.cfg.Copy()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.cfg = saved
		s.mu.Unlock()
	}()

	if err != nil {
		return err
	}

	return fn(snapshot)
}
