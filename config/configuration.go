package config

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// KeySeparator splits a key path into a section name and the remaining path.
const KeySeparator = "."

// Sentinel errors for configuration access.
var (
	// ErrKeyNotFound indicates a key path names no setting.
	ErrKeyNotFound = errors.New("config: key not found")

	// ErrNotSection indicates a key path descends into a non-section value.
	ErrNotSection = errors.New("config: value is not a section")
)

// Configuration is a nested settings store. The zero value is not usable; call New.
type Configuration struct {
	storage map[string]any
}

// New returns an empty Configuration.
func New() *Configuration {
	return &Configuration{storage: make(map[string]any)}
}

// FromMap builds a Configuration from m; nested maps become sections and
// dotted keys are expanded.
//
// Errors:
//   - ErrNotSection when two keys disagree about a path (e.g. "a": 1 and "a.b": 2).
func FromMap(m map[string]any) (*Configuration, error) {
	c := New()
	if err := c.Update(m); err != nil {
		return nil, err
	}

	return c, nil
}

// splitKey cuts key at the first separator. An empty remainder means no sub-key.
func splitKey(key string) (head, rest string) {
	head, rest, _ = strings.Cut(key, KeySeparator)

	return head, rest
}

// normalize converts plain maps into sections.
func normalize(value any) (any, error) {
	if m, ok := value.(map[string]any); ok {
		return FromMap(m)
	}

	return value, nil
}

// Get returns the value stored under the key path.
//
// Errors:
//   - ErrKeyNotFound when any step of the path is missing.
//   - ErrNotSection when the path descends into a non-section value.
func (c *Configuration) Get(key string) (any, error) {
	head, rest := splitKey(key)
	v, ok := c.storage[head]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", key, ErrKeyNotFound)
	}
	if rest == "" {
		return v, nil
	}
	sec, ok := v.(*Configuration)
	if !ok {
		return nil, fmt.Errorf("get %q: %w", key, ErrNotSection)
	}

	return sec.Get(rest)
}

// Lookup returns the value under the key path and whether it exists.
func (c *Configuration) Lookup(key string) (any, bool) {
	v, err := c.Get(key)

	return v, err == nil
}

// GetOr returns the value under the key path, or def when it is absent.
func (c *Configuration) GetOr(key string, def any) any {
	if v, ok := c.Lookup(key); ok {
		return v
	}

	return def
}

// Has reports whether the key path names a setting.
func (c *Configuration) Has(key string) bool {
	_, ok := c.Lookup(key)

	return ok
}

// Section returns the nested section under the key path.
func (c *Configuration) Section(key string) (*Configuration, error) {
	v, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	sec, ok := v.(*Configuration)
	if !ok {
		return nil, fmt.Errorf("section %q: %w", key, ErrNotSection)
	}

	return sec, nil
}

// Set stores value under the key path, creating missing sections.
// A map[string]any value is stored as a section.
//
// Errors:
//   - ErrNotSection when an intermediate path element holds a non-section value.
func (c *Configuration) Set(key string, value any) error {
	value, err := normalize(value)
	if err != nil {
		return err
	}

	head, rest := splitKey(key)
	if rest == "" {
		c.storage[head] = value
		return nil
	}

	cur, ok := c.storage[head]
	if !ok {
		sec := New()
		c.storage[head] = sec
		return sec.Set(rest, value)
	}
	sec, ok := cur.(*Configuration)
	if !ok {
		return fmt.Errorf("set %q: %w", key, ErrNotSection)
	}

	return sec.Set(rest, value)
}

// Delete removes the setting under the key path.
//
// Errors:
//   - ErrKeyNotFound / ErrNotSection as for Get.
func (c *Configuration) Delete(key string) error {
	head, rest := splitKey(key)
	v, ok := c.storage[head]
	if !ok {
		return fmt.Errorf("delete %q: %w", key, ErrKeyNotFound)
	}
	if rest == "" {
		delete(c.storage, head)
		return nil
	}
	sec, ok := v.(*Configuration)
	if !ok {
		return fmt.Errorf("delete %q: %w", key, ErrNotSection)
	}

	return sec.Delete(rest)
}

// Update sets every entry of m; keys may be dotted paths.
// Entries are applied in ascending key order and the first failure stops the update.
func (c *Configuration) Update(m map[string]any) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := c.Set(k, m[k]); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of top-level settings.
func (c *Configuration) Len() int { return len(c.storage) }

// Keys returns the top-level keys in ascending order.
func (c *Configuration) Keys() []string {
	return slices.Sorted(maps.Keys(c.storage))
}

// All yields top-level (key, value) pairs in ascending key order.
func (c *Configuration) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range c.Keys() {
			if !yield(k, c.storage[k]) {
				return
			}
		}
	}
}

// Clear removes every setting.
func (c *Configuration) Clear() { clear(c.storage) }

// Copy returns a shallow copy: top-level entries are copied, nested sections are shared.
func (c *Configuration) Copy() *Configuration {
	return &Configuration{storage: maps.Clone(c.storage)}
}

// clone returns a copy that shares no section with c.
func (c *Configuration) clone() *Configuration {
	out := New()
	for k, v := range c.storage {
		if sec, ok := v.(*Configuration); ok {
			v = sec.clone()
		}
		out.storage[k] = v
	}

	return out
}

// ToMap converts c into plain nested maps.
func (c *Configuration) ToMap() map[string]any {
	out := make(map[string]any, len(c.storage))
	for k, v := range c.storage {
		if sec, ok := v.(*Configuration); ok {
			v = sec.ToMap()
		}
		out[k] = v
	}

	return out
}

// String formats the settings as a nested map.
func (c *Configuration) String() string { return fmt.Sprint(c.ToMap()) }
