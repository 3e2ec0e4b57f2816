package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dumps renders c as JSON with sorted keys; indented by two spaces unless compact.
func (c *Configuration) Dumps(compact bool) (string, error) {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(c.ToMap())
	} else {
		out, err = json.MarshalIndent(c.ToMap(), "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("config: dumps: %w", err)
	}

	return string(out), nil
}

// Loads parses JSON text into a new Configuration.
func Loads(text string) (*Configuration, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return nil, fmt.Errorf("config: loads: %w", err)
	}

	return FromMap(m)
}

// isYAML reports whether path names a YAML document.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}

// Save writes c to path: YAML for .yaml/.yml, indented JSON otherwise.
func (c *Configuration) Save(path string) error {
	var data []byte
	if isYAML(path) {
		out, err := yaml.Marshal(c.ToMap())
		if err != nil {
			return fmt.Errorf("config: save %s: %w", path, err)
		}
		data = out
	} else {
		text, err := c.Dumps(false)
		if err != nil {
			return err
		}
		data = []byte(text + "\n")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}

	return nil
}

// Load reads a Configuration from path: YAML for .yaml/.yml, JSON otherwise.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if !isYAML(path) {
		return Loads(string(data))
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	return FromMap(m)
}
