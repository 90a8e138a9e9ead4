package config

import (
	"sort"
	"strings"
)

// Config is a flat string-to-string job configuration. A Config handed to a
// caller is treated as an immutable snapshot: merges produce a new instance
// and never touch their inputs.
type Config struct {
	values map[string]string
}

func New() *Config {
	return &Config{values: make(map[string]string)}
}

// Get returns the value for key, or the empty string when unset.
func (c *Config) Get(key string) string {
	return c.values[key]
}

// GetDefault returns the value for key, falling back to def when the key is
// unset or empty.
func (c *Config) GetDefault(key, def string) string {
	if v, ok := c.values[key]; ok && v != "" {
		return v
	}
	return def
}

func (c *Config) Set(key, value string) {
	c.values[key] = value
}

// Keys returns every configured key in sorted order.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the configuration.
func (c *Config) Clone() *Config {
	clone := New()
	for k, v := range c.values {
		clone.values[k] = v
	}
	return clone
}

// Overlay returns the union of base and the table properties, with the table
// properties taking precedence on key collision. The base configuration is
// never mutated; a nil or empty property map yields a plain copy.
func Overlay(base *Config, tblProps map[string]string) *Config {
	merged := base.Clone()
	for k, v := range tblProps {
		merged.values[k] = v
	}
	return merged
}

// StringCollection returns the comma-joined list stored under key as a
// slice, skipping empty segments.
func (c *Config) StringCollection(key string) []string {
	raw := c.values[key]
	if raw == "" {
		return nil
	}

	var vals []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			vals = append(vals, part)
		}
	}
	return vals
}

// SetStringCollection stores vals under key as a comma-joined list.
func (c *Config) SetStringCollection(key string, vals []string) {
	c.values[key] = strings.Join(vals, ",")
}
