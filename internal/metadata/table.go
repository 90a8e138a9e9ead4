package metadata

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Format describes the serialization format recorded with a table,
// including its own nested property map.
type Format struct {
	Name       string            `yaml:"name"`
	Parameters map[string]string `yaml:"parameters"`
}

// Column is a stored column definition. Precision and scale only apply to
// decimal columns.
type Column struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Precision int    `yaml:"precision,omitempty"`
	Scale     int    `yaml:"scale,omitempty"`
}

// Table is the persisted table record the bridge reads metadata from.
type Table struct {
	Name       string            `yaml:"name"`
	Parameters map[string]string `yaml:"parameters"`
	Format     Format            `yaml:"format"`
	Columns    []Column          `yaml:"columns"`
}

// Properties returns the table parameters combined with the serialization
// format parameters, the format parameters winning on collision. The map is
// rebuilt from the stored record on every call.
func Properties(t *Table) map[string]string {
	props := make(map[string]string, len(t.Parameters)+len(t.Format.Parameters))
	for k, v := range t.Parameters {
		props[k] = v
	}
	for k, v := range t.Format.Parameters {
		props[k] = v
	}
	return props
}

// LoadTable reads a YAML table descriptor.
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table descriptor: %w", err)
	}

	var tbl Table
	if err := yaml.Unmarshal(raw, &tbl); err != nil {
		return nil, fmt.Errorf("failed to parse table descriptor %s: %w", path, err)
	}
	return &tbl, nil
}
