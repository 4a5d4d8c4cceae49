package dictionary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a catalog from YAML of the form:
//
//	D:
//	  name: New Order - Single
//	  required: [35, 49, 56, 34, 52, 11, 21, 55, 54, 60, 40]
//	"0":
//	  name: Heartbeat
//
// The same invariants as New apply.
func FromYAML(data []byte) (*StaticCatalog, error) {
	var types map[string]MessageType
	if err := yaml.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(types)
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*StaticCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return FromYAML(data)
}
