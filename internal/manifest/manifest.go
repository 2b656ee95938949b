// Package manifest loads and validates the schema manifests consumed by the
// namedtuplegen command. This package is internal and not part of the public API.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// File is one manifest: a Go package with the named tuple schemas to emit.
type File struct {
	Package string   `yaml:"package" json:"package"`
	Imports []string `yaml:"imports,omitempty" json:"imports,omitempty"`
	Schemas []Schema `yaml:"schemas" json:"schemas"`
}

// Schema declares one tuple type. Field order is storage order.
type Schema struct {
	Name   string  `yaml:"name" json:"name"`
	Doc    string  `yaml:"doc,omitempty" json:"doc,omitempty"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// Field declares one key with its Go value type. Name optionally overrides
// the Go identifier derived from the key.
type Field struct {
	Key  string `yaml:"key" json:"key"`
	Type string `yaml:"type" json:"type"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Format selects the manifest syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFor picks the format from the file extension; anything but .json is
// read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads and parses the manifest at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	f, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a manifest. Unknown fields are rejected in both formats.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse json manifest: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse yaml manifest: %w", err)
		}
	}
	return &f, nil
}
