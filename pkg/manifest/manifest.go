// Package manifest loads YAML declarations of presenter types so template
// files can be validated without loading any application code. A manifest
// mirrors what the capability registry computes at runtime: the method names
// a presenter exposes to templates and the inputs it requires.
package manifest

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/templatekit/go-curly/pkg/template"
)

// Manifest declares a project's presenter types and, optionally, globs of
// template files to lint against them.
type Manifest struct {
	Presenters []Presenter `yaml:"presenters"`
	Templates  []string    `yaml:"templates,omitempty"`
}

// Presenter declares one presenter type.
type Presenter struct {
	Name    string   `yaml:"name"`
	Methods []string `yaml:"methods"`
	Inputs  []string `yaml:"inputs,omitempty"`
}

// Parse decodes manifest YAML. Unknown fields, empty presenter names, and
// duplicate presenter names are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}

	seen := make(map[string]bool, len(m.Presenters))
	for i, p := range m.Presenters {
		if p.Name == "" {
			return nil, fmt.Errorf("manifest: presenter %d: name is required", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("manifest: presenter %q declared twice", p.Name)
		}
		seen[p.Name] = true
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(data)
}

// Find returns the declared presenter with the given name.
func (m *Manifest) Find(name string) (Presenter, bool) {
	for _, p := range m.Presenters {
		if p.Name == name {
			return p, true
		}
	}
	return Presenter{}, false
}

// Lint returns the references in source that p does not declare, in
// extraction order with repeats collapsed. An empty result means every
// reference would resolve against this presenter.
func (p Presenter) Lint(source string) []string {
	declared := make(map[string]bool, len(p.Methods))
	for _, name := range p.Methods {
		declared[name] = true
	}

	var unknown []string
	seen := make(map[string]bool)
	for _, ref := range template.References(source) {
		if declared[ref] || seen[ref] {
			continue
		}
		seen[ref] = true
		unknown = append(unknown, ref)
	}
	return unknown
}
