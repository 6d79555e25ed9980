// Package schema holds the expected-structure tables a thesis is checked
// against: the canonical ordered list of top-level sections and the required
// subsection markers per parent section. The built-in tables follow the
// common Latin American thesis template; institutions can override them with
// a YAML file without changing any validator behavior.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SubsectionRule names a parent section and the marker strings that must
// appear as substrings of its body.
type SubsectionRule struct {
	Section  string   `yaml:"section" json:"section"`
	Required []string `yaml:"required" json:"required"`
}

// Schema is the full expected-structure configuration. Both tables are
// ordered: validator output follows their order, so they are slices rather
// than maps.
type Schema struct {
	Structure   []string         `yaml:"structure" json:"structure"`
	Subsections []SubsectionRule `yaml:"subsections" json:"subsections"`
}

// Default returns the built-in thesis template. Callers get fresh slices, so
// mutating the result never affects other users.
func Default() Schema {
	return Schema{
		Structure: []string{
			"resumen",
			"índice",
			"introducción",
			"marco teórico",
			"metodología",
			"resultados",
			"conclusiones",
			"referencias bibliográficas",
			"anexos",
		},
		Subsections: []SubsectionRule{
			{
				Section: "marco teórico",
				Required: []string{
					"revisión de la literatura",
					"teorías relacionadas",
					"tabla de operacionalización de variables",
				},
			},
			{
				Section: "metodología",
				Required: []string{
					"diseño de investigación",
					"objetivos generales",
					"objetivos específicos",
				},
			},
		},
	}
}

// Load reads a schema override from a YAML file. Omitted tables fall back to
// the defaults, so a file may override just the structure list.
func Load(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("read schema file: %w", err)
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("parse schema file: %w", err)
	}

	def := Default()
	if len(s.Structure) == 0 {
		s.Structure = def.Structure
	}
	if len(s.Subsections) == 0 {
		s.Subsections = def.Subsections
	}

	if err := s.Validate(); err != nil {
		return Schema{}, fmt.Errorf("invalid schema file: %w", err)
	}
	return s, nil
}

// Validate rejects empty or duplicate section names and empty markers.
func (s Schema) Validate() error {
	if len(s.Structure) == 0 {
		return fmt.Errorf("structure list is empty")
	}
	seen := make(map[string]bool, len(s.Structure))
	for _, name := range s.Structure {
		if name == "" {
			return fmt.Errorf("structure list contains an empty section name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate section in structure list: %q", name)
		}
		seen[name] = true
	}
	for _, rule := range s.Subsections {
		if rule.Section == "" {
			return fmt.Errorf("subsection rule with empty parent section")
		}
		if len(rule.Required) == 0 {
			return fmt.Errorf("subsection rule for %q has no markers", rule.Section)
		}
		for _, marker := range rule.Required {
			if marker == "" {
				return fmt.Errorf("subsection rule for %q contains an empty marker", rule.Section)
			}
		}
	}
	return nil
}
