package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("default schema should validate: %v", err)
	}
	if len(s.Structure) != 9 {
		t.Errorf("expected 9 top-level sections, got %d", len(s.Structure))
	}
	if s.Structure[0] != "resumen" || s.Structure[8] != "anexos" {
		t.Errorf("unexpected structure order: %v", s.Structure)
	}
	if len(s.Subsections) != 2 {
		t.Fatalf("expected 2 subsection rules, got %d", len(s.Subsections))
	}
	if s.Subsections[0].Section != "marco teórico" {
		t.Errorf("expected first rule for marco teórico, got %q", s.Subsections[0].Section)
	}
}

func TestDefault_ReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Structure[0] = "mutated"
	b := Default()
	if b.Structure[0] != "resumen" {
		t.Error("Default() slices should not be shared between calls")
	}
}

func TestLoad_OverridesStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	content := "structure:\n  - resumen\n  - introducción\n  - conclusiones\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Structure) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(s.Structure))
	}
	// Subsections fall back to the defaults when omitted.
	if len(s.Subsections) != 2 {
		t.Errorf("expected default subsections, got %d rules", len(s.Subsections))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	content := "structure:\n  - resumen\n  - resumen\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected duplicate section to be rejected")
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
	}{
		{"empty structure", Schema{}},
		{"empty section name", Schema{Structure: []string{""}}},
		{"rule without parent", Schema{
			Structure:   []string{"resumen"},
			Subsections: []SubsectionRule{{Required: []string{"x"}}},
		}},
		{"rule without markers", Schema{
			Structure:   []string{"resumen"},
			Subsections: []SubsectionRule{{Section: "resumen"}},
		}},
		{"empty marker", Schema{
			Structure:   []string{"resumen"},
			Subsections: []SubsectionRule{{Section: "resumen", Required: []string{""}}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.schema.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
