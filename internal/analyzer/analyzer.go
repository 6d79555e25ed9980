// Package analyzer segments a thesis document's flat text into named
// sections and validates them against an expected structural template. The
// whole analysis is a pure function of the input text and the configured
// tables: it never errors, holds no state across calls, and is safe to run
// concurrently.
package analyzer

import "github.com/dmorales/tesiscan/internal/schema"

// Report groups observations the way the presentation layer displays them:
// content depth, methodology completeness, and structure (missing sections
// followed by missing subsections). Empty lists mean no defects; there are
// no severity levels.
type Report struct {
	Content     []string `json:"content"`
	Methodology []string `json:"methodology"`
	Structure   []string `json:"structure"`
}

// Total returns the number of observations across all three groups.
func (r Report) Total() int {
	return len(r.Content) + len(r.Methodology) + len(r.Structure)
}

// Analyzer runs the validators over one segmentation of a document.
type Analyzer struct {
	schema        schema.Schema
	minIntroWords int
}

// New builds an Analyzer for the given expected-structure tables. A
// non-positive minIntroWords selects the default threshold.
func New(s schema.Schema, minIntroWords int) *Analyzer {
	if minIntroWords <= 0 {
		minIntroWords = DefaultMinIntroWords
	}
	return &Analyzer{schema: s, minIntroWords: minIntroWords}
}

// Schema returns the tables this analyzer validates against.
func (a *Analyzer) Schema() schema.Schema {
	return a.schema
}

// Analyze segments the document once and runs all validators over the
// result. It accepts any UTF-8 string; degenerate input simply yields more
// observations.
func (a *Analyzer) Analyze(text string) Report {
	secs := Segment(text)
	structure := CheckStructure(secs, a.schema.Structure)
	structure = append(structure, CheckSubsections(secs, a.schema.Subsections)...)
	return Report{
		Content:     CheckIntroduction(secs, a.minIntroWords),
		Methodology: CheckMethodology(secs),
		Structure:   structure,
	}
}
