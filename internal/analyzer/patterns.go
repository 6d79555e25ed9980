package analyzer

import (
	"regexp"
	"strings"
)

// Section names the validators look up. Segmented names are free-form
// sanitized heading text, but these canonical keys are what the checks
// compare against.
const (
	SectionIntroduction = "introducción"
	SectionMethodology  = "metodología"

	// TableSection is forced open whenever a line carries the column-header
	// signature of an operationalization-of-variables table, with or without
	// an explicit heading.
	TableSection = "operacionalización de variables"
)

// headingPatterns recognizes canonical thesis section titles within a
// lowercased line. Order is fixed: the first match wins. Diacritic variants
// are spelled out per pattern; matching never strips accents.
//
// Go's \b is ASCII-only and misbehaves next to accented letters, so word
// boundaries are written as explicit non-letter anchors.
var headingPatterns = []*regexp.Regexp{
	wordBounded(`resumen`),
	wordBounded(`índice`),
	wordBounded(`introducción`),
	wordBounded(`marco[^\n]*te[oó]rico`),
	wordBounded(`metodolog[ií]a`),
	wordBounded(`resultados`),
	wordBounded(`conclusiones`),
	wordBounded(`referencias`),
	wordBounded(`anexos`),
	wordBounded(`operacionalizaci[oó]n de variables`),
}

func wordBounded(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}])(?:` + expr + `)(?:[^\p{L}]|$)`)
}

// tableTokens must all occur within a single line, in any order, for the
// line to count as an operationalization table row. RE2 has no lookahead, so
// the any-order rule is a substring conjunction rather than one expression.
var tableTokens = []string{"variable", "dimensiones", "indicadores", "unidad de medida"}

func matchesHeading(line string) bool {
	for _, p := range headingPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func matchesTable(line string) bool {
	for _, tok := range tableTokens {
		if !strings.Contains(line, tok) {
			return false
		}
	}
	return true
}

// sanitizeRe matches every character outside the Spanish letter set. Each
// such character becomes a single space when a heading line is turned into a
// section name; runs are not collapsed.
var sanitizeRe = regexp.MustCompile(`[^a-zA-Záéíóúüñ]`)

func sanitizeHeading(line string) string {
	return sanitizeRe.ReplaceAllString(line, " ")
}
