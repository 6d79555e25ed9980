package analyzer

import (
	"fmt"
	"unicode"
)

// CheckStructure emits one observation per expected top-level section that is
// absent from the segmented document, in expected-list order. Sections
// present but unexpected never produce observations.
func CheckStructure(secs *Sections, expected []string) []string {
	obs := []string{}
	for _, name := range expected {
		if !secs.Has(name) {
			obs = append(obs, fmt.Sprintf("Missing section: %s.", capitalize(name)))
		}
	}
	return obs
}

// capitalize upper-cases the first rune. Section names are already
// lowercase, so this matches title-style display.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
