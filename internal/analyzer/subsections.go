package analyzer

import (
	"fmt"
	"strings"

	"github.com/dmorales/tesiscan/internal/schema"
)

// TableMarker is the subsection requirement that an independently detected
// operationalization table satisfies: authors often render the table without
// a heading, so its presence as its own section counts.
const TableMarker = "tabla de operacionalización de variables"

// CheckSubsections verifies that each required subsection marker occurs as a
// substring of its parent section's body. Bodies are already lowercased by
// segmentation, so the comparison is a plain substring test. A missing
// parent behaves as an empty body: every marker for it is reported.
func CheckSubsections(secs *Sections, rules []schema.SubsectionRule) []string {
	obs := []string{}
	for _, rule := range rules {
		body := secs.Get(rule.Section)
		for _, marker := range rule.Required {
			if marker == TableMarker && secs.Has(TableSection) {
				continue
			}
			if !strings.Contains(body, marker) {
				obs = append(obs, fmt.Sprintf("Missing subsection: '%s' in section %s.", marker, capitalize(rule.Section)))
			}
		}
	}
	return obs
}
