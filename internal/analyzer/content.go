package analyzer

import "strings"

// DefaultMinIntroWords is the introduction depth threshold used when no
// override is configured.
const DefaultMinIntroWords = 100

// CheckIntroduction flags an introduction with fewer than minWords
// whitespace-delimited tokens. An absent section counts as zero words.
func CheckIntroduction(secs *Sections, minWords int) []string {
	obs := []string{}
	if minWords <= 0 {
		minWords = DefaultMinIntroWords
	}
	if len(strings.Fields(secs.Get(SectionIntroduction))) < minWords {
		obs = append(obs, "The introduction section appears too short.")
	}
	return obs
}

// CheckMethodology verifies the methodology section describes a research
// design and states objectives. Either general or specific objectives alone
// satisfy the objectives requirement.
func CheckMethodology(secs *Sections) []string {
	obs := []string{}
	body := secs.Get(SectionMethodology)
	if !strings.Contains(body, "diseño de investigación") {
		obs = append(obs, "Missing description of research design.")
	}
	if !strings.Contains(body, "objetivos generales") && !strings.Contains(body, "objetivos específicos") {
		obs = append(obs, "Missing general or specific objectives.")
	}
	return obs
}
