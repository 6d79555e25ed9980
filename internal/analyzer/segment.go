package analyzer

import "strings"

// Sections maps normalized section names to accumulated body text, keeping
// the order sections first appeared in the document. It is built once per
// analysis and only read afterwards.
type Sections struct {
	names  []string
	bodies map[string]string
}

func newSections() *Sections {
	return &Sections{bodies: make(map[string]string)}
}

func (s *Sections) put(name, body string) {
	if _, ok := s.bodies[name]; !ok {
		s.names = append(s.names, name)
	}
	s.bodies[name] = body
}

// Get returns the body for name, or the empty string when absent.
func (s *Sections) Get(name string) string {
	return s.bodies[name]
}

// Has reports whether a section with the given name was segmented.
func (s *Sections) Has(name string) bool {
	_, ok := s.bodies[name]
	return ok
}

// Names returns section names in document order.
func (s *Sections) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of distinct sections.
func (s *Sections) Len() int {
	return len(s.names)
}

// Segment splits a flat document text into named sections by scanning lines
// for heading and table signatures. Lines are trimmed and lowercased before
// matching; lines before the first recognized heading are discarded.
//
// Two behaviors here are load-bearing and must not be "fixed":
//
//   - The table trigger is evaluated after the heading patterns and
//     reassigns the current section WITHOUT flushing the open buffer, so
//     content accumulated under the previous section migrates into the table
//     section. On a line matching both, the table assignment wins.
//   - A heading re-opening an already-seen name overwrites the earlier body
//     at its original position. Documents with a table of contents listing
//     the section titles can mis-segment this way; callers should treat the
//     result as a heuristic, not ground truth.
func Segment(text string) *Sections {
	secs := newSections()
	var current string
	var content []string

	flush := func() {
		secs.put(current, strings.TrimSpace(strings.Join(content, "\n")))
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.ToLower(strings.TrimSpace(raw))
		matched := false

		if matchesHeading(line) {
			if current != "" {
				flush()
			}
			current = sanitizeHeading(line)
			content = nil
			matched = true
		}

		if matchesTable(line) {
			current = TableSection
			content = append(content, line)
			matched = true
		}

		if !matched && current != "" {
			content = append(content, line)
		}
	}

	if current != "" {
		flush()
	}
	return secs
}
