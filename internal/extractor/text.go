package extractor

import (
	"bufio"
	"io"
	"strings"
)

// TextExtractor handles plain text files.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
