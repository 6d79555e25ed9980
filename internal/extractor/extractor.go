// Package extractor turns uploaded documents into the flat UTF-8 text the
// analyzer consumes: one string, headings on their own lines, pages
// concatenated in reading order. Binary-format handling lives entirely here;
// the analyzer never sees anything but text.
package extractor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extractor converts raw document bytes into flat text.
type Extractor interface {
	Extract(r io.Reader, filename string) (string, error)
}

// Options configures extraction fallbacks shared across formats.
type Options struct {
	// PDFFallbackPdftotext shells out to pdftotext when the Go PDF library
	// cannot read a file.
	PDFFallbackPdftotext bool
	// OCREnabled turns on Tesseract for image uploads and for PDFs that
	// yield no text (scanned documents).
	OCREnabled bool
	// OCRLang is the Tesseract language, e.g. "spa".
	OCRLang string
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
	".png":      true,
	".jpg":      true,
	".jpeg":     true,
	".tif":      true,
	".tiff":     true,
}

// ForFile returns the extractor for a filename.
func ForFile(filename string, opts Options) (Extractor, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{
			FallbackPdftotext: opts.PDFFallbackPdftotext,
			OCREnabled:        opts.OCREnabled,
			OCRLang:           opts.OCRLang,
		}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		if !opts.OCREnabled {
			return nil, fmt.Errorf("ocr is disabled, cannot read %s", ext)
		}
		return &OCRExtractor{Lang: opts.OCRLang}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}
