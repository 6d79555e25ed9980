package extractor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// OCRExtractor reads scanned page images (PNG, JPEG, TIFF) with Tesseract.
// Requires the tesseract engine and the configured language pack to be
// installed on the host.
type OCRExtractor struct {
	Lang string
}

func (e *OCRExtractor) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return ocrImageBytes(data, e.Lang)
}

func ocrImageBytes(data []byte, lang string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			return "", fmt.Errorf("set ocr language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("set ocr image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ocrPDF rasterizes a PDF with pdftoppm and runs OCR over each page image in
// order.
func ocrPDF(path, lang string) (string, error) {
	dir, err := os.MkdirTemp("", "tesiscan-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	cmd := exec.Command("pdftoppm", "-png", "-r", "200", path, filepath.Join(dir, "page"))
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftoppm: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read temp dir: %w", err)
	}
	var pages []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".png" {
			pages = append(pages, entry.Name())
		}
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(pages)

	var out strings.Builder
	for _, name := range pages {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("read page image: %w", err)
		}
		text, err := ocrImageBytes(data, lang)
		if err != nil {
			return "", fmt.Errorf("ocr page %s: %w", name, err)
		}
		if text == "" {
			continue
		}
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		out.WriteString(text)
	}
	return out.String(), nil
}
