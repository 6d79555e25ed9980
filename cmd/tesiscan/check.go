package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmorales/tesiscan/internal/analyzer"
	"github.com/dmorales/tesiscan/internal/extractor"
	"github.com/dmorales/tesiscan/internal/schema"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var jsonOut bool
	var schemaFile string
	var minIntroWords int
	var ocr bool
	var ocrLang string

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Analyze thesis documents and print structural observations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, err := loadSchema(schemaFile)
			if err != nil {
				return err
			}
			an := analyzer.New(sch, minIntroWords)
			opts := extractor.Options{
				PDFFallbackPdftotext: true,
				OCREnabled:           ocr,
				OCRLang:              ocrLang,
			}

			reports := make(map[string]analyzer.Report, len(args))
			total := 0
			for _, path := range args {
				report, err := checkFile(an, opts, path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				reports[path] = report
				total += report.Total()
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return err
				}
			} else {
				for _, path := range args {
					printReport(cmd, path, reports[path])
				}
			}

			if total > 0 {
				cmd.SilenceUsage = true
				return fmt.Errorf("%d observation(s) found", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit reports as JSON")
	cmd.Flags().StringVar(&schemaFile, "schema", "", "YAML file overriding the expected structure")
	cmd.Flags().IntVar(&minIntroWords, "min-intro-words", analyzer.DefaultMinIntroWords, "minimum word count for the introduction")
	cmd.Flags().BoolVar(&ocr, "ocr", false, "enable OCR for images and scanned PDFs (requires tesseract)")
	cmd.Flags().StringVar(&ocrLang, "ocr-lang", "spa", "tesseract language for OCR")
	return cmd
}

func checkFile(an *analyzer.Analyzer, opts extractor.Options, path string) (analyzer.Report, error) {
	ex, err := extractor.ForFile(path, opts)
	if err != nil {
		return analyzer.Report{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return analyzer.Report{}, err
	}
	defer f.Close()

	text, err := ex.Extract(f, path)
	if err != nil {
		return analyzer.Report{}, err
	}
	return an.Analyze(text), nil
}

func printReport(cmd *cobra.Command, path string, report analyzer.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s:\n", path)
	if report.Total() == 0 {
		fmt.Fprintln(out, "  no observations")
		return
	}
	printGroup(cmd, "structure", report.Structure)
	printGroup(cmd, "content", report.Content)
	printGroup(cmd, "methodology", report.Methodology)
}

func printGroup(cmd *cobra.Command, label string, obs []string) {
	if len(obs) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s:\n", label)
	for _, o := range obs {
		fmt.Fprintf(out, "    - %s\n", o)
	}
}
