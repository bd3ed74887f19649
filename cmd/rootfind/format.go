package main

import (
	"fmt"
	"strings"

	"rootfind/internal/output"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// selectedFormat maps the --json flag to a format.
func selectedFormat() OutputFormat {
	if jsonFlag {
		return FormatJSON
	}
	return FormatHuman
}

// FormatReport renders a per-file report in the requested format.
func FormatReport(report output.Report, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := output.EncodeIndented(report, "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode report: %w", err)
		}
		return string(data), nil
	case FormatHuman:
		return formatReportHuman(report), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatRoots renders a roots report in the requested format.
func FormatRoots(report output.RootsReport, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := output.EncodeIndented(report, "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode report: %w", err)
		}
		return string(data), nil
	case FormatHuman:
		return formatRootsHuman(report), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatReportHuman(report output.Report) string {
	var b strings.Builder

	excluded := 0
	for _, rec := range report.Files {
		if rec.Excluded {
			excluded++
			b.WriteString(fmt.Sprintf("%s\t[excluded]\n", rec.File))
			continue
		}
		b.WriteString(fmt.Sprintf("%s\t%s\n", rec.File, rec.Root))
	}

	b.WriteString(fmt.Sprintf("\n%d files", report.Count))
	if excluded > 0 {
		b.WriteString(fmt.Sprintf(", %d excluded", excluded))
	}
	b.WriteString("\n")
	return b.String()
}

func formatRootsHuman(report output.RootsReport) string {
	var b strings.Builder

	for _, root := range report.Roots {
		b.WriteString(root + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%d roots\n", report.Count))
	return b.String()
}
