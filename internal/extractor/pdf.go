// Package extractor turns statement PDFs into plain text pages. The parsing
// pipeline itself only consumes text; this is the upstream step for callers
// that start from a PDF file.
package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a PDF file and returns the text content of each page,
// with line breaks preserved in row order. Line breaks matter downstream:
// the ICICI grammar is line-oriented.
func ExtractText(filePath string) ([]string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i, err)
		}

		var sb strings.Builder
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
		pages = append(pages, sb.String())
	}

	if !IsReadableText(pages) {
		return nil, fmt.Errorf("no readable text could be extracted; the PDF may be image-based or use custom font encodings")
	}
	return pages, nil
}

// IsReadableText checks that pages contain enough text and that it is
// actually readable rather than binary garbage from identity-encoded fonts.
// Requires >50 chars and >60% plain ASCII characters.
func IsReadableText(pages []string) bool {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(".,-/:;()'\"%&@#!?+=*₹", r) {
				readable++
			}
		}
	}
	if total <= 50 {
		return false
	}
	return float64(readable)/float64(total) > 0.6
}
