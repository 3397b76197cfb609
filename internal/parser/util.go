package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Date patterns found in Indian bank statements.
var (
	// DD-MM-YYYY (SBI, ICICI)
	datePatternDash = regexp.MustCompile(`\b(\d{2})-(\d{2})-(\d{4})\b`)
	// DD/MM/YYYY (HDFC)
	datePatternSlash = regexp.MustCompile(`\b(\d{2})/(\d{2})/(\d{4})\b`)
)

// normalizeDate converts DD-MM-YYYY or DD/MM/YYYY into ISO YYYY-MM-DD.
// Inputs that match neither form are returned unchanged.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if m := datePatternDash.FindStringSubmatch(s); m != nil && len(m[0]) == len(s) {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	if m := datePatternSlash.FindStringSubmatch(s); m != nil && len(m[0]) == len(s) {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	return s
}

// parseAmount converts a string like "1,234.56" to a decimal.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

var multiSpacePattern = regexp.MustCompile(`\s+`)

// collapseWhitespace squashes runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(s, " "))
}

// normalizeLine cleans up common PDF extraction artifacts.
func normalizeLine(line string) string {
	line = strings.ReplaceAll(line, "\u200B", "")
	line = strings.ReplaceAll(line, "\u00A0", " ")
	return strings.TrimSpace(line)
}

// containsAny reports whether text contains any of the needles, case-sensitively.
func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
