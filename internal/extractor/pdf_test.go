package extractor

import (
	"strings"
	"testing"
)

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		expected bool
	}{
		{
			name:     "plain statement text",
			pages:    []string{"HDFC BANK\n15/01/2024 UPI/PAYTM/ZOMATO/12345 340.00 Dr\nclosing balance 1,234.56"},
			expected: true,
		},
		{
			name:     "too short",
			pages:    []string{"HDFC"},
			expected: false,
		},
		{
			name:     "binary garbage from identity-encoded fonts",
			pages:    []string{strings.Repeat("\x01\x02�\x7F", 50)},
			expected: false,
		},
		{
			name:     "empty",
			pages:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReadableText(tt.pages); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	if _, err := ExtractText("does-not-exist.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}
