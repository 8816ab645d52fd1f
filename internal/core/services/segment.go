package services

import (
	"regexp"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// A line break is "\n" or "\r\n"; a run of them separates lines.
var (
	leadingBreaks  = regexp.MustCompile(`^(?:\r?\n)+`)
	trailingBreaks = regexp.MustCompile(`(?:\r?\n)+$`)
	lineBreaks     = regexp.MustCompile(`(?:\r?\n)+`)
)

// Segment splits text into its layout and the interior between the
// leading and trailing runs of line breaks. Frontage + interior + Ending
// is the original text.
func Segment(text string) (domain.Layout, string) {
	var layout domain.Layout

	layout.Frontage = leadingBreaks.FindString(text)
	interior := text[len(layout.Frontage):]

	layout.Ending = trailingBreaks.FindString(interior)
	interior = interior[:len(interior)-len(layout.Ending)]

	layout.Newline = lineBreaks.FindString(interior)

	return layout, interior
}

// SplitLines returns the lines of text, ignoring leading and trailing
// blank lines and treating any run of line breaks as one separator.
// Text with no content yields a single empty line.
func SplitLines(text string) []string {
	_, interior := Segment(text)
	return lineBreaks.Split(interior, -1)
}
