package services

import (
	"regexp"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// fieldToken matches a field: "__", text with no "__" inside, "__".
// Single underscores are allowed inside a field.
var fieldToken = regexp.MustCompile(`__[^_]*(?:_[^_]+)*__`)

// delimiterWidth is the length of the opening and closing delimiters.
var delimiterWidth = len(domain.FieldDelimiter)

// Extract pairs the lines of the marked and plain texts by position and
// finds the fields of each marked line. Pairing stops at the shorter
// text; the extraction records both line counts.
func Extract(plain, marked string) *domain.Extraction {
	markedLines := SplitLines(marked)
	plainLines := SplitLines(plain)

	n := min(len(markedLines), len(plainLines))

	extraction := &domain.Extraction{
		Lines:       make([]domain.Line, 0, n),
		MarkedLines: len(markedLines),
		PlainLines:  len(plainLines),
	}

	for i := 0; i < n; i++ {
		fields := ExtractFields(markedLines[i])
		extraction.Lines = append(extraction.Lines, domain.Line{
			Marked: markedLines[i],
			Plain:  plainLines[i],
			Fields: fields,
		})
		extraction.Count = max(extraction.Count, len(fields))
	}

	return extraction
}

// ExtractFields returns the payloads of the fields in one marked line,
// left to right. Unmatched delimiters are ignored.
func ExtractFields(line string) []string {
	tokens := fieldToken.FindAllString(line, -1)
	if len(tokens) == 0 {
		return nil
	}

	fields := make([]string, len(tokens))
	for i, token := range tokens {
		fields[i] = token[delimiterWidth : len(token)-delimiterWidth]
	}
	return fields
}
