package domain

import "strings"

// FieldDelimiter opens and closes a field in marked text.
const FieldDelimiter = "__"

// Line is one selected line: its marked form, its plain form and the
// fields found in the marked form, in left-to-right order.
type Line struct {
	Marked string
	Plain  string
	Fields []string
}

// Field returns the value used for a sort on the given field index.
// Index EntireLine yields the plain line. Indices beyond the line's
// fields report false.
func (l Line) Field(index int) (string, bool) {
	if index == EntireLine {
		return l.Plain, true
	}
	if index < 0 || index > len(l.Fields) {
		return "", false
	}
	return l.Fields[index-1], true
}

// FieldCount returns the number of fields on this line.
func (l Line) FieldCount() int {
	return len(l.Fields)
}

// StripFieldMarkers removes field delimiters, approximating the plain
// text when only the marked text is available.
func StripFieldMarkers(marked string) string {
	return strings.ReplaceAll(marked, FieldDelimiter, "")
}
