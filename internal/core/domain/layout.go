package domain

// Layout is the blank-line structure of a selection.
// Frontage + interior + Ending reproduces the original text.
type Layout struct {
	// Frontage is the run of line breaks before the first line.
	Frontage string

	// Newline is the first run of line breaks between lines. It is the
	// separator used when the sorted lines are joined.
	Newline string

	// Ending is the run of line breaks after the last line.
	Ending string
}

// Extraction is the paired, field-split form of a selection.
type Extraction struct {
	// Count is the largest number of fields on any line.
	Count int

	// Lines holds one entry per paired marked/plain line.
	Lines []Line

	// MarkedLines and PlainLines are the line counts before pairing.
	MarkedLines int
	PlainLines  int
}

// Mismatched returns true if pairing dropped lines from either side.
func (e *Extraction) Mismatched() bool {
	return e.MarkedLines != e.PlainLines
}
