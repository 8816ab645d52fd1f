package services

import (
	"strings"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// Reassemble joins the marked text of the lines with the layout's
// separator and restores the leading and trailing blank lines.
func Reassemble(layout domain.Layout, lines []KeyedLine) string {
	marked := make([]string, len(lines))
	for i := range lines {
		marked[i] = lines[i].Line.Marked
	}

	var b strings.Builder
	b.WriteString(layout.Frontage)
	b.WriteString(strings.Join(marked, layout.Newline))
	b.WriteString(layout.Ending)
	return b.String()
}
