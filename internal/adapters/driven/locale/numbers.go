package locale

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// numberFormat describes how a locale writes numbers.
type numberFormat struct {
	decimal string
	group   string
	// digits maps the locale's digit glyphs to ASCII. Nil for ASCII digits.
	digits map[rune]rune
}

var plainFormat = &numberFormat{decimal: ".", group: ","}

// discoverFormat formats sample numbers with the locale's printer and
// reads back the separators and digit glyphs it used.
func discoverFormat(tag language.Tag) *numberFormat {
	p := message.NewPrinter(tag)
	f := &numberFormat{decimal: ".", group: ","}

	if sep := nonDigits(p.Sprintf("%.1f", 0.5)); sep != "" {
		f.decimal = sep
	}
	if sep := nonDigits(p.Sprintf("%d", 1234567)); sep != "" && sep != f.decimal {
		f.group = sep
	}

	glyphs := []rune(digitsOnly(p.Sprintf("%d", 9876543210)))
	if len(glyphs) == 10 && string(glyphs) != "9876543210" {
		f.digits = make(map[rune]rune, 10)
		for i, g := range glyphs {
			f.digits[g] = rune('9' - i)
		}
	}

	return f
}

// parse reads s written in this format. Surrounding whitespace is ignored.
func (f *numberFormat) parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\u2212", "-")

	if f.digits != nil {
		s = strings.Map(func(r rune) rune {
			if d, ok := f.digits[r]; ok {
				return d
			}
			return r
		}, s)
	}

	if isSpaceSeparator(f.group) {
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	} else {
		s = strings.ReplaceAll(s, f.group, "")
	}

	if f.decimal != "." {
		s = strings.Replace(s, f.decimal, ".", 1)
	}

	return domain.ParseDecimal(s)
}

func isSpaceSeparator(sep string) bool {
	for _, r := range sep {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return sep != ""
}

// nonDigits returns the first run of non-digit runes in s.
func nonDigits(s string) string {
	start := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if start < 0 {
		return ""
	}
	rest := s[start:]
	end := strings.IndexFunc(rest, unicode.IsDigit)
	if end < 0 {
		return rest
	}
	return rest[:end]
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
