package domain

import (
	"strconv"
	"strings"
)

// ParseDecimal reads a decimal number such as "-1.5e3", "inf" or "1_000".
// Underscores are allowed only singly between digits. Hexadecimal and
// other prefixed forms are rejected.
func ParseDecimal(s string) (float64, error) {
	body := strings.TrimLeft(s, "+-")
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return 0, syntaxError(s)
	}

	if strings.Contains(body, "_") {
		var b strings.Builder
		for i := 0; i < len(body); i++ {
			c := body[i]
			if c != '_' {
				b.WriteByte(c)
				continue
			}
			if i == 0 || i == len(body)-1 || !isDigit(body[i-1]) || !isDigit(body[i+1]) {
				return 0, syntaxError(s)
			}
		}
		s = s[:len(s)-len(body)] + b.String()
	}

	return strconv.ParseFloat(s, 64)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func syntaxError(s string) error {
	return &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
}
