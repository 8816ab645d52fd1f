package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const unknownDescription = "Unknown"

// EntireLine is the field index that selects the whole plain line.
const EntireLine = 0

// DataType defines how a field value is interpreted for comparison.
type DataType string

// Available data types.
const (
	// TypeText compares values as strings.
	TypeText DataType = "text"

	// TypeNumber compares values as floating-point numbers.
	TypeNumber DataType = "number"
)

// Recognised but unimplemented data types.
const (
	TypeDate     DataType = "date"
	TypeTime     DataType = "time"
	TypeCurrency DataType = "currency"
	TypeVersion  DataType = "version"
)

// AllDataTypes returns the implemented data types in display order.
func AllDataTypes() []DataType {
	return []DataType{TypeText, TypeNumber}
}

// IsValid returns true if the data type is implemented.
func (t DataType) IsValid() bool {
	return t == TypeText || t == TypeNumber
}

// String returns the string representation.
func (t DataType) String() string {
	return string(t)
}

// Description returns a human-readable label.
func (t DataType) Description() string {
	switch t {
	case TypeText:
		return "Text"
	case TypeNumber:
		return "Number"
	case TypeDate:
		return "Date"
	case TypeTime:
		return "Time"
	case TypeCurrency:
		return "Currency"
	case TypeVersion:
		return "Version"
	default:
		return unknownDescription
	}
}

// ParseDataType converts user input into a DataType.
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "t", "text":
		return TypeText, nil
	case "n", "num", "number":
		return TypeNumber, nil
	case "date", "time", "currency", "version":
		return "", fmt.Errorf("data type %q: %w", s, ErrNotImplemented)
	default:
		return "", fmt.Errorf("%w: unknown data type %q", ErrInvalidSortKey, s)
	}
}

// Direction is the sort order of a single key.
type Direction string

// Available directions.
const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// AllDirections returns the directions in display order.
func AllDirections() []Direction {
	return []Direction{Ascending, Descending}
}

// IsValid returns true if the direction is recognised.
func (d Direction) IsValid() bool {
	return d == Ascending || d == Descending
}

// String returns the string representation.
func (d Direction) String() string {
	return string(d)
}

// Description returns a human-readable label.
func (d Direction) Description() string {
	switch d {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return unknownDescription
	}
}

// ParseDirection converts user input into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a", "asc", "ascending":
		return Ascending, nil
	case "d", "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: unknown direction %q", ErrInvalidSortKey, s)
	}
}

// Locale is a BCP 47 language tag used for collation and number parsing.
// The zero value means no locale: ordinal comparison and plain numbers.
type Locale string

// LocaleNone selects ordinal comparison.
const LocaleNone Locale = ""

const localeNoneName = "none"

// IsNone returns true if no locale is selected.
func (l Locale) IsNone() bool {
	return l == LocaleNone
}

// String returns the tag, or "none".
func (l Locale) String() string {
	if l.IsNone() {
		return localeNoneName
	}
	return string(l)
}

// ParseLocale converts user input or an environment value into a Locale.
// POSIX forms such as "de_DE.UTF-8@euro" become "de-DE"; "none", "C" and
// "POSIX" select no locale. The tag itself is not validated here.
func ParseLocale(s string) Locale {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch strings.ToLower(s) {
	case "", localeNoneName, "c", "posix":
		return LocaleNone
	}
	return Locale(strings.ReplaceAll(s, "_", "-"))
}

// SortKey is one sort criterion. A slice of keys is ordered by precedence.
type SortKey struct {
	// Field is the 1-based field index, or EntireLine.
	Field int

	// Type selects text or numeric comparison.
	Type DataType

	// Locale selects collation and number format; LocaleNone for ordinal.
	Locale Locale

	// Direction is applied to this key only.
	Direction Direction
}

// NewSortKey creates an ascending text key on the given field.
func NewSortKey(field int) SortKey {
	return SortKey{Field: field, Type: TypeText, Direction: Ascending}
}

// IsEntireLine returns true if the key sorts on the whole plain line.
func (k SortKey) IsEntireLine() bool {
	return k.Field == EntireLine
}

// Validate checks the key's field, type and direction.
func (k SortKey) Validate() error {
	if k.Field < 0 {
		return fmt.Errorf("%w: negative field index %d", ErrInvalidSortKey, k.Field)
	}
	if !k.Type.IsValid() {
		return fmt.Errorf("%w: data type %q", ErrInvalidSortKey, k.Type)
	}
	if !k.Direction.IsValid() {
		return fmt.Errorf("%w: direction %q", ErrInvalidSortKey, k.Direction)
	}
	return nil
}

// String renders the key as FIELD:TYPE:ORDER:LOCALE, the syntax ParseSortKey reads.
func (k SortKey) String() string {
	field := "line"
	if !k.IsEntireLine() {
		field = strconv.Itoa(k.Field)
	}
	return strings.Join([]string{field, k.Type.String(), k.Direction.String(), k.Locale.String()}, ":")
}

// ParseSortKey reads FIELD[:TYPE[:ORDER[:LOCALE]]].
// FIELD is a positive integer, or "line" / "0" for the entire line.
// Omitted parts default to text, ascending and no locale.
func ParseSortKey(s string) (SortKey, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 4 {
		return SortKey{}, fmt.Errorf("%w: too many parts in %q", ErrInvalidSortKey, s)
	}

	key := NewSortKey(EntireLine)

	switch field := strings.ToLower(strings.TrimSpace(parts[0])); field {
	case "line", "entire", "0":
		key.Field = EntireLine
	case "":
		return SortKey{}, fmt.Errorf("%w: missing field in %q", ErrInvalidSortKey, s)
	default:
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return SortKey{}, fmt.Errorf("%w: field %q is not a number", ErrInvalidSortKey, parts[0])
		}
		key.Field = n
	}

	if len(parts) > 1 {
		t, err := ParseDataType(parts[1])
		if err != nil {
			return SortKey{}, err
		}
		key.Type = t
	}
	if len(parts) > 2 {
		d, err := ParseDirection(parts[2])
		if err != nil {
			return SortKey{}, err
		}
		key.Direction = d
	}
	if len(parts) > 3 {
		key.Locale = ParseLocale(parts[3])
	}

	return key, nil
}

// ParseSortKeys parses each spec in order.
func ParseSortKeys(specs []string) ([]SortKey, error) {
	keys := make([]SortKey, 0, len(specs))
	for _, spec := range specs {
		key, err := ParseSortKey(spec)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
