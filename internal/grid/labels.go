package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadReference is returned when a cell reference cannot be parsed.
var ErrBadReference = errors.New("bad cell reference")

// IndexToLetters converts a zero-based index to spreadsheet-style letters.
// Examples: 0 -> "A", 25 -> "Z", 26 -> "AA".
func IndexToLetters(n int) string {
	if n < 0 {
		return "?"
	}
	s := ""
	for n >= 0 {
		rem := n % 26
		s = string(rune('A'+rem)) + s
		n = n/26 - 1
	}
	return s
}

// LettersToIndex converts spreadsheet-style letters to a zero-based index.
// Examples: "A" -> 0, "Z" -> 25, "AA" -> 26.
func LettersToIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1, fmt.Errorf("%w: empty row letters", ErrBadReference)
	}
	s = strings.ToUpper(s)
	res := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return -1, fmt.Errorf("%w: invalid row char %q", ErrBadReference, c)
		}
		res = res*26 + int(c-'A') + 1
	}
	return res - 1, nil
}

// RowLabel is the header text for data row r: "A" for row 0.
func RowLabel(r int) string {
	return IndexToLetters(r)
}

// ColumnLabel is the header text for data column c: "1" for column 0.
func ColumnLabel(c int) string {
	return strconv.Itoa(c + 1)
}

// Ref returns the reference of a cell, e.g. "C7" for row 2, column 6.
func Ref(row, col int) string {
	return RowLabel(row) + ColumnLabel(col)
}

// ParseRef parses a reference like "C7" or "c7" into zero-based row and column.
func ParseRef(ref string) (row, col int, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, -1, fmt.Errorf("%w: empty", ErrBadReference)
	}
	// split letters prefix and digits suffix
	i := 0
	for i < len(ref) {
		c := ref[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			i++
			continue
		}
		break
	}
	if i == 0 {
		return -1, -1, fmt.Errorf("%w: missing row letters in %q", ErrBadReference, ref)
	}
	digits := strings.TrimSpace(ref[i:])
	if digits == "" {
		return -1, -1, fmt.Errorf("%w: missing column number in %q", ErrBadReference, ref)
	}
	row, err = LettersToIndex(ref[:i])
	if err != nil {
		return -1, -1, err
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return -1, -1, fmt.Errorf("%w: invalid column number in %q", ErrBadReference, ref)
	}
	return row, n - 1, nil
}
