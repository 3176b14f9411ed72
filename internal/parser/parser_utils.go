package parser

import (
	"errors"
	"strconv"
	"strings"

	"power-gadget/internal/models"
)

// Utility functions for common parsing tasks

// SummarySeparator splits a summary line into key and value
const SummarySeparator = " = "

const quote = '"'

// IsBlank checks if a line is a section delimiter
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsQuoted checks if a line uses the quoted dialect
func IsQuoted(line string) bool {
	return len(line) > 0 && line[0] == quote
}

// ParseFloat parses a decimal number. Out-of-range values are still numbers
// (±Inf), matching how the logging tool's readers treat them. Hexadecimal
// floats are rejected.
func ParseFloat(s string) (float64, error) {
	if isHex(s) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

// isHex reports whether s starts with a 0x or 0X prefix after an optional sign
func isHex(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// CoerceItem trims raw cell text and turns it into a number when it parses
// as one
func CoerceItem(raw string) models.Item {
	text := strings.TrimSpace(raw)
	if v, err := ParseFloat(text); err == nil {
		return models.NewNumberItem(v, text)
	}
	return models.NewTextItem(text)
}

// SplitSummary splits "<key> = <value>" at the first separator
func SplitSummary(text string) (key, value string, ok bool) {
	i := strings.Index(text, SummarySeparator)
	if i == -1 {
		return "", "", false
	}
	return text[:i], text[i+len(SummarySeparator):], true
}
