package utils

import (
	"strconv"
	"strings"
)

// ParseAmount parses a money field stored as free text into a float.
// The input is sanitized and thousands-separators are stripped first;
// anything that still fails to parse yields 0 rather than an error.
// Used only for dashboard aggregation and price sorting - stored values
// are never rewritten from the parsed form.
func ParseAmount(text string) float64 {
	s := Sanitize(text)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}
