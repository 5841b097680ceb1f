package utils

import "strings"

// MaxFilenameLength is the longest base name SanitizeFilename will produce
const MaxFilenameLength = 80

// Sanitize strips every character outside the storage allow-list from the
// given text. It is applied to every field before it is written to the
// workbook and to every user-supplied search string before use.
// Allowed: letters, digits, space, '.', ',', '!', '-', '@', ':', '/'.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isAllowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isAllowed reports whether r survives Sanitize
func isAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '.', ',', '!', '-', '@', ':', '/':
		return true
	}
	return false
}

// SanitizeFilename produces a filesystem-safe base name. It keeps letters,
// digits, '.', '-' and spaces, collapses whitespace runs into a single '-',
// trims leading/trailing '-', and truncates to MaxFilenameLength.
//
// This is intentionally NOT built on Sanitize: filenames rely on '-' as a
// separator and must not pick up characters like ':' or '/' that the
// general allow-list permits.
func SanitizeFilename(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == ' ':
			b.WriteRune(r)
		}
	}

	// Collapse whitespace runs into single hyphens.
	name := strings.Join(strings.Fields(b.String()), "-")
	name = strings.Trim(name, "-")

	if len(name) > MaxFilenameLength {
		name = name[:MaxFilenameLength]
	}
	return name
}
