package domain

import (
	"net/mail"
	"strings"
)

// NormalizeQuery prepares a free-text search query:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved; matching is case-insensitive in the store.
func NormalizeQuery(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// EscapeLike escapes the LIKE metacharacters %, _ and the escape character
// itself so the text matches literally inside a LIKE/ILIKE pattern.
func EscapeLike(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '\\', '%', '_':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsPattern returns an ILIKE pattern matching text anywhere.
func ContainsPattern(text string) string {
	return "%" + EscapeLike(text) + "%"
}

// TrimOrNil trims whitespace. Returns nil if the input is nil or the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// IsValidEmail reports whether s is a bare RFC 5322 address such as
// "ann@example.com". Display names and angle brackets are rejected.
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s, ".")
}
