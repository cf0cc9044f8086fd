package sanitizer

import (
	"strings"
	"unicode"
)

// Apply runs transforms over value in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable pipeline from transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

// NormalizeEmail trims and lowercases an address. The local part is
// otherwise left untouched.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeWhitespace collapses runs of whitespace into a single space and
// trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveControlChars drops control characters, newlines and tabs included.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Name is the pipeline applied to personal names and short free-text fields.
var Name = Compose(NormalizeWhitespace, RemoveControlChars)

// MaskEmail keeps the first character of the local part and the domain,
// e.g. "j***@example.com". Inputs without a single "@" are fully masked.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return "***"
	}
	first := []rune(local)[0]
	return string(first) + "***@" + domain
}
