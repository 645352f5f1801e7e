package services

import (
	"regexp"
	"strings"
)

const uzCountryCode = "998"

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizePhone reduces an Uzbek phone number to "+998XXXXXXXXX". It accepts
// any punctuation, a bare 9-digit subscriber number, or the full 12 digits with
// the country code. ok is false for anything else.
func NormalizePhone(raw string) (phone string, ok bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case len(digits) == 9:
		digits = uzCountryCode + digits
	case len(digits) == 12 && strings.HasPrefix(digits, uzCountryCode):
	default:
		return "", false
	}
	return "+" + digits, true
}

func validEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
