package utils

import (
	"regexp"
	"strings"
)

var phoneSeparators = strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "")

// NormalizePhone strips separators from a dialable number and keeps a leading +
func NormalizePhone(phone string) string {
	stripped := phoneSeparators.Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(stripped, "00") {
		stripped = "+" + stripped[2:]
	}
	return stripped
}

var dialable = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// IsDialable reports whether phone looks like a number Twilio can call
func IsDialable(phone string) bool {
	return dialable.MatchString(NormalizePhone(phone))
}
