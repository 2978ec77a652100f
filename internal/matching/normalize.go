// Package matching implements the similarity engine used to flag duplicate
// event-client records. All scoring is deterministic and side-effect free:
// no I/O, no clocks, no randomness. Functions are total over their inputs
// and degrade gracefully on malformed values instead of returning errors.
package matching

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// NormalizeEmail normalizes an email address by lowercasing and trimming whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone normalizes a phone number toward E.164 so formatting
// variants of the same number compare equal. It strips all non-digit
// characters, assumes NANP for bare 10-digit numbers, and passes input
// with too few digits through unchanged. Idempotent.
func NormalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")

	switch {
	case len(digits) == 10:
		return "+1" + digits
	case len(digits) == 11 && digits[0] == '1':
		return "+" + digits
	case len(digits) > 7:
		return "+" + digits
	}

	// Too few digits to be a dialable number; leave it as typed.
	return phone
}
