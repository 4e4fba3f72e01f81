// Package phone normalizes and formats Russian (+7) phone numbers.
//
// The canonical form chosen for storage and comparison is "+7" followed by
// exactly ten subscriber digits, no separators: +79161234567. The domestic
// trunk prefix 8 is folded into the country code, so "8 916 123 45 67" and
// "9161234567" normalize identically.
package phone

import (
	"errors"
	"strings"
)

// CountryCode is the single supported country calling code.
const CountryCode = "7"

// trunkDigit is the domestic prefix dialled in place of the country code.
const trunkDigit = '8'

// subscriberDigits is the fixed length of the national subscriber number.
const subscriberDigits = 10

// Sentinel rejections returned by Normalize. Normalization never guesses:
// anything that is not exactly a ten-digit subscriber number, optionally led
// by the country or trunk digit, is rejected.
var (
	ErrTooFewDigits  = errors.New("phone: fewer than 10 subscriber digits")
	ErrTooManyDigits = errors.New("phone: too many digits")
	ErrCountryCode   = errors.New("phone: unsupported country code")
)

// Normalize converts raw keystrokes into the canonical form. All non-digit
// characters are stripped first. A bare ten-digit sequence lacks the country
// digit and gets it prefixed; an eleven-digit sequence must start with the
// country digit 7 or the trunk digit 8. Normalize is a fixed point on its
// own output.
func Normalize(raw string) (string, error) {
	digits := digitsOf(raw)
	switch {
	case len(digits) == subscriberDigits:
		return "+" + CountryCode + digits, nil
	case len(digits) == subscriberDigits+1:
		switch digits[0] {
		case CountryCode[0]:
			return "+" + digits, nil
		case trunkDigit:
			return "+" + CountryCode + digits[1:], nil
		default:
			return "", ErrCountryCode
		}
	case len(digits) < subscriberDigits:
		return "", ErrTooFewDigits
	default:
		return "", ErrTooManyDigits
	}
}

// Format progressively formats raw input as +7 (XXX) XXX-XX-XX, mirroring
// what the visitor sees while typing: separators appear as digits accumulate
// and input is capped at eleven digits in total. Digits beyond the cap are
// ignored, the way an input mask stops accepting them. For any input that
// Normalize accepts, Normalize(Format(raw)) equals Normalize(raw).
func Format(raw string) string {
	digits := digitsOf(raw)
	if digits == "" {
		return ""
	}

	// A leading 7 or 8 is the country/trunk digit only past ten digits;
	// a bare ten-digit sequence is all subscriber digits, the same length
	// rule Normalize applies. Numbers like 800 123 45 67 keep their 8.
	rest := digits
	if len(digits) > subscriberDigits && (digits[0] == CountryCode[0] || digits[0] == trunkDigit) {
		rest = digits[1:]
	}
	if len(rest) > subscriberDigits {
		rest = rest[:subscriberDigits]
	}

	var b strings.Builder
	b.WriteString("+")
	b.WriteString(CountryCode)
	if len(rest) > 0 {
		b.WriteString(" (")
		b.WriteString(rest[:min(len(rest), 3)])
	}
	if len(rest) > 3 {
		b.WriteString(") ")
		b.WriteString(rest[3:min(len(rest), 6)])
	}
	if len(rest) > 6 {
		b.WriteString("-")
		b.WriteString(rest[6:min(len(rest), 8)])
	}
	if len(rest) > 8 {
		b.WriteString("-")
		b.WriteString(rest[8:])
	}
	return b.String()
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
