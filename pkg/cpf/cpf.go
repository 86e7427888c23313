// Package cpf validates and formats CPF numbers (the Brazilian individual
// taxpayer registry, 11 digits where the last two are check digits).
package cpf

import "strings"

// Valid reports whether s is a structurally valid CPF. Formatting
// punctuation (dots, dash) is stripped before checking. Malformed input
// never panics, it simply yields false.
func Valid(s string) bool {
	digits := stripNonDigits(s)
	if len(digits) != 11 {
		return false
	}

	// Sequences like "00000000000" satisfy the checksum but are not
	// assignable CPFs.
	if allSame(digits) {
		return false
	}

	if checkDigit(digits, 9, 11) != int(digits[9]-'0') {
		return false
	}
	if checkDigit(digits, 10, 12) != int(digits[10]-'0') {
		return false
	}
	return true
}

// Format progressively masks a digit stream into the canonical
// 000.000.000-00 display form. Non-digits are stripped first and anything
// past the 11th digit is dropped, so the function is idempotent and safe to
// apply on every keystroke.
func Format(s string) string {
	digits := stripNonDigits(s)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	var b strings.Builder
	b.Grow(14)
	for i := 0; i < len(digits); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// checkDigit computes the check digit over digits[0:n] with starting weight
// weight-1 down to weight-n. A remainder of 10 or 11 collapses to 0.
func checkDigit(digits string, n, weight int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (weight - 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		rest = 0
	}
	return rest
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
