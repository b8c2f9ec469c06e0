// Package validation holds the pure field predicates behind the portal's
// registration and login forms. All exported predicates are total: any string
// input yields a boolean, never an error. The strict legacy contract lives in
// strict.go and is deliberately kept separate.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRe   = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ' -]{2,}$`)
	postalRe = regexp.MustCompile(`^[0-9]{5}$`)
)

// IsValidEmail reports whether s looks like an email address: something
// before an @, something after, and a dot-separated domain part.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// IsValidName accepts names of two or more letters, including accented
// letters, apostrophes, hyphens and spaces. Single letters and anything
// containing digits are rejected.
func IsValidName(s string) bool {
	return nameRe.MatchString(strings.TrimSpace(s))
}

// IsValidSurname applies the same alphabet rule as IsValidName.
func IsValidSurname(s string) bool {
	return nameRe.MatchString(strings.TrimSpace(s))
}

// IsValidCity accepts any value longer than one character after trimming.
func IsValidCity(s string) bool {
	return len(strings.TrimSpace(s)) > 1
}

// IsValidCityStrict additionally restricts the city to the name alphabet.
func IsValidCityStrict(s string) bool {
	t := strings.TrimSpace(s)
	return len(t) > 1 && nameRe.MatchString(t)
}

// IsValidFrenchPostalCode accepts exactly five ASCII digits. This is the
// check wired to the registration flow.
func IsValidFrenchPostalCode(s string) bool {
	return postalRe.MatchString(s)
}

// IsValidPostalCodeInRange is the stricter historical check: five digits
// whose numeric value falls in [1000, 99999], rejecting 00000 through 00999.
func IsValidPostalCodeInRange(s string) bool {
	if !postalRe.MatchString(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 1000 && n <= 99999
}

// IsValidPassword requires at least six characters.
func IsValidPassword(s string) bool {
	return len(s) >= 6
}

// IsNotEmpty reports whether s contains anything besides whitespace.
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
