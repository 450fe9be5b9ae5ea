package validation

import (
	"regexp"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Dutch postcode: four digits then two letters, optional space ("1234 AB").
var postalCodeRe = regexp.MustCompile(`^[1-9][0-9]{3}\s?[A-Za-z]{2}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPassword:
// - at least 8 characters
// - contains at least one letter
// - contains at least one number
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func IsValidPostalCode(code string) bool {
	return postalCodeRe.MatchString(code)
}
