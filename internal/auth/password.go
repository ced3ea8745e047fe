package auth

import (
	"errors"
	"strings"
	"unicode"
)

// passwordSymbols is the accepted special-character set for passwords.
const passwordSymbols = "!@#$%^&*."

// ErrWeakPassword is returned when a password does not meet the policy.
var ErrWeakPassword = errors.New("password must be at least 8 characters long and include an uppercase letter, a number, and a special character (e.g., !@#$%^&*.)")

// ValidatePassword enforces the sign-up password policy: minimum length 8,
// at least one uppercase letter, one digit, and one symbol from passwordSymbols.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasUpper || !hasDigit || !hasSymbol {
		return ErrWeakPassword
	}
	return nil
}
