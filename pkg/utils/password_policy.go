package utils

import (
	"fmt"
	"strings"
	"unicode"
)

const minPasswordLength = 8

// Short list of passwords seen at the top of every breach corpus. Enough to
// stop the obvious choices; length and similarity rules carry the rest.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"letmein1":    {},
	"welcome1":    {},
	"sunshine":    {},
	"football":    {},
	"baseball":    {},
	"superman":    {},
	"trustno1":    {},
	"dragon123":   {},
	"monkey123":   {},
	"abc12345":    {},
}

// ValidatePassword applies the account password policy and returns one
// message per violated rule. An empty slice means the password is acceptable.
func ValidatePassword(password, username string) []string {
	var violations []string

	if len(password) < minPasswordLength {
		violations = append(violations,
			fmt.Sprintf("This password is too short. It must contain at least %d characters.", minPasswordLength))
	}

	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		violations = append(violations, "This password is too common.")
	}

	if isEntirelyNumeric(password) {
		violations = append(violations, "This password is entirely numeric.")
	}

	if tooSimilar(password, username) {
		violations = append(violations, "The password is too similar to the username.")
	}

	return violations
}

func isEntirelyNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// tooSimilar rejects passwords that contain the username (or the reverse)
// once both are lowercased. Usernames shorter than 4 runes are skipped so a
// two-letter handle does not veto every password containing those letters.
func tooSimilar(password, username string) bool {
	p := strings.ToLower(password)
	u := strings.ToLower(strings.TrimSpace(username))
	if len(u) < 4 {
		return false
	}
	return strings.Contains(p, u) || strings.Contains(u, p)
}
