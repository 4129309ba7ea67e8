package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// specialChars is the fixed punctuation set a password must draw at least one
// character from.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// commonPatterns are denylisted substrings checked against the lowercased password.
var commonPatterns = []string{"123", "abc", "password", "qwerty", "admin"}

// strengthLevels maps a score of 0..4+ to a human-readable label.
var strengthLevels = []string{"Very Weak", "Weak", "Fair", "Good", "Strong"}

// PasswordStrength is the result of evaluating a password against the policy.
type PasswordStrength struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Score    int      `json:"score"`
	Strength string   `json:"strength"`
}

// ValidatePasswordStrength scores a password against the policy rules.
// Each satisfied rule contributes 1 to the score; each violation produces a
// distinct error. A denylisted substring costs an error and a score point but
// the reported score never goes below zero. The password is valid iff the
// error list is empty.
func ValidatePasswordStrength(password string) PasswordStrength {
	var errs []string
	score := 0

	length := utf8.RuneCountInString(password)

	if length < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	} else {
		score++
	}

	// Upper length bound is a hard error with no score effect.
	if length > 128 {
		errs = append(errs, "Password must be less than 128 characters")
	}

	hasUpper, hasLower, hasDigit, hasSpecial := false, false, false, false
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
		if strings.ContainsRune(specialChars, c) {
			hasSpecial = true
		}
	}

	if !hasUpper {
		errs = append(errs, "Password must contain at least one uppercase letter")
	} else {
		score++
	}
	if !hasLower {
		errs = append(errs, "Password must contain at least one lowercase letter")
	} else {
		score++
	}
	if !hasDigit {
		errs = append(errs, "Password must contain at least one digit")
	} else {
		score++
	}
	if !hasSpecial {
		errs = append(errs, "Password must contain at least one special character")
	} else {
		score++
	}

	lowered := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lowered, pattern) {
			errs = append(errs, "Password contains common patterns")
			score--
			break
		}
	}

	strength := strengthLevels[0]
	if score >= 0 {
		idx := score
		if idx > 4 {
			idx = 4
		}
		strength = strengthLevels[idx]
	}

	reported := score
	if reported < 0 {
		reported = 0
	}

	return PasswordStrength{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Score:    reported,
		Strength: strength,
	}
}
