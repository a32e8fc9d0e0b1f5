package user

import (
	"fmt"
	"unicode"
)

// VerifyPasswordComplexity enforces the minimum password policy: at least 8
// characters with a letter and a digit.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}
	return nil
}

func validRole(role string) bool {
	switch role {
	case "candidate", "interviewer":
		return true
	}
	return false
}
