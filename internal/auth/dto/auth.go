package dto

import (
	"regexp"
	"strings"

	"todolist-backend/internal/shared"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const passwordSymbols = "!@#$%^&*"

// Validate checks the signup request shape and returns one entry per failed
// rule, so the client can show per-field messages.
func (r *SignupRequest) Validate() []shared.FieldError {
	var errs []shared.FieldError

	if !emailPattern.MatchString(r.Email) {
		errs = append(errs, shared.FieldError{Field: "email", Message: "Invalid email format"})
	}

	if len(r.Password) < 8 {
		errs = append(errs, shared.FieldError{Field: "password", Message: "Password must be at least 8 characters long"})
	}
	if !passwordMeetsPolicy(r.Password) {
		errs = append(errs, shared.FieldError{Field: "password", Message: "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"})
	}

	return errs
}

// passwordMeetsPolicy requires a lowercase letter, an uppercase letter, a
// digit and a symbol from passwordSymbols, with no characters outside those
// classes.
func passwordMeetsPolicy(password string) bool {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		default:
			return false
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
