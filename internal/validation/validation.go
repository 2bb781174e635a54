package validation

import (
	"regexp"
	"strings"
	"time"

	"sportclash/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return models.ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return models.ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return models.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return models.ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateScore checks that a score lies in the allowed closed range.
// Out-of-range scores are rejected, never clamped.
func ValidateScore(score int) error {
	if score < models.MinScore || score > models.MaxScore {
		return models.ValidationError{Field: "score", Message: "score must be between 0 and 100"}
	}
	return nil
}

// ValidateDate checks that a calendar date is set
func ValidateDate(date time.Time) error {
	if date.IsZero() {
		return models.ValidationError{Field: "date", Message: "date is required"}
	}
	return nil
}
