package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// Self-assessment options presented during onboarding
var signLanguageLevels = []string{
	"Zero experience",
	"I understand few sign language",
	"Very good at sign language",
}

// ValidateSignLanguageLevel checks the onboarding self-assessment answer
func ValidateSignLanguageLevel(level string) error {
	for _, l := range signLanguageLevels {
		if level == l {
			return nil
		}
	}
	return ValidationError{Field: "signLanguageLevel", Message: "invalid sign language level"}
}

// ValidateHoursPerDay checks the daily practice commitment answer
func ValidateHoursPerDay(hours string) error {
	if strings.TrimSpace(hours) == "" {
		return ValidationError{Field: "hoursPerDay", Message: "hours per day is required"}
	}
	return nil
}
