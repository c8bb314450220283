package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{10,15}$`)
)

// ContactMessage is a visitor enquiry from the contact form.
type ContactMessage struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	PrivacyAccept bool      `json:"privacy"`
	ReceivedAt    time.Time `json:"receivedAt"`
}

// ValidationError reports the first invalid field of a contact message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidContact }

// Normalize trims surrounding whitespace from all text fields.
func (m *ContactMessage) Normalize() {
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	m.Email = strings.TrimSpace(m.Email)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)
}

// Validate applies the contact form rules field by field.
func (m ContactMessage) Validate() error {
	if err := validateName("firstName", m.FirstName); err != nil {
		return err
	}
	if err := validateName("lastName", m.LastName); err != nil {
		return err
	}
	if m.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(m.Email) {
		return &ValidationError{Field: "email", Message: "please enter a valid email address"}
	}
	if m.Phone != "" && !phonePattern.MatchString(m.Phone) {
		return &ValidationError{Field: "phone", Message: "please enter a valid phone number"}
	}
	if m.Subject == "" {
		return &ValidationError{Field: "subject", Message: "please select a subject"}
	}
	if n := utf8.RuneCountInString(m.Message); n < 10 || n > 500 {
		return &ValidationError{Field: "message", Message: "message must be between 10 and 500 characters"}
	}
	if !m.PrivacyAccept {
		return &ValidationError{Field: "privacy", Message: "you must agree to the privacy policy"}
	}
	return nil
}

func validateName(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	if utf8.RuneCountInString(value) < 2 || !namePattern.MatchString(value) {
		return &ValidationError{Field: field, Message: "must be at least 2 characters and contain only letters"}
	}
	return nil
}
