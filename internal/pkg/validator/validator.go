package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Worker code validation: cooperative prefix, dash, 4-digit sequence, e.g. "COOP1-0042".
var workerCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2,10}-\d{4}$`)

func IsValidWorkerCode(code string) bool {
	return workerCodeRegex.MatchString(strings.ToUpper(code))
}

// Bag number validation: 3-30 chars, letters, digits and dashes.
// Bag numbers are normalized to uppercase before storage.
var bagNumberRegex = regexp.MustCompile(`^[A-Z0-9-]{3,30}$`)

func IsValidBagNumber(number string) bool {
	return bagNumberRegex.MatchString(strings.ToUpper(number))
}

// Business code validation for exporters, cooperatives and facilities:
// 2-20 chars, uppercase letters and digits.
var businessCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2,20}$`)

func IsValidBusinessCode(code string) bool {
	return businessCodeRegex.MatchString(strings.ToUpper(code))
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	// Try RFC3339 format (ISO8601 with timezone)
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	// Try RFC3339Nano format (with nanoseconds)
	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}
