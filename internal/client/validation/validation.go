// Package validation checks form fields before they reach the directory or
// the session, and carries the message shown next to the offending field.
package validation

import (
	"regexp"
	"unicode/utf16"
)

// Messages shown to the user.
const (
	MsgFillAllFields      = "Please fill in all fields."
	MsgInvalidEmail       = "Please enter a valid email address."
	MsgPasswordTooShort   = "Password must be at least 6 characters."
	MsgPasswordsMismatch  = "Passwords do not match."
	MsgEmailTaken         = "An account with this email already exists."
	MsgLoginFieldsMissing = "Please enter email and password."
	MsgInvalidCredentials = "Invalid credentials."
	MsgInvalidRole        = "Please choose a role: buyer or seller."
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// emailRe treats Unicode spaces, vertical tab and BOM as whitespace, not
// just ASCII spaces.
var emailRe = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// FieldError is a failed check on one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Check inspects a value and returns the message to show, or "" when the
// value passes.
type Check func(value string) string

// Required fails on an empty value. Callers trim the fields that should
// ignore surrounding spaces; a password of spaces is still a value.
func Required(msg string) Check {
	return func(v string) string {
		if v == "" {
			return msg
		}
		return ""
	}
}

// Email fails unless v looks like local@domain.tld.
func Email() Check {
	return func(v string) string {
		if !emailRe.MatchString(v) {
			return MsgInvalidEmail
		}
		return ""
	}
}

// MinLength fails when v is shorter than n UTF-16 code units, so a character
// outside the BMP counts twice.
func MinLength(n int) Check {
	return func(v string) string {
		if utf16Len(v) < n {
			return MsgPasswordTooShort
		}
		return ""
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Matches fails when v differs from other.
func Matches(other string) Check {
	return func(v string) string {
		if v != other {
			return MsgPasswordsMismatch
		}
		return ""
	}
}

// Form runs checks field by field and keeps the first failure.
type Form struct {
	err *FieldError
}

// Field runs checks against value in order, stopping at the first failure.
// Once the form has failed further calls are no-ops.
func (f *Form) Field(name, value string, checks ...Check) *Form {
	if f.err != nil {
		return f
	}
	for _, check := range checks {
		if msg := check(value); msg != "" {
			f.err = &FieldError{Field: name, Message: msg}
			break
		}
	}
	return f
}

// Fail records a failure found outside the field checks, such as a
// duplicate email. It does not replace an earlier failure.
func (f *Form) Fail(name, msg string) *Form {
	if f.err == nil {
		f.err = &FieldError{Field: name, Message: msg}
	}
	return f
}

// Err returns the first failure, or nil.
func (f *Form) Err() error {
	if f.err == nil {
		return nil
	}
	return f.err
}
