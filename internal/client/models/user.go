// Package models defines the client-side data models of the marketplace.
package models

import (
	"fmt"
	"strings"
)

// Role decides which marketplace page a user lands on after login.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// ParseRole maps user input to a Role. Empty input means RoleBuyer; matching
// is case-insensitive.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(RoleBuyer):
		return RoleBuyer, nil
	case string(RoleSeller):
		return RoleSeller, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User is one account of the directory. It is stored as JSON exactly as the
// field tags say; Password is kept in plain text.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// DisplayName is the name shown in page greetings, falling back to the email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
