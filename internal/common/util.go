// Package common holds small helpers shared by the client packages.
package common

import "strings"

// SameEmail reports whether a and b name the same account.
func SameEmail(a, b string) bool {
	return strings.EqualFold(a, b)
}
