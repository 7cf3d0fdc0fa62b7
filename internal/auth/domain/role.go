package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultRoleName is assigned when registration omits a role.
	DefaultRoleName = "student"

	// MaxRoleNameLength is the longest accepted role name, in characters.
	MaxRoleNameLength = 32
)

var (
	ErrRoleNameAdmin   = errors.New("domain: role name can not be admin")
	ErrRoleNameTooLong = errors.New("domain: role name too long")
)

// NormalizeRoleName validates a requested role name and returns its
// canonical form. The checks run in a fixed order: trim, default blank
// input to "student", reject the literal "admin", then enforce the length
// cap.
//
// The admin check is a case-sensitive exact match on the trimmed input, so
// "Admin" or "ADMIN" pass through unchanged. Role gates compare exactly
// too, so neither variant satisfies a route that requires "admin".
func NormalizeRoleName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return DefaultRoleName, nil
	}
	if trimmed == "admin" {
		return "", ErrRoleNameAdmin
	}
	if utf8.RuneCountInString(trimmed) > MaxRoleNameLength {
		return "", ErrRoleNameTooLong
	}

	return trimmed, nil
}
