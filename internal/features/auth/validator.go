package auth

import (
	"errors"
	"strings"
)

// NormalizeEmail is applied on every write and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateUpdate rejects an update that changes nothing
func ValidateUpdate(req *UpdateUserRequest) error {
	if req.Name == nil && req.Email == nil {
		return errors.New("provide a name or email to update")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}
