// Package validation checks registration input.
package validation

import (
	"regexp"

	"github.com/dmitrijs2005/gophdiary/internal/common"
)

// allowed is anchored on both ends: the whole value must consist of
// ASCII letters, digits and underscores.
var allowed = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// IsValidInput reports whether both username and password are non-empty
// and made only of [A-Za-z0-9_].
func IsValidInput(username, password string) bool {
	return allowed.MatchString(username) && allowed.MatchString(password)
}

// Credentials classifies a registration form. It returns
// common.ErrEmptyFields when either value is empty and
// common.ErrInvalidCharacters when either contains a character
// outside the whitelist.
func Credentials(username, password string) error {
	if username == "" || password == "" {
		return common.ErrEmptyFields
	}
	if !IsValidInput(username, password) {
		return common.ErrInvalidCharacters
	}
	return nil
}
