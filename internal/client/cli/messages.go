package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophdiary/internal/common"
)

const msgInternal = "Something went wrong, see the log for details."

// userMessage maps an expected failure to the text shown to the user.
// ok is false for unexpected errors, which callers log.
func userMessage(err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, common.ErrEmptyFields):
		return "Please fill in all fields.", true
	case errors.Is(err, common.ErrInvalidCharacters):
		return "Username and password may contain only Latin letters, digits and underscores.", true
	case errors.Is(err, common.ErrUsernameTaken):
		return "Username already exists.", true
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password.", true
	case errors.Is(err, common.ErrEmptyContent):
		return "An entry cannot be empty.", true
	case errors.Is(err, common.ErrNoSelection):
		return "No such entry. Use 'list' to see entry numbers.", true
	case errors.Is(err, common.ErrNotFound):
		return "This entry no longer exists. Use 'list' to reload.", true
	case errors.Is(err, common.ErrNotOwner):
		return "This entry belongs to another user.", true
	}
	return msgInternal, false
}

// report prints the message for err and logs it when it is unexpected.
// It returns err so handlers can end with "return a.report(...)".
func (a *App) report(ctx context.Context, err error, action string) error {
	msg, expected := userMessage(err)
	if !expected {
		a.session.Error(ctx, action+" failed", "error", err)
	}
	a.println(msg)
	return err
}
