package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/client/diary"
	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/google/uuid"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// readCredentials prompts for a username and a password. The username is
// returned trimmed, the form the auth service matches. The caller must wipe
// the returned password.
func (a *App) readCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out, a.passwordFd)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(userName), password, nil
}

// Register prompts for a username and password and creates the account.
// It does not log in.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		return a.report(ctx, err, "register")
	}

	a.logger.Info(ctx, "user registered", "user", userName)
	a.println("User registered! You can log in now.")
	return nil
}

// Login prompts for credentials and, on success, opens the diary view and
// prints the user's entries.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.logger.Warn(ctx, "login rejected", "user", userName)
		}
		return a.report(ctx, err, "login")
	}

	a.userName = userName
	a.session = a.logger.With("session", uuid.NewString(), "user_id", userID)
	a.view = diary.NewView(a.store, userID)
	a.session.Info(ctx, "session started", "user", userName)

	a.println("Logged in!")
	return a.List(ctx)
}

// Logout drops the diary view and returns to the logged-out state.
func (a *App) Logout(ctx context.Context) error {
	a.session.Info(ctx, "session ended")
	a.view = nil
	a.userName = ""
	a.session = a.logger
	return nil
}
