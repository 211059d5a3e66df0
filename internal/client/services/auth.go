// Package services contains application services for the diary client.
// This file defines the authentication service: account registration with
// input validation, and login against locally stored credentials.
package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/client/validation"
	"github.com/dmitrijs2005/gophdiary/internal/common"
)

// UserStore is the part of the persistence layer the auth flow needs.
// *storage.Store satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, username, password string) (bool, error)
	VerifyCredentials(ctx context.Context, username, password string) (int64, bool, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: validate the form and create an account. It does not log in.
//   - Login: resolve a username/password pair to a user id.
//
// Both trim surrounding whitespace from their inputs. Validation failures
// are reported with the sentinel errors of package common.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (int64, error)
}

type authService struct {
	store UserStore
}

// NewAuthService constructs an AuthService backed by store.
func NewAuthService(store UserStore) AuthService {
	return &authService{store: store}
}

// Register checks, in order, for empty fields, characters outside
// [A-Za-z0-9_] and an existing account with the same username.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	u := strings.TrimSpace(username)
	p := string(bytes.TrimSpace(password))

	if err := validation.Credentials(u, p); err != nil {
		return err
	}

	created, err := a.store.CreateUser(ctx, u, p)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if !created {
		return common.ErrUsernameTaken
	}
	return nil
}

// Login returns the id of the matching account. The character whitelist is
// not applied here; a pair that was never registered simply does not match.
func (a *authService) Login(ctx context.Context, username string, password []byte) (int64, error) {
	u := strings.TrimSpace(username)
	p := string(bytes.TrimSpace(password))

	if u == "" || p == "" {
		return 0, common.ErrEmptyFields
	}

	id, ok, err := a.store.VerifyCredentials(ctx, u, p)
	if err != nil {
		return 0, fmt.Errorf("verify credentials: %w", err)
	}
	if !ok {
		return 0, common.ErrInvalidCredentials
	}
	return id, nil
}
