package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	expected := []error{
		common.ErrEmptyFields,
		common.ErrInvalidCharacters,
		common.ErrUsernameTaken,
		common.ErrInvalidCredentials,
		common.ErrEmptyContent,
		common.ErrNoSelection,
		common.ErrNotFound,
		common.ErrNotOwner,
	}
	seen := map[string]bool{}
	for _, err := range expected {
		msg, ok := userMessage(fmt.Errorf("wrapped: %w", err))
		assert.True(t, ok, err.Error())
		assert.NotEqual(t, msgInternal, msg)
		assert.False(t, seen[msg], "duplicate message %q", msg)
		seen[msg] = true
	}

	msg, ok := userMessage(errors.New("database is locked"))
	assert.False(t, ok)
	assert.Equal(t, msgInternal, msg)
}
