package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "diary.sqlite")

	var out bytes.Buffer
	app, err := NewApp(context.Background(), cfg, logging.Discard(), strings.NewReader(""), &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, &out
}

// stubCredentials replaces the prompt helpers with fixed answers.
func stubCredentials(t *testing.T, userName, password string) {
	t.Helper()
	origText, origPass := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPass })

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return userName, nil }
	getPassword = func(*bufio.Reader, io.Writer, int) ([]byte, error) { return []byte(password), nil }
}

func TestLogin_StoresTrimmedUserName(t *testing.T) {
	app, out := newTestApp(t)
	ctx := context.Background()

	stubCredentials(t, "alice", "pass123")
	require.NoError(t, app.Register(ctx))

	stubCredentials(t, "  alice\t", "pass123")
	require.NoError(t, app.Login(ctx))

	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "alice", app.userName)
	assert.Equal(t, "(alice) ", app.getStatus())
	assert.Contains(t, out.String(), "Logged in!")

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Empty(t, app.getStatus())
}

func TestLogin_WrongPasswordStaysLoggedOut(t *testing.T) {
	app, out := newTestApp(t)
	ctx := context.Background()

	stubCredentials(t, "alice", "pass123")
	require.NoError(t, app.Register(ctx))

	stubCredentials(t, "alice", "nope")
	require.Error(t, app.Login(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Empty(t, app.userName)
	assert.Contains(t, out.String(), "Invalid username or password.")
}
