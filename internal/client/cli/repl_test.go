package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "show")
	f.args = args
	return nil
}
func (f *fakeExec) Add(ctx context.Context) error    { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) Edit(ctx context.Context) error   { f.calls = append(f.calls, "edit"); return nil }
func (f *fakeExec) Delete(ctx context.Context) error { f.calls = append(f.calls, "delete"); return nil }

func runScript(exec *fakeExec, lines ...string) string {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, r, &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(exec,
		"help",
		"register",
		"login",
		"help",
		"l",
		"list",
		"select 3",
		"show 2",
		"",
		"add",
		"edit",
		"delete",
		"logout",
		"exit",
	)

	assert.Equal(t, []string{"register", "login", "list", "list", "show", "show", "add", "edit", "delete", "logout"}, exec.calls)
	assert.Equal(t, []string{"2"}, exec.args)
	assert.Contains(t, out, helpLoggedOut)
	assert.Contains(t, out, helpLoggedIn)
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_RequiresLogin(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(exec, "list", "add", "show 1", "quit")

	assert.Empty(t, exec.calls)
	assert.Equal(t, 3, strings.Count(out, "Please log in first."))
}

func TestRunREPL_LoggedInRefusesAuthCommands(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	out := runScript(exec, "login", "register", "exit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Already logged in")
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(exec, "foobar", "login")

	assert.Contains(t, out, "Unknown command: foobar")
	// the last line has no newline but is still executed
	assert.Equal(t, []string{"login"}, exec.calls)
	assert.NotContains(t, out, "Bye!")
}
