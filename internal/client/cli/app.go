package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/client/diary"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/client/storage"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// App is one CLI session: storage, services and the logged-in user's
// diary view, plus the terminal streams it talks to.
type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *storage.Store
	authService services.AuthService

	view     *diary.View // nil when logged out
	userName string
	session  logging.Logger

	reader     *bufio.Reader
	out        io.Writer
	passwordFd int // terminal for no-echo password input, or -1
}

// NewApp opens storage and initializes its schema. Both streams are used
// for every prompt, so piped input works the same as a terminal.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	st, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if err := st.InitializeSchema(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	logger.Debug(ctx, "storage ready", "driver", cfg.DatabaseDriver, "path", cfg.DatabasePath)

	return &App{
		config:      cfg,
		logger:      logger,
		store:       st,
		authService: services.NewAuthService(st),
		session:     logger,
		reader:      bufio.NewReader(in),
		out:         out,
		passwordFd:  terminalFd(in),
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	return a.view != nil
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to gophdiary (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	if a.isLoggedIn() {
		_ = a.Logout(ctx)
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
