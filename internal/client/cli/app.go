package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/brainstorm-app/brainstorm/internal/client/api"
	"github.com/brainstorm-app/brainstorm/internal/client/config"
	"github.com/brainstorm-app/brainstorm/internal/client/services"
	"github.com/brainstorm-app/brainstorm/internal/client/session"
	"github.com/brainstorm-app/brainstorm/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services behind the BrainStorm REPL and tracks the
// interactive state (current user, login status).
type App struct {
	config   *config.Config
	auth     services.AuthService
	posts    services.PostsService
	reader   *bufio.Reader
	username string
	loggedIn bool
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	store := session.NewStore(db)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	gw, err := api.NewGateway(cfg.BaseURL, cfg.RequestTimeout, store, logger)
	if err != nil {
		return nil, err
	}
	client := api.NewRESTClient(gw)

	return &App{
		config: cfg,
		auth:   services.NewAuthService(client, store),
		posts:  services.NewPostsService(client),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// syncLoginState refreshes the in-memory login flag from the persisted
// session. The gateway drops the session on any 401, so the flag can go
// stale within a single command.
func (a *App) syncLoginState(ctx context.Context) {
	sess, err := a.auth.StoredSession(ctx)
	if err != nil {
		return
	}
	if sess.LoggedIn() {
		a.loggedIn = true
		if sess.User != nil {
			a.username = sess.User.Username
		}
	} else {
		a.loggedIn = false
		a.username = ""
	}
}

func (a *App) status() string {
	if a.username != "" {
		return "(" + a.username + ")"
	}
	return ""
}

// Run decides the opening screen from persisted state, prints it, and
// hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	route, err := a.auth.StartupRoute(ctx)
	if err != nil {
		return err
	}

	switch route {
	case services.RouteOnboarding:
		printlnFn("Welcome to BrainStorm! Find collaborators for your gaming, development and research projects.")
		if err := a.auth.MarkOnboardingSeen(ctx); err != nil {
			return err
		}
		printlnFn("Type 'register' to create an account or 'login' if you already have one.")
	case services.RouteLogin:
		printlnFn("Welcome back. Type 'login' to sign in.")
	case services.RouteDashboard:
		a.syncLoginState(ctx)
		printlnFn("Session restored.")
		_ = a.Dashboard(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}
