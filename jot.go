package jot

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jotlabs/jot/pkg/adapters/keyval"
	"github.com/jotlabs/jot/pkg/adapters/rest"
	"github.com/jotlabs/jot/pkg/config"
	"github.com/jotlabs/jot/pkg/core"
	"github.com/jotlabs/jot/pkg/notes"
	"github.com/jotlabs/jot/pkg/session"
)

// Version of the library.
var Version = "0.3.0"

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Collection is a public alias for the note collection.
type Collection = core.Collection

// Identity is a public alias for the user identity.
type Identity = core.Identity

// Session is a public alias for the session record.
type Session = core.Session

// Error taxonomy, re-exported for callers branching with errors.Is.
var (
	ErrInvalidInput    = core.ErrInvalidInput
	ErrSessionExpired  = core.ErrSessionExpired
	ErrNotFound        = core.ErrNotFound
	ErrFetchFailed     = core.ErrFetchFailed
	ErrUnexpectedShape = core.ErrUnexpectedShape
)

// Split derives a (title, content) pair from raw note text.
func Split(raw string) (title, content string) {
	return core.Split(raw)
}

// EditSeed reconstructs the raw edit buffer for an existing note.
func EditSeed(title, content string) string {
	return core.EditSeed(title, content)
}

// --- Configuration ---

// Option defines a functional option for configuring the app.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	httpClient *http.Client
	storage    core.Storage
	dataDir    string
	remote     core.Remote
	auth       core.Auth
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient overrides the HTTP client used for remote calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithStorage injects a custom session storage (e.g. in-memory for
// tests). If provided, the default file storage is skipped.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithDataDir sets the directory for the default file storage.
func WithDataDir(dir string) Option {
	return func(o *options) {
		o.dataDir = dir
	}
}

// WithRemote injects a custom notes transport. If provided, the REST
// client is still used for authentication unless WithAuth is also set.
func WithRemote(remote core.Remote) Option {
	return func(o *options) {
		o.remote = remote
	}
}

// WithAuth injects a custom authentication transport.
func WithAuth(auth core.Auth) Option {
	return func(o *options) {
		o.auth = auth
	}
}

// --- Factory ---

// App wires the session store and note repository to a remote server.
// It is the composition root; the presentation layer (CLI, UI) calls
// into it and renders its state.
type App struct {
	Session *session.Store
	Notes   *notes.Repository

	auth   core.Auth
	logger *slog.Logger
}

// New creates an App talking to the given server. Durable session state
// lands in the default data directory unless overridden.
func New(serverURL string, opts ...Option) (*App, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := rest.NewClient(rest.Config{
		BaseURL:    serverURL,
		HTTPClient: o.httpClient,
		Logger:     o.logger,
	})

	storage := o.storage
	if storage == nil {
		dir := o.dataDir
		if dir == "" {
			dir = config.Default().DataDir
		}
		var err error
		storage, err = keyval.New(keyval.DriverFile,
			keyval.WithDir(dir),
			keyval.WithLogger(o.logger),
		)
		if err != nil {
			return nil, err
		}
	}

	var remote core.Remote = client
	if o.remote != nil {
		remote = o.remote
	}
	var auth core.Auth = client
	if o.auth != nil {
		auth = o.auth
	}

	sessions := session.NewStore(storage, o.logger)
	return &App{
		Session: sessions,
		Notes:   notes.NewRepository(remote, sessions, o.logger),
		auth:    auth,
		logger:  o.logger,
	}, nil
}

// --- Operations ---

// Restore loads a persisted session at process start. It fails soft:
// with nothing (or garbage) persisted the app simply starts anonymous.
func (a *App) Restore(ctx context.Context) (Session, bool) {
	return a.Session.Restore(ctx)
}

// Register creates an account and logs the new identity in.
func (a *App) Register(ctx context.Context, name, email, password string) (Session, error) {
	identity, token, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		return Session{}, err
	}
	a.Session.Login(ctx, identity, token)
	return Session{Identity: identity, Token: token}, nil
}

// Login authenticates and installs the session.
func (a *App) Login(ctx context.Context, email, password string) (Session, error) {
	identity, token, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	a.Session.Login(ctx, identity, token)
	return Session{Identity: identity, Token: token}, nil
}

// Logout signs out remotely best-effort, then clears the local session.
// The local outcome is the same whether or not the server acknowledged.
func (a *App) Logout(ctx context.Context) {
	if token, ok := a.Session.Token(); ok {
		if err := a.auth.SignOut(ctx, token); err != nil && a.logger != nil {
			a.logger.Warn("remote sign-out failed, proceeding with local logout", "err", err)
		}
	}
	a.Session.Logout(ctx)
}
