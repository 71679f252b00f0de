package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"taskmanager/internal/models"
	"taskmanager/internal/tasks"
)

// Process exit codes returned by Run and the entrypoint.
const (
	ExitSuccess      = 0
	ExitStorageError = 1
	ExitAuthFailed   = 2
	ExitInputError   = 3
	ExitUsageError   = 4
)

var (
	// ErrNotAuthenticated is returned by task operations that need a session user.
	ErrNotAuthenticated = errors.New("no user logged in")
	// ErrInput wraps failures reading from the terminal.
	ErrInput = errors.New("read input")
)

// CredentialStore is the persistence the session controller authenticates against.
type CredentialStore interface {
	FindUser(ctx context.Context, username, password string) (bool, error)
	InsertUser(ctx context.Context, username, password string) error
}

// App is the state of one console session: the credential store, the task
// registry and the user who logged in.
type App struct {
	store    CredentialStore
	registry *tasks.Registry
	user     *models.User
	in       *bufio.Reader
	out      io.Writer
	logger   *slog.Logger
}

// New wires a session around the given store, registry and terminal streams.
func New(store CredentialStore, registry *tasks.Registry, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if registry == nil {
		registry = tasks.NewRegistry(nil)
	}
	return &App{
		store:    store,
		registry: registry,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   logger,
	}
}

// User returns the session user, or nil before authentication.
func (a *App) User() *models.User {
	return a.user
}

// Registry exposes the tasks created during the session.
func (a *App) Registry() *tasks.Registry {
	return a.registry
}

// Run authenticates the user, drives the main menu and returns the exit code.
// Closed input ends the session as a normal exit.
func (a *App) Run(ctx context.Context) (int, error) {
	a.println("Welcome to the task manager!")

	outcome, err := a.Authenticate(ctx)
	if err != nil {
		return exitCode(err), errorOrNil(err)
	}

	switch outcome {
	case OutcomeRejected:
		return ExitAuthFailed, nil
	case OutcomeQuit:
		return ExitSuccess, nil
	}

	if err := a.Loop(ctx); err != nil {
		return exitCode(err), errorOrNil(err)
	}
	return ExitSuccess, nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, io.EOF):
		return ExitSuccess
	case errors.Is(err, ErrInput):
		return ExitInputError
	default:
		return ExitStorageError
	}
}

// errorOrNil hides end of input, which is a normal way to leave the session.
func errorOrNil(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
