package console

import (
	"context"
	"errors"
	"log/slog"

	"taskmanager/internal/models"
	"taskmanager/internal/storage/sqlite"
)

// Outcome is the result of the startup menu.
type Outcome int

const (
	// OutcomeAuthenticated means a session user is set and the main menu may start.
	OutcomeAuthenticated Outcome = iota
	// OutcomeRejected means login or registration failed.
	OutcomeRejected
	// OutcomeQuit means the user picked something other than login or register.
	OutcomeQuit
)

// Authenticate runs the startup menu once. Registration logs the new user in.
func (a *App) Authenticate(ctx context.Context) (Outcome, error) {
	a.println("Options:")
	a.println("1. Login")
	a.println("2. Register")

	choice, err := a.readInt("Choose an option: ")
	if err != nil {
		return OutcomeQuit, err
	}

	switch choice {
	case 1:
		return a.login(ctx)
	case 2:
		return a.register(ctx)
	default:
		a.println("Invalid option. Exiting...")
		return OutcomeQuit, nil
	}
}

func (a *App) login(ctx context.Context) (Outcome, error) {
	username, err := a.readLine("Username: ")
	if err != nil {
		return OutcomeRejected, err
	}
	password, err := a.readLine("Password: ")
	if err != nil {
		return OutcomeRejected, err
	}

	found, err := a.store.FindUser(ctx, username, password)
	if err != nil {
		a.println("Login failed. Exiting...")
		return OutcomeRejected, err
	}
	if !found {
		a.logger.Info("login rejected", slog.String("username", username))
		a.println("Login failed. Exiting...")
		return OutcomeRejected, nil
	}

	a.user = models.NewUser(username, password)
	a.logger.Info("user logged in", slog.String("username", username))
	a.println("Login successful!")
	return OutcomeAuthenticated, nil
}

func (a *App) register(ctx context.Context) (Outcome, error) {
	username, err := a.readLine("Choose a username: ")
	if err != nil {
		return OutcomeRejected, err
	}
	password, err := a.readLine("Choose a password: ")
	if err != nil {
		return OutcomeRejected, err
	}

	if err := a.store.InsertUser(ctx, username, password); err != nil {
		if errors.Is(err, sqlite.ErrUserExists) {
			a.logger.Info("registration rejected", slog.String("username", username))
			a.println("Could not register user. Check whether the username already exists.")
			return OutcomeRejected, nil
		}
		a.println("Could not register user: the credential store is unavailable.")
		return OutcomeRejected, err
	}

	a.user = models.NewUser(username, password)
	a.logger.Info("user registered", slog.String("username", username))
	a.printf("Registration successful! Logged in as %s.\n", username)
	return OutcomeAuthenticated, nil
}
