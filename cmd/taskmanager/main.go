package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"taskmanager/internal/console"
	"taskmanager/internal/storage/sqlite"
	"taskmanager/internal/tasks"
	"taskmanager/internal/util"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run owns the credential store so it is closed on every exit path before
// main hands the code to os.Exit. Settings from the dotenv file are loaded
// before flags so they can supply flag defaults.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	envFile := util.EnvOrDefault("TASKMANAGER_ENV_FILE", ".env")
	envErr := godotenv.Load(envFile)

	fs := flag.NewFlagSet("taskmanager", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dbFlag := fs.String("db", util.EnvOrDefault("TASKMANAGER_DB_PATH", "data/task_manager.db"), "Path to sqlite credential database")
	levelFlag := fs.String("log-level", util.EnvOrDefault("TASKMANAGER_LOG_LEVEL", "info"), "Log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return console.ExitUsageError
	}

	level, levelErr := util.ParseLogLevel(*levelFlag)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("session", uuid.NewString()))

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn("unable to load env file", slog.String("path", envFile), slog.String("error", envErr.Error()))
	}
	if levelErr != nil {
		logger.Warn("falling back to info log level", slog.String("error", levelErr.Error()))
	}

	store, err := sqlite.Open(*dbFlag, logger)
	if err != nil {
		logger.Error("unable to open credential store", slog.String("path", *dbFlag), slog.String("error", err.Error()))
		return console.ExitStorageError
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close credential store", slog.String("error", err.Error()))
		}
	}()

	ctx := context.Background()
	if n, err := store.CountUsers(ctx); err != nil {
		logger.Debug("unable to count users", slog.String("error", err.Error()))
	} else {
		logger.Info("credential store opened", slog.String("path", *dbFlag), slog.Int("users", n))
	}

	app := console.New(store, tasks.NewRegistry(nil), stdin, stdout, logger)
	code, err := app.Run(ctx)
	if err != nil {
		logger.Error("session aborted", slog.String("error", err.Error()))
	}
	logger.Info("session ended", slog.Int("exit_code", code))
	return code
}
