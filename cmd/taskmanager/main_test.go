package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/console"
	"taskmanager/internal/storage/sqlite"
)

func runWith(t *testing.T, dbPath, input string) (int, string) {
	t.Helper()
	t.Setenv("TASKMANAGER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run([]string{"-db", dbPath, "-log-level", "error"}, strings.NewReader(input), stdout, stderr)
	return code, stdout.String()
}

func TestRunExitCodes(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "task_manager.db")

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "register and exit", input: "2\nalice\npw1\n5\n", want: console.ExitSuccess},
		{name: "duplicate registration", input: "2\nalice\npw2\n", want: console.ExitAuthFailed},
		{name: "login failure", input: "1\nalice\nwrong\n", want: console.ExitAuthFailed},
		{name: "invalid startup choice", input: "3\n", want: console.ExitSuccess},
		{name: "login and exit", input: "1\nalice\npw1\n5\n", want: console.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := runWith(t, dbPath, tt.input)
			assert.Equal(t, tt.want, code)
		})
	}
}

// Each run above closed the store on return, so the file can be removed and
// reopened cleanly afterwards.
func TestRunReleasesStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "task_manager.db")

	code, _ := runWith(t, dbPath, "1\nnobody\nnothing\n")
	require.Equal(t, console.ExitAuthFailed, code)

	store, err := sqlite.Open(dbPath, nil)
	require.NoError(t, err)
	n, err := store.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	require.NoError(t, store.Close())
	assert.NoError(t, os.Remove(dbPath))
}

func TestRunStorageOpenFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	code, out := runWith(t, filepath.Join(blocker, "sub", "task_manager.db"), "")
	assert.Equal(t, console.ExitStorageError, code)
	assert.Empty(t, out)
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	t.Setenv("TASKMANAGER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	code := run([]string{"-nope"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, console.ExitUsageError, code)
}
