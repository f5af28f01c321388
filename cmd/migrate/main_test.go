package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"jobboard/internal/database"

	"github.com/stretchr/testify/require"
)

func restore() {
	loadDotEnv = func() error { return fs.ErrNotExist }
	runMigrations = database.RunMigrations
	rollbackAll = database.RollbackAll
	exitFunc = func(int) {}
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUpUsesFlag(t *testing.T) {
	restore()
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "postgres://env")
	got := ""
	runMigrations = func(url string) error { got = url; return nil }

	out, err := execute("up", "--database-url", "postgres://flag")
	require.NoError(t, err)
	require.Equal(t, "postgres://flag", got)
	require.Contains(t, out, "migrations applied")
}

func TestUpUsesEnv(t *testing.T) {
	restore()
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "postgres://env")
	got := ""
	runMigrations = func(url string) error { got = url; return nil }

	_, err := execute("up")
	require.NoError(t, err)
	require.Equal(t, "postgres://env", got)
}

func TestDown(t *testing.T) {
	restore()
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "postgres://env")
	called := false
	rollbackAll = func(string) error { called = true; return nil }

	out, err := execute("down")
	require.NoError(t, err)
	require.True(t, called)
	require.Contains(t, out, "rolled back")

	rollbackAll = func(string) error { return errors.New("locked") }
	_, err = execute("down")
	require.ErrorContains(t, err, "locked")
}

func TestErrors(t *testing.T) {
	restore()
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "")

	_, err := execute("up")
	require.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://env")
	runMigrations = func(string) error { return errors.New("dirty") }
	_, err = execute("up")
	require.ErrorContains(t, err, "dirty")

	loadDotEnv = func() error { return errors.New("bad .env") }
	_, err = execute("up")
	require.ErrorContains(t, err, "bad .env")

	restore()
	_, err = execute("up", "extra")
	require.Error(t, err)
}

func TestMainExit(t *testing.T) {
	restore()
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "")
	code := 0
	exitFunc = func(c int) { code = c }
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"migrate", "up"}
	main()
	require.Equal(t, 1, code)
}
