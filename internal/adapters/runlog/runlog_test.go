package runlog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/olymper/internal/adapters/runlog"
)

func TestStore_OpenAppendsAndEchoes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmp", "log", "sol.cpp.log")

	var echo bytes.Buffer
	store := runlog.New()
	store.SetEcho(&echo)

	j, err := store.Open(path)
	require.NoError(t, err)
	j.Print("Checking solution...")
	j.Printf("test %02d: time = %.2f, %s", 1, 0.25, "OK")
	require.NoError(t, j.Close())

	j, err = store.Open(path)
	require.NoError(t, err)
	j.Print("passed 1 from 1")
	require.NoError(t, j.Close())

	want := "Checking solution...\ntest 01: time = 0.25, OK\npassed 1 from 1\n"
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
	assert.Equal(t, want, echo.String())
}

func TestStore_NoEcho(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.log")

	store := runlog.New()
	store.SetEcho(nil)

	j, err := store.Open(path)
	require.NoError(t, err)
	j.Print("Generating tests...")
	require.NoError(t, j.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Generating tests...\n", string(got))
}

func TestStore_OpenFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "tmp")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := runlog.New().Open(filepath.Join(blocker, "log", "a.log"))
	require.Error(t, err)
}
