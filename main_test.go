package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsUnknownArgs(t *testing.T) {
	composer := NewPageComposer(minimalDoc())

	for _, args := range [][]string{{"build"}, {"export"}, {"export", "a", "b"}} {
		err := run(context.Background(), args, Config{}, composer)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}
}

func TestRunExport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	cfg := Config{StaticDir: filepath.Join(t.TempDir(), "missing")}
	composer := NewPageComposer(minimalDoc(), WithClock(fixedClock(2030)))

	require.NoError(t, run(context.Background(), []string{"export", out}, cfg, composer))
	_, err := os.Stat(filepath.Join(out, "index.html"))
	assert.NoError(t, err)
}
