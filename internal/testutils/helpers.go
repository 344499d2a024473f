// Package testutils holds fixtures shared by package tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// TrafficManual is a small manual exercising a conditional and its alternative.
const TrafficManual = "1. Approach the intersection.\n2. If the light is red, stop the car.\n3. Otherwise, proceed.\n"

// SetupLibraryRepo creates a temporary directory and initializes a Loam repository
// in it, without versioning unless opts say otherwise.
// It returns the absolute path to the temp dir and the initialized repository.
func SetupLibraryRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	opts = append([]loam.Option{loam.WithVersioning(false)}, opts...)
	repo, err := loam.Init(absPath, opts...)
	require.NoError(t, err, "Failed to init loam repo")

	return absPath, repo
}

// WriteManuals writes each name/content pair under dir.
func WriteManuals(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}
