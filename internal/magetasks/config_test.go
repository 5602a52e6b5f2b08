package magetasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(originalDir) })

	tmpDir := t.TempDir()
	require.NoError(t, os.Chdir(tmpDir))
	require.NoError(t, Initialize())

	// Verify bin directory was created
	info, err := os.Stat(filepath.Join(tmpDir, "bin"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Use filepath.EvalSymlinks to handle symlinked temp dirs
	expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
	actualRoot, _ := filepath.EvalSymlinks(ProjectRoot)
	assert.Equal(t, expectedRoot, actualRoot)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "github.com/dkoosis/ptree", ModulePath)
	assert.Equal(t, "./bin/ptree", BinPath)
	assert.Equal(t, "./cmd/ptree", MainPackage)
}
