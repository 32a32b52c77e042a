package plc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lowgrav/lgpd/plc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_ReadsEnvironment verifies the environment contract is picked
// up verbatim.
func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PLC_ROOT", "/data/planck")
	t.Setenv("CLIK_PATH", "/opt/clik")

	cfg, err := plc.Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/planck", cfg.Root)
	assert.Equal(t, "/opt/clik", cfg.ClikPath)
}

// TestValidate_FailsLoudly verifies each broken contract names the
// variable and path at fault.
func TestValidate_FailsLoudly(t *testing.T) {
	err := plc.Config{}.Validate()
	assert.ErrorIs(t, err, plc.ErrUnavailable)
	assert.Contains(t, err.Error(), "PLC_ROOT")

	err = plc.Config{Root: "/definitely/not/here"}.Validate()
	assert.ErrorIs(t, err, plc.ErrUnavailable)
	assert.Contains(t, err.Error(), "/definitely/not/here")

	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	err = plc.Config{Root: file}.Validate()
	assert.ErrorIs(t, err, plc.ErrUnavailable)
	assert.Contains(t, err.Error(), "not a directory")
}

// TestRepository_RootsAtData verifies a valid root yields a repository
// over the same directory.
func TestRepository_RootsAtData(t *testing.T) {
	dir := t.TempDir()

	repo, err := plc.Config{Root: dir}.Repository()
	require.NoError(t, err)
	assert.Equal(t, dir, repo.Root)
}

// TestClik_NeverSilent verifies the native boundary refuses explicitly.
func TestClik_NeverSilent(t *testing.T) {
	err := plc.Config{ClikPath: "/opt/clik"}.Clik("plik_lite")
	assert.ErrorIs(t, err, plc.ErrNotImplemented)
	assert.Contains(t, err.Error(), "plik_lite")
}
