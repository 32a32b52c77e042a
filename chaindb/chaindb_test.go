package chaindb_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/lowgrav/lgpd/chaindb"
	"github.com/lowgrav/lgpd/mcmc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *chaindb.Store {
	t.Helper()

	store, err := chaindb.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

// TestCreateRun_UniqueIDs verifies identifier allocation and the
// duplicate sentinel.
func TestCreateRun_UniqueIDs(t *testing.T) {
	store := openStore(t)

	run, err := store.CreateRun("", 4, 2, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID, "empty id must be replaced with a generated one")

	named, err := store.CreateRun("fiducial", 4, 2, 42)
	require.NoError(t, err)
	assert.Equal(t, "fiducial", named.ID)

	_, err = store.CreateRun("fiducial", 4, 2, 7)
	assert.ErrorIs(t, err, chaindb.ErrRunExists)

	ids, err := store.Runs()
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

// TestRun_SaveAndResume verifies ensembles round-trip bit-exactly and
// LastStep recovers the newest one.
func TestRun_SaveAndResume(t *testing.T) {
	store := openStore(t)

	run, err := store.CreateRun("resume", 3, 2, 1)
	require.NoError(t, err)

	first := [][]float64{{0.1, -0.2}, {0.3, 0.4}, {-0.5, 0.6}}
	second := [][]float64{{1.1, -1.2}, {1.3, 1.4}, {-1.5, 1.6}}
	logp := []float64{-1.0, -2.5, -0.25}

	require.NoError(t, run.SaveStep(0, first, logp))
	require.NoError(t, run.SaveStep(1, second, logp))

	reopened, err := store.OpenRun("resume")
	require.NoError(t, err)
	assert.Equal(t, 3, reopened.Walkers)
	assert.Equal(t, 2, reopened.Dim)

	step, pos, lp, err := reopened.LastStep()
	require.NoError(t, err)
	assert.Equal(t, 1, step)
	assert.Equal(t, second, pos)
	assert.Equal(t, logp, lp)
}

// TestRun_ShapeAndLookupSentinels exercises the failure paths.
func TestRun_ShapeAndLookupSentinels(t *testing.T) {
	store := openStore(t)

	run, err := store.CreateRun("strict", 2, 3, 0)
	require.NoError(t, err)

	err = run.SaveStep(0, [][]float64{{1, 2, 3}}, []float64{-1})
	assert.ErrorIs(t, err, chaindb.ErrShapeMismatch)

	err = run.SaveStep(0, [][]float64{{1, 2}, {3, 4}}, []float64{-1, -2})
	assert.ErrorIs(t, err, chaindb.ErrShapeMismatch, "per-walker dimension must match")

	_, _, _, err = run.LastStep()
	assert.ErrorIs(t, err, chaindb.ErrNoSteps)

	_, err = store.OpenRun("nonexistent")
	assert.ErrorIs(t, err, chaindb.ErrRunNotFound)
}

// TestRun_StateLifecycle verifies state strings persist.
func TestRun_StateLifecycle(t *testing.T) {
	store := openStore(t)

	run, err := store.CreateRun("lifecycle", 2, 1, 0)
	require.NoError(t, err)

	state, err := run.State()
	require.NoError(t, err)
	assert.Equal(t, "CREATED", state)

	require.NoError(t, run.SetState("COMPLETE"))
	state, err = run.State()
	require.NoError(t, err)
	assert.Equal(t, "COMPLETE", state)
}

// TestRun_AsSamplerCheckpoint runs a small fit with the store wired in
// as the checkpointer and verifies every step landed in the database.
func TestRun_AsSamplerCheckpoint(t *testing.T) {
	store := openStore(t)

	opts := mcmc.DefaultOptions()
	opts.Walkers = 6
	opts.Steps = 25
	opts.Burn = 5

	run, err := store.CreateRun("checkpointed", opts.Walkers, 1, opts.Seed)
	require.NoError(t, err)
	opts.Checkpoint = run

	s, err := mcmc.New(func(theta []float64) (float64, error) {
		return -0.5 * theta[0] * theta[0], nil
	}, 1, opts)
	require.NoError(t, err)

	chain, err := s.Run(context.Background(), s.InitBall([]float64{0}, nil))
	require.NoError(t, err)

	step, pos, lp, err := run.LastStep()
	require.NoError(t, err)
	assert.Equal(t, opts.Steps-1, step)
	require.Len(t, pos, opts.Walkers)

	for w := 0; w < opts.Walkers; w++ {
		assert.Equal(t, chain.At(opts.Steps-1, w), pos[w],
			"persisted ensemble must match the in-memory chain")
		assert.False(t, math.IsNaN(lp[w]))
	}
}
