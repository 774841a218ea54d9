// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstoeckel/ball/molgraph"
)

func quietLogger() *log.Logger { return newLogger(io.Discard, log.InfoLevel) }

func TestRunSearch_Modes(t *testing.T) {
	ctx := context.Background()
	co := chain("CO", "C", "O")
	ethanol := chain("ethanol", "C", "C", "O")
	propanol := chain("propanol", "C", "C", "C", "O")

	cfg := DefaultConfig()
	res, err := runSearch(ctx, quietLogger(), cfg, co, ethanol)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 2, res.Size)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "O2", res.Matches[0][1].Query.Name)
	assert.Equal(t, "O3", res.Matches[0][1].Target.Name)
	assert.Positive(t, res.Stats.States)

	cfg.Mode = "iso"
	res, err = runSearch(ctx, quietLogger(), cfg, ethanol, propanol)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Matches)

	cfg.Mode = "mcs"
	res, err = runSearch(ctx, quietLogger(), cfg, ethanol, propanol)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 3, res.Size)

	cfg.Mode = "sub"
	cfg.All = true
	res, err = runSearch(ctx, quietLogger(), cfg, chain("CC", "C", "C"), propanol)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count, "two C-C bonds, two directions each")
	assert.Len(t, res.Matches, 4)

	cfg.Limit = 3
	res, err = runSearch(ctx, quietLogger(), cfg, chain("CC", "C", "C"), propanol)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
}

func TestRunSearch_Induced(t *testing.T) {
	triangle := &molgraph.Molecule{
		Name:  "cyclopropane",
		Atoms: []molgraph.Atom{{Name: "a", Element: "C"}, {Name: "b", Element: "C"}, {Name: "c", Element: "C"}},
		Bonds: []molgraph.Bond{{A: "a", B: "b", Order: molgraph.Single}, {A: "b", B: "c", Order: molgraph.Single}, {A: "c", B: "a", Order: molgraph.Single}},
	}
	cfg := DefaultConfig()
	res, err := runSearch(context.Background(), quietLogger(), cfg, chain("propane", "C", "C", "C"), triangle)
	require.NoError(t, err)
	assert.True(t, res.Found)

	cfg.Induced = true
	res, err = runSearch(context.Background(), quietLogger(), cfg, chain("propane", "C", "C", "C"), triangle)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestRunSearch_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.All = true
	cfg.Timeout = time.Nanosecond

	res, err := runSearch(context.Background(), quietLogger(), cfg, chain("octane", "C", "C", "C", "C", "C", "C", "C", "C"), lattice(6, 6))
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
	assert.GreaterOrEqual(t, res.Stats.States, int64(progressEvery))
}

func TestRunSearch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runSearch(ctx, quietLogger(), DefaultConfig(), chain("CC", "C", "C"), lattice(3, 3))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunSearch_Errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "fuzzy"
	_, err := runSearch(context.Background(), quietLogger(), cfg, chain("C", "C"), chain("C", "C"))
	require.Error(t, err)

	broken := chain("broken", "C", "C")
	broken.Bonds[0].B = "X"
	_, err = runSearch(context.Background(), quietLogger(), DefaultConfig(), broken, chain("C", "C"))
	require.ErrorIs(t, err, molgraph.ErrUnknownAtom)
}

func TestRunSearch_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	_, err := runSearch(context.Background(), newLogger(&buf, log.DebugLevel), DefaultConfig(), chain("CO", "C", "O"), chain("x", "C", "O"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "search started")
	assert.Contains(t, buf.String(), "search done")
}
