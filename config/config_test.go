package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdraw/pairing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
avoid_history: true
history_penalty: 500
avoid_institution: false
side_allocations: balance
side_penalty: 25
max_times_on_one_side: 3
unranked_room_rank: last
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, pairing.Options{
		AvoidHistory:       true,
		HistoryPenalty:     500,
		AvoidInstitution:   false,
		InstitutionPenalty: 1000,
		SideAllocations:    pairing.SidesBalance,
		SidePenalty:        25,
		MaxTimesOnOneSide:  3,
		UnrankedRoomRank:   pairing.UnrankedLast,
	}, cfg.Options)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "side_penalty: 25\n")
	t.Setenv("LVDRAW_SIDE_PENALTY", "40")
	t.Setenv("LVDRAW_SIDE_ALLOCATIONS", "random")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(40), cfg.Options.SidePenalty)
	assert.Equal(t, pairing.SidesRandom, cfg.Options.SideAllocations)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrRead)

	_, err = Load(writeConfig(t, "history_penalty: -1\n"))
	assert.ErrorIs(t, err, pairing.ErrInvalidOptions)

	_, err = Load(writeConfig(t, "side_allocations: coin-toss\n"))
	assert.ErrorIs(t, err, pairing.ErrInvalidOptions)

	_, err = Load(writeConfig(t, "side_penalty: [1, 2\n"))
	assert.ErrorIs(t, err, ErrRead)
}
