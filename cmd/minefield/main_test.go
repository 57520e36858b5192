package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/minefield"
)

func TestFinished(t *testing.T) {
	assert.True(t, finished(nil))
	assert.True(t, finished(fmt.Errorf("creating_players: %w", minefield.ErrInputClosed)))
	assert.True(t, finished(fmt.Errorf("main_menu: %w", context.Canceled)))
	assert.False(t, finished(errors.New("boom")))
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MINEFIELD_SPECTATE_ADDR", ":9000")
	t.Setenv("MINEFIELD_SEED", "1")
	require.NoError(t, flag.CommandLine.Parse([]string{"-spectate", ":9100", "-seed", "7"}))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.SpectateAddr)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.HasSeed)
}

func TestSeededRandIsDeterministic(t *testing.T) {
	cfg := &config.App{Seed: 3, HasSeed: true}
	a, b := createRand(cfg), createRand(cfg)
	for range 10 {
		assert.Equal(t, a.IntN(50), b.IntN(50))
	}
}
