package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file overriding a few defaults
		path := writeConfig(t, `
log-level: debug
mode: server
game:
  computer-mark: "@"
  human-mark: "#"
  first-turn: human
redis:
  enabled: true
  host: cache
  ttl: 1h
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: file values win and the rest are defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ModeServer, conf.Mode)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.TTL)
		assert.True(t, conf.Redis.Enabled)
		assert.False(t, conf.Game.ClearScreen)

		marks, err := conf.Game.Marks()
		require.NoError(t, err)
		assert.Equal(t, entity.Marks{Computer: "@", Human: "#"}, marks)

		side, fixed, err := conf.Game.FixedFirstTurn()
		require.NoError(t, err)
		assert.True(t, fixed)
		assert.Equal(t, entity.SideHuman, side)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an env variable for the same key
		path := writeConfig(t, "http-port: \"8000\"\n")
		t.Setenv("HTTP_PORT", "7000")

		// When: loading
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the env value is used
		assert.Equal(t, "7000", conf.HTTPPort)
		assert.Equal(t, ModeConsole, conf.Mode)
	})

	t.Run("Error on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}

func TestGame_Validation(t *testing.T) {
	t.Run("Identical marks are rejected", func(t *testing.T) {
		game := Game{ComputerMark: "X", HumanMark: "X"}

		_, err := game.Marks()

		require.ErrorIs(t, err, apperror.ErrInvalidMarks)
	})

	t.Run("Ask means no fixed first turn", func(t *testing.T) {
		game := Game{FirstTurn: FirstTurnAsk}

		_, fixed, err := game.FixedFirstTurn()

		require.NoError(t, err)
		assert.False(t, fixed)
	})

	t.Run("Unknown first turn is rejected", func(t *testing.T) {
		game := Game{FirstTurn: "nobody"}

		_, _, err := game.FixedFirstTurn()

		require.ErrorIs(t, err, apperror.ErrUnknownSide)
	})
}
