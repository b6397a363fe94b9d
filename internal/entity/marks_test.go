package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarks(t *testing.T) {
	t.Run("Accepts two distinct marks", func(t *testing.T) {
		marks, err := NewMarks("X", "O")

		require.NoError(t, err)
		assert.Equal(t, Mark("X"), marks.Of(SideComputer))
		assert.Equal(t, Mark("O"), marks.Of(SideHuman))
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		_, err := NewMarks("", "O")

		require.ErrorIs(t, err, apperror.ErrInvalidMarks)
	})

	t.Run("Error on identical marks", func(t *testing.T) {
		_, err := NewMarks("X", "X")

		require.ErrorIs(t, err, apperror.ErrInvalidMarks)
	})
}

func TestParseSide(t *testing.T) {
	t.Run("Known sides", func(t *testing.T) {
		side, err := ParseSide("computer")
		require.NoError(t, err)
		assert.Equal(t, SideComputer, side)
		assert.Equal(t, SideHuman, side.Opponent())

		side, err = ParseSide("human")
		require.NoError(t, err)
		assert.Equal(t, SideComputer, side.Opponent())
	})

	t.Run("Error on unknown side", func(t *testing.T) {
		_, err := ParseSide("robot")

		require.ErrorIs(t, err, apperror.ErrUnknownSide)
	})
}
