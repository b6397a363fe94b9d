package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableMoves(t *testing.T) {
	t.Run("Empty board yields every cell in row-major order", func(t *testing.T) {
		moves := AvailableMoves(entity.NewBoard())

		require.Len(t, moves, entity.CellCount)
		for i, move := range moves {
			assert.Equal(t, entity.Move{Row: i / 3, Col: i % 3}, move)
		}
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		board := parseBoard(t, "X_O", "_X_", "OO_")

		moves := AvailableMoves(board)

		assert.Equal(t, []entity.Move{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, moves)
	})

	t.Run("Full board yields an empty sequence", func(t *testing.T) {
		evaluator := NewEvaluator(testMarks)
		board := parseBoard(t, "XOX", "XOO", "OXX")

		moves := AvailableMoves(board)

		assert.NotNil(t, moves)
		assert.Empty(t, moves)
		assert.Equal(t, evaluator.EvaluateWinner(board) == entity.ResultNone, evaluator.IsDraw(board))
	})

	t.Run("Moves are recomputed after the board changes", func(t *testing.T) {
		board := entity.NewBoard()
		before := AvailableMoves(board)

		require.NoError(t, board.Place(entity.Move{Row: 1, Col: 1}, "X"))
		after := AvailableMoves(board)

		assert.Len(t, before, 9)
		assert.Len(t, after, 8)
		assert.NotContains(t, after, entity.Move{Row: 1, Col: 1})
	})
}
