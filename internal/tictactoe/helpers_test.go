package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/require"
)

var testMarks = entity.Marks{Computer: "X", Human: "O"}

// parseBoard builds a board from three rows such as "XO_"; '_' is an empty cell.
func parseBoard(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	require.Len(t, rows, entity.BoardSize)

	board := entity.NewBoard()
	for r, row := range rows {
		require.Len(t, row, entity.BoardSize)
		for c, ch := range row {
			if ch == '_' {
				continue
			}
			require.NoError(t, board.Set(r, c, entity.Mark(string(ch))))
		}
	}

	return board
}

// position is a reachable board and the side to move on it.
type position struct {
	board  entity.Board
	toMove entity.Side
}

// reachablePositions walks every legal game, with either side moving first,
// and returns each distinct non-terminal position once.
func reachablePositions(evaluator *Evaluator) []position {
	seen := make(map[string]struct{})
	var positions []position

	var walk func(board *entity.Board, toMove entity.Side)
	walk = func(board *entity.Board, toMove entity.Side) {
		if evaluator.IsTerminal(board) {
			return
		}

		key := board.Key(testMarks) + string(toMove)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		positions = append(positions, position{board: board.Snapshot(), toMove: toMove})

		for _, move := range AvailableMoves(board) {
			board[move.Row][move.Col] = testMarks.Of(toMove)
			walk(board, toMove.Opponent())
			board[move.Row][move.Col] = entity.EmptyCell
		}
	}

	walk(entity.NewBoard(), entity.SideComputer)
	walk(entity.NewBoard(), entity.SideHuman)

	return positions
}

// plainMinimax is minimax without pruning, used as the reference result.
func plainMinimax(engine *Engine, board *entity.Board, depth int, isMaximizing bool) int {
	switch engine.evaluator.EvaluateWinner(board) {
	case entity.ResultComputerWins:
		return WinScore - depth
	case entity.ResultHumanWins:
		return -WinScore + depth
	}

	moves := AvailableMoves(board)
	if len(moves) == 0 {
		return DrawScore
	}

	mark, best := engine.marks.Human, Infinity
	if isMaximizing {
		mark, best = engine.marks.Computer, -Infinity
	}

	for _, move := range moves {
		board[move.Row][move.Col] = mark
		score := plainMinimax(engine, board, depth+1, !isMaximizing)
		board[move.Row][move.Col] = entity.EmptyCell

		if isMaximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
