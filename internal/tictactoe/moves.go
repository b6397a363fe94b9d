package tictactoe

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// AvailableMoves - lists the empty cells in row-major order.
// A full board yields an empty slice.
func AvailableMoves(board *entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.CellCount)

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] == entity.EmptyCell {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}
