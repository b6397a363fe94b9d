package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize

	EmptyCell Mark = ""
)

// NoMove is returned alongside an error when there is no move to make.
var NoMove = Move{Row: -1, Col: -1}

// Mark is the content of a single cell.
type Mark string

// Move is a 0-indexed cell coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) IsValid() bool {
	return inBounds(that.Row, that.Col)
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is the 3x3 playing grid, indexed [row][col].
type Board [BoardSize][BoardSize]Mark

func NewBoard() *Board {
	return &Board{}
}

// Get - returns the mark at (row, col).
func (that *Board) Get(row, col int) (Mark, error) {
	if !inBounds(row, col) {
		return EmptyCell, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	return that[row][col], nil
}

// Set - writes mark to (row, col). Only the coordinates are checked.
func (that *Board) Set(row, col int, mark Mark) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	that[row][col] = mark

	return nil
}

// Place - commits a move for a player; the target cell must be empty.
func (that *Board) Place(move Move, mark Mark) error {
	current, err := that.Get(move.Row, move.Col)
	if err != nil {
		return err
	}

	if current != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	that[move.Row][move.Col] = mark

	return nil
}

// Snapshot - returns a copy of the board for display.
func (that *Board) Snapshot() Board {
	return *that
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

func (that *Board) IsEmpty() bool {
	return that.Count(EmptyCell) == CellCount
}

// Key - encodes the board row-major as '_' (empty), 'c' (computer) and 'h' (human),
// so equal positions share a key whatever characters the marks use.
func (that *Board) Key(marks Marks) string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case marks.Computer:
				sb.WriteByte('c')
			case marks.Human:
				sb.WriteByte('h')
			default:
				sb.WriteByte('_')
			}
		}
	}

	return sb.String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
