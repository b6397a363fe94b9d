package tictactoe

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// WinLines lists every three-in-a-row: rows, then columns, then the two diagonals.
var WinLines = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Evaluator reports whether a board is won, drawn or still in play.
type Evaluator struct {
	marks entity.Marks
}

func NewEvaluator(marks entity.Marks) *Evaluator {
	return &Evaluator{marks: marks}
}

// EvaluateWinner - returns the owner of the first complete line found.
func (that *Evaluator) EvaluateWinner(board *entity.Board) entity.Result {
	for _, line := range WinLines {
		a := board[line[0].Row][line[0].Col]
		b := board[line[1].Row][line[1].Col]
		c := board[line[2].Row][line[2].Col]

		if a == entity.EmptyCell || a != b || b != c {
			continue
		}

		switch a {
		case that.marks.Computer:
			return entity.ResultComputerWins
		case that.marks.Human:
			return entity.ResultHumanWins
		}
	}

	return entity.ResultNone
}

// IsDraw - true when nobody has won and no cell is left.
func (that *Evaluator) IsDraw(board *entity.Board) bool {
	return that.EvaluateWinner(board) == entity.ResultNone && board.IsFull()
}

// IsTerminal - true when the game cannot continue.
func (that *Evaluator) IsTerminal(board *entity.Board) bool {
	return that.EvaluateWinner(board) != entity.ResultNone || board.IsFull()
}

// Outcome - maps a terminal board to how the game ended.
func (that *Evaluator) Outcome(board *entity.Board) (entity.Outcome, bool) {
	switch that.EvaluateWinner(board) {
	case entity.ResultComputerWins:
		return entity.OutcomeComputer, true
	case entity.ResultHumanWins:
		return entity.OutcomeHuman, true
	}

	if board.IsFull() {
		return entity.OutcomeDraw, true
	}

	return "", false
}
