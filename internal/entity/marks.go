package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	SideComputer Side = "computer"
	SideHuman    Side = "human"
)

const (
	ResultNone Result = iota
	ResultComputerWins
	ResultHumanWins
)

const (
	OutcomeComputer Outcome = "computer"
	OutcomeHuman    Outcome = "human"
	OutcomeDraw     Outcome = "draw"
)

// Side identifies whose turn it is.
type Side string

func (that Side) Opponent() Side {
	if that == SideComputer {
		return SideHuman
	}
	return SideComputer
}

func ParseSide(value string) (Side, error) {
	switch side := Side(value); side {
	case SideComputer, SideHuman:
		return side, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownSide, value)
	}
}

// Result is what the terminal evaluator reports for a board.
type Result int

func (that Result) String() string {
	switch that {
	case ResultComputerWins:
		return "computer wins"
	case ResultHumanWins:
		return "human wins"
	default:
		return "none"
	}
}

// Outcome is how a finished game ended.
type Outcome string

// Marks binds the computer and the human to the characters they play with.
type Marks struct {
	Computer Mark `json:"computer"`
	Human    Mark `json:"human"`
}

func NewMarks(computer, human string) (Marks, error) {
	marks := Marks{Computer: Mark(computer), Human: Mark(human)}
	if err := marks.Validate(); err != nil {
		return Marks{}, err
	}

	return marks, nil
}

func (that Marks) Validate() error {
	if that.Computer == EmptyCell || that.Human == EmptyCell {
		return fmt.Errorf("%w: marks must not be empty", apperror.ErrInvalidMarks)
	}

	if that.Computer == that.Human {
		return fmt.Errorf("%w: both players use %q", apperror.ErrInvalidMarks, that.Computer)
	}

	return nil
}

// Of - returns the mark a side plays with.
func (that Marks) Of(side Side) Mark {
	if side == SideComputer {
		return that.Computer
	}
	return that.Human
}

// SearchResult is the engine's answer for one position.
type SearchResult struct {
	Move  Move `json:"move"`
	Score int  `json:"score"`
	Nodes int  `json:"nodes"`
}

// ScoredMove is a root move with its exact minimax score.
type ScoredMove struct {
	Move  Move `json:"move"`
	Score int  `json:"score"`
}
