package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const clearScreenSeq = "\033[H\033[2J"

var errBadInput = errors.New("enter the row and the column, e.g. 1 2")

// Console talks to the human player over a line-oriented terminal.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	marks       entity.Marks
	clearScreen bool
}

func New(in io.Reader, out io.Writer, marks entity.Marks, clearScreen bool) *Console {
	return &Console{
		in:          bufio.NewScanner(in),
		out:         out,
		marks:       marks,
		clearScreen: clearScreen,
	}
}

// ChooseFirst - asks who opens the game until the answer is 1 or 2.
func (that *Console) ChooseFirst() (entity.Side, error) {
	for {
		if err := that.printf("Choose your turn by press 1 or 2\n1. Computer (%s)  2. Player (%s)\n",
			that.marks.Computer, that.marks.Human); err != nil {
			return "", err
		}

		line, err := that.readLine()
		if err != nil {
			return "", err
		}

		switch line {
		case "1":
			return entity.SideComputer, nil
		case "2":
			return entity.SideHuman, nil
		}
	}
}

// ReadMove - reads "row col" (0-indexed). Whether the cell is free is up to the caller.
func (that *Console) ReadMove(ctx context.Context, _ *entity.Board) (entity.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.NoMove, err
		}

		if err := that.printf("Your move: "); err != nil {
			return entity.NoMove, err
		}

		line, err := that.readLine()
		if err != nil {
			return entity.NoMove, err
		}

		move, err := parseMove(line)
		if err != nil {
			if err = that.ShowError(err); err != nil {
				return entity.NoMove, err
			}
			continue
		}

		return move, nil
	}
}

func (that *Console) ShowBoard(board *entity.Board) error {
	var sb strings.Builder

	if that.clearScreen {
		sb.WriteString(clearScreenSeq)
	}

	sb.WriteString("+-----------+\n")
	for row := range entity.BoardSize {
		sb.WriteString("|")
		for col := range entity.BoardSize {
			mark := board[row][col]
			if mark == entity.EmptyCell {
				mark = " "
			}
			fmt.Fprintf(&sb, " %s |", mark)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("+-----------+\n")

	return that.printf("%s", sb.String())
}

func (that *Console) ShowResult(outcome entity.Outcome) error {
	switch outcome {
	case entity.OutcomeHuman:
		return that.printf("You win!!!\n")
	case entity.OutcomeComputer:
		return that.printf("Computer win!!!\n")
	default:
		return that.printf("Draw!!!\n")
	}
}

func (that *Console) ShowError(err error) error {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return that.printf("This cell is already filled!\n")
	case errors.Is(err, apperror.ErrInvalidCell):
		return that.printf("There is no such cell, rows and columns go from 0 to %d.\n", entity.BoardSize-1)
	default:
		return that.printf("%v\n", err)
	}
}

func (that *Console) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Console) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func parseMove(line string) (entity.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.NoMove, errBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.NoMove, errBadInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.NoMove, errBadInput
	}

	move := entity.Move{Row: row, Col: col}
	if !move.IsValid() {
		return entity.NoMove, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	return move, nil
}
