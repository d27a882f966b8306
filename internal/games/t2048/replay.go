package t2048

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Journal symbols for recorded inputs.
const (
	inputUp    = 'U'
	inputDown  = 'D'
	inputLeft  = 'L'
	inputRight = 'R'
	inputUndo  = 'Z'
)

// ErrBadInput is returned when a journal contains an unknown symbol.
var ErrBadInput = errors.New("t2048: bad journal input")

// directionSymbol returns the journal symbol for a move direction.
func directionSymbol(dir Direction) byte {
	switch dir {
	case DirUp:
		return inputUp
	case DirDown:
		return inputDown
	case DirLeft:
		return inputLeft
	default:
		return inputRight
	}
}

// Replay rebuilds a game from its seed and recorded inputs.
// Only effective inputs are journalled and undo consumes no randomness,
// so the returned engine matches the recorded game exactly.
func Replay(seed int64, inputs string) (*Engine, error) {
	e := NewEngine(rand.New(rand.NewSource(seed)))

	for i := 0; i < len(inputs); i++ {
		switch inputs[i] {
		case inputUp:
			e.Move(DirUp)
		case inputDown:
			e.Move(DirDown)
		case inputLeft:
			e.Move(DirLeft)
		case inputRight:
			e.Move(DirRight)
		case inputUndo:
			e.Undo()
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadInput, inputs[i], i)
		}
	}

	return e, nil
}

// FormatBoard renders a board as a plain-text grid.
func FormatBoard(board Board) string {
	var sb strings.Builder
	border := "+" + strings.Repeat("------+", BoardSize) + "\n"

	sb.WriteString(border)
	for r := 0; r < BoardSize; r++ {
		sb.WriteString("|")
		for c := 0; c < BoardSize; c++ {
			if board[r][c] == Empty {
				sb.WriteString("      |")
				continue
			}
			fmt.Fprintf(&sb, "%5d |", board[r][c])
		}
		sb.WriteString("\n")
		sb.WriteString(border)
	}
	return sb.String()
}
