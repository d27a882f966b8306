package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// BoardSize is the board dimension. The board is always 4x4.
const BoardSize = 4

// Empty is the value of a cell without a tile.
const Empty = 0

// Board represents a 4x4 game board indexed as board[row][col].
// A cell is either Empty or a power of two >= 2.
type Board [BoardSize][BoardSize]int

// Pos is a board coordinate.
type Pos struct {
	Row, Col int
}

// line is one row or column of the board, extracted in traversal order.
type line [BoardSize]int

// lineCoords returns the board coordinates of the i-th line for dir,
// ordered so that compaction always moves tiles toward index 0.
func lineCoords(dir Direction, i int) [BoardSize]Pos {
	var coords [BoardSize]Pos
	for k := 0; k < BoardSize; k++ {
		switch dir {
		case DirLeft:
			coords[k] = Pos{Row: i, Col: k}
		case DirRight:
			coords[k] = Pos{Row: i, Col: BoardSize - 1 - k}
		case DirUp:
			coords[k] = Pos{Row: k, Col: i}
		case DirDown:
			coords[k] = Pos{Row: BoardSize - 1 - k, Col: i}
		}
	}
	return coords
}

// compactLine slides the tiles of a line toward index 0 and merges equal
// neighbours. A tile produced by a merge never merges again in the same
// pass, so [2,2,2,2] becomes [4,4,0,0] and [2,2,4,0] becomes [4,4,0,0].
// Returns the new line and the sum of the merged values.
func compactLine(in line) (out line, gained int) {
	// Slide: drop empties, keep order
	tiles := make([]int, 0, BoardSize)
	for _, v := range in {
		if v != Empty {
			tiles = append(tiles, v)
		}
	}

	// Merge adjacent pairs, skipping past both sources
	writePos := 0
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			merged := tiles[i] * 2
			out[writePos] = merged
			gained += merged
			i++
		} else {
			out[writePos] = tiles[i]
		}
		writePos++
	}

	// Remaining cells are already Empty
	return out, gained
}

// Slide performs a move in the given direction without spawning.
// Returns the new board, the score gained from merges, and whether
// the board changed.
func Slide(board Board, dir Direction) (Board, int, bool) {
	if !dir.Valid() {
		return board, 0, false
	}

	next := board
	total := 0

	for i := 0; i < BoardSize; i++ {
		coords := lineCoords(dir, i)

		var ln line
		for k, p := range coords {
			ln[k] = board[p.Row][p.Col]
		}

		compacted, gained := compactLine(ln)
		total += gained

		for k, p := range coords {
			next[p.Row][p.Col] = compacted[k]
		}
	}

	return next, total, next != board
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Pos {
	var cells []Pos
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if board[r][c] == Empty {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if board[r][c] == Empty {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if two horizontally or vertically
// adjacent cells hold the same non-empty value.
func HasPossibleMerge(board Board) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			val := board[r][c]
			if val == Empty {
				continue
			}
			// Check right neighbor
			if c < BoardSize-1 && board[r][c+1] == val {
				return true
			}
			// Check bottom neighbor
			if r < BoardSize-1 && board[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// IsTerminal returns true when the board is full and no adjacent pair
// can merge.
func IsTerminal(board Board) bool {
	return !CanMove(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if board[r][c] > maxVal {
				maxVal = board[r][c]
			}
		}
	}
	return maxVal
}

// TileCount returns the number of non-empty cells.
func TileCount(board Board) int {
	return BoardSize*BoardSize - len(EmptyCells(board))
}
