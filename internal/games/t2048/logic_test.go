package t2048

import "testing"

func TestCompactLine(t *testing.T) {
	tests := []struct {
		name     string
		input    line
		expected line
		score    int
	}{
		{
			name:     "simple merge",
			input:    line{2, 2, 0, 0},
			expected: line{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    line{2, 2, 2, 0},
			expected: line{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    line{2, 2, 2, 2},
			expected: line{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    line{2, 2, 4, 0},
			expected: line{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "two different pairs",
			input:    line{2, 2, 4, 4},
			expected: line{4, 8, 0, 0},
			score:    12,
		},
		{
			name:     "gap before pair",
			input:    line{2, 0, 2, 2},
			expected: line{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    line{2, 4, 8, 16},
			expected: line{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    line{0, 0, 2, 2},
			expected: line{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    line{2, 0, 0, 2},
			expected: line{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no change needed",
			input:    line{4, 2, 0, 0},
			expected: line{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    line{0, 0, 0, 0},
			expected: line{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    line{0, 4, 0, 0},
			expected: line{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "pair in the middle",
			input:    line{8, 4, 4, 8},
			expected: line{8, 8, 8, 0},
			score:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := compactLine(tt.input)
			if result != tt.expected {
				t.Errorf("compactLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("compactLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] sliding left should become [8, 8, 0, 0], not [16, 0, 0, 0]
	result, score := compactLine(line{4, 4, 4, 4})

	expected := line{8, 8, 0, 0}
	if result != expected {
		t.Errorf("compactLine = %v, want %v (one merge per tile per move)", result, expected)
	}

	// Score should be 8+8 = 16, not 8+16 = 24
	if score != 16 {
		t.Errorf("compactLine score = %d, want 16", score)
	}
}

func TestSlideLeft(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score, changed := Slide(board, DirLeft)

	if result != expected {
		t.Errorf("Slide left: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("Slide left should indicate board changed")
	}

	expectedScore := 4 + 8 + 4 + 4
	if score != expectedScore {
		t.Errorf("Slide left score = %d, want %d", score, expectedScore)
	}
}

func TestSlideRight(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _, changed := Slide(board, DirRight)

	if result != expected {
		t.Errorf("Slide right: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("Slide right should indicate board changed")
	}
}

func TestSlideRightMergesFromTheRight(t *testing.T) {
	// Compaction runs toward the move direction, so the rightmost pair merges
	board := Board{{0, 2, 2, 2}}
	result, score, _ := Slide(board, DirRight)

	expected := Board{{0, 0, 2, 4}}
	if result != expected {
		t.Errorf("Slide right: got %v, want %v", result, expected)
	}
	if score != 4 {
		t.Errorf("Slide right score = %d, want 4", score)
	}
}

func TestSlideUp(t *testing.T) {
	board := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _, changed := Slide(board, DirUp)

	if result != expected {
		t.Errorf("Slide up: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("Slide up should indicate board changed")
	}
}

func TestSlideDown(t *testing.T) {
	board := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _, changed := Slide(board, DirDown)

	if result != expected {
		t.Errorf("Slide down: got\n%v\nwant\n%v", result, expected)
	}

	if !changed {
		t.Error("Slide down should indicate board changed")
	}
}

func TestSlideNoChange(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score, changed := Slide(board, DirLeft)

	if changed {
		t.Error("Slide left should not change already left-aligned tiles")
	}
	if result != board || score != 0 {
		t.Errorf("Unchanged slide returned %v score %d", result, score)
	}
}

func TestSlideInvalidDirection(t *testing.T) {
	board := Board{{2, 2, 0, 0}}
	result, score, changed := Slide(board, Direction(42))
	if changed || score != 0 || result != board {
		t.Error("Invalid direction should leave the board untouched")
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		expected bool
	}{
		{
			name: "full board without pairs",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "full board with horizontal pair",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name: "full board with vertical pair",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 16},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name: "empty cell without pairs",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name:     "empty board",
			board:    Board{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTerminal(tt.board); got != tt.expected {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHasPossibleMergeIgnoresEmpty(t *testing.T) {
	board := Board{
		{2, 0, 0, 4},
		{0, 0, 0, 0},
		{8, 0, 0, 16},
		{0, 0, 0, 0},
	}
	if HasPossibleMerge(board) {
		t.Error("Adjacent empty cells are not a merge")
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(board); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(board)
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Pos{Row: 0, Col: 1}) {
		t.Errorf("EmptyCells should be row-major, first = %+v", cells[0])
	}
	if TileCount(board) != 8 {
		t.Errorf("TileCount = %d, want 8", TileCount(board))
	}
}
