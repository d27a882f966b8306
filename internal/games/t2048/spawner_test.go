package t2048

import (
	"math/rand"
	"testing"
)

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestSpawnOnEmptyBoard(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		var board Board
		placed := NewSpawner(newTestRand(seed)).Spawn(&board, 2)

		if len(placed) != 2 {
			t.Fatalf("seed %d: placed %d tiles, want 2", seed, len(placed))
		}
		if placed[0] == placed[1] {
			t.Fatalf("seed %d: both tiles placed on %+v", seed, placed[0])
		}
		if got := TileCount(board); got != 2 {
			t.Fatalf("seed %d: board has %d tiles, want 2", seed, got)
		}
		for _, p := range placed {
			if v := board[p.Row][p.Col]; v != 2 && v != 4 {
				t.Errorf("seed %d: spawned value %d, want 2 or 4", seed, v)
			}
		}
	}
}

func TestSpawnNeverOverwrites(t *testing.T) {
	board := Board{
		{8, 16, 8, 16},
		{16, 8, 16, 8},
		{8, 16, 0, 16},
		{16, 8, 16, 0},
	}
	before := board

	placed := NewSpawner(newTestRand(7)).Spawn(&board, 5)

	if len(placed) != 2 {
		t.Fatalf("placed %d tiles, want 2 (only two empty cells)", len(placed))
	}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if before[r][c] != Empty && board[r][c] != before[r][c] {
				t.Errorf("cell (%d, %d) overwritten: %d -> %d", r, c, before[r][c], board[r][c])
			}
		}
	}
	if HasEmptyCell(board) {
		t.Error("both empty cells should be filled")
	}
}

func TestSpawnOnFullBoard(t *testing.T) {
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	before := board

	placed := NewSpawner(newTestRand(1)).Spawn(&board, 1)
	if len(placed) != 0 {
		t.Errorf("placed %d tiles on a full board", len(placed))
	}
	if board != before {
		t.Error("full board should be unchanged")
	}
}

func TestSpawnValueDistribution(t *testing.T) {
	s := NewSpawner(newTestRand(2048))
	fours := 0
	const trials = 10000

	for _i := 0; _i < trials; _i++ {
		var board Board
		p := s.Spawn(&board, 1)[0]
		if board[p.Row][p.Col] == 4 {
			fours++
		}
	}

	ratio := float64(fours) / trials
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("ratio of 4s = %.3f, want about 0.10", ratio)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	var a, b Board
	NewSpawner(newTestRand(99)).Spawn(&a, 2)
	NewSpawner(newTestRand(99)).Spawn(&b, 2)

	if a != b {
		t.Errorf("same seed should spawn the same tiles:\n%v\nvs\n%v", a, b)
	}
}
