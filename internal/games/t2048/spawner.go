package t2048

import "math/rand"

// spawn2Probability is the chance that a spawned tile is a 2 rather than a 4.
const spawn2Probability = 0.9

// Spawner places new tiles on empty cells using an injected random source.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn places up to count tiles on distinct empty cells of board.
// Each cell is chosen uniformly among the cells still empty in this batch
// and receives a 2 (90%) or a 4 (10%). Returns the positions filled, in
// placement order.
func (s *Spawner) Spawn(board *Board, count int) []Pos {
	remaining := EmptyCells(*board)
	placed := make([]Pos, 0, count)

	for k := 0; k < count && len(remaining) > 0; k++ {
		idx := s.rng.Intn(len(remaining))
		cell := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)

		value := 4
		if s.rng.Float64() < spawn2Probability {
			value = 2
		}

		board[cell.Row][cell.Col] = value
		placed = append(placed, cell)
	}

	return placed
}
