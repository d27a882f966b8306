// Package t2048 implements the 2048 sliding-tile puzzle: a deterministic
// 4x4 merge engine with score tracking, random tile spawning, terminal
// detection and undo, plus the adapter that runs it on the arcade platform.
package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Seed     int64
	Score    int
	Board    Board
	MaxTile  int // Highest tile on board
	Undoable int // Moves that can be taken back
	Inputs   string
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.engine.GameOver():
		state = StateGameOver
	}

	return Snapshot{
		Tick:     g.tick,
		Seed:     g.seed,
		Score:    g.engine.Score(),
		Board:    g.engine.Board(),
		MaxTile:  g.engine.MaxTile(),
		Undoable: g.engine.HistoryLen(),
		Inputs:   string(g.inputs),
		State:    state,
	}
}
