package t2048

import "math/rand"

// initialTiles is the number of tiles placed on a fresh board.
const initialTiles = 2

// historyEntry is a committed (board, score) pair that Undo can restore.
type historyEntry struct {
	board Board
	score int
}

// GameState is the complete mutable state of one game.
// It is only modified through Engine methods.
type GameState struct {
	Board    Board
	Score    int
	GameOver bool

	history []historyEntry
}

// MoveResult describes the outcome of a single Engine.Move call.
type MoveResult struct {
	Moved        bool // Board changed and the move was committed
	Gained       int  // Sum of values produced by merges in this move
	Spawned      Pos  // Cell that received the new tile (valid when Moved)
	SpawnedValue int  // Value of the new tile, 0 if none was placed
	GameOver     bool // Terminal state after the move
}

// Engine owns a GameState and applies the 2048 rules to it.
// It is not safe for concurrent use; callers serialize input.
type Engine struct {
	state   GameState
	spawner *Spawner
}

// NewEngine creates an engine with a fresh game drawn from rng.
func NewEngine(rng *rand.Rand) *Engine {
	e := &Engine{spawner: NewSpawner(rng)}
	e.Restart()
	return e
}

// Restart discards the current game and starts a new one: empty board
// with two spawned tiles, score 0, no history.
func (e *Engine) Restart() {
	e.state = GameState{}
	e.spawner.Spawn(&e.state.Board, initialTiles)
}

// Move slides the board in dir. Ineffective moves and moves after game
// over leave the state untouched.
func (e *Engine) Move(dir Direction) MoveResult {
	if e.state.GameOver {
		return MoveResult{GameOver: true}
	}

	next, gained, changed := Slide(e.state.Board, dir)
	if !changed {
		return MoveResult{}
	}

	e.state.history = append(e.state.history, historyEntry{
		board: e.state.Board,
		score: e.state.Score,
	})

	result := MoveResult{Moved: true, Gained: gained}
	if placed := e.spawner.Spawn(&next, 1); len(placed) > 0 {
		result.Spawned = placed[0]
		result.SpawnedValue = next[placed[0].Row][placed[0].Col]
	}

	e.state.Board = next
	e.state.Score += gained
	e.state.GameOver = IsTerminal(next)
	result.GameOver = e.state.GameOver

	return result
}

// Undo restores the state before the most recent committed move.
// Returns false when there is nothing to undo.
func (e *Engine) Undo() bool {
	n := len(e.state.history)
	if n == 0 {
		return false
	}

	last := e.state.history[n-1]
	e.state.history = e.state.history[:n-1]
	e.state.Board = last.board
	e.state.Score = last.score
	e.state.GameOver = false
	return true
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.state.Board
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.state.Score
}

// GameOver reports whether no move is possible.
func (e *Engine) GameOver() bool {
	return e.state.GameOver
}

// CanUndo reports whether Undo would restore a previous state.
func (e *Engine) CanUndo() bool {
	return len(e.state.history) > 0
}

// HistoryLen returns the number of undoable moves.
func (e *Engine) HistoryLen() int {
	return len(e.state.history)
}

// MaxTile returns the highest tile on the current board.
func (e *Engine) MaxTile() int {
	return MaxTile(e.state.Board)
}
