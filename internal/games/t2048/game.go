package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// GameID is the registry identifier of the 2048 game.
const GameID = "2048"

// Game adapts the Engine to the platform's tick-based game interface.
type Game struct {
	engine *Engine
	seed   int64
	tick   uint64

	// inputs journals every effective input for replay
	inputs []byte

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a new 2048 game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.engine = NewEngine(rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.inputs = g.inputs[:0]
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (29 wide, 13 tall) + HUD (4 lines) + footer
	minW := 31
	minH := 19
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Undo wins over a move pressed in the same tick
	if in.Has(core.ActionUndo) {
		if g.engine.Undo() {
			g.inputs = append(g.inputs, inputUndo)
		}
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if ok {
		g.Move(dir)
	}

	return core.StepResult{State: g.State()}
}

// directionFor picks the move requested by an input frame.
// At most one move is processed per tick.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// Move applies a move to the engine and journals it if it took effect.
func (g *Game) Move(dir Direction) MoveResult {
	result := g.engine.Move(dir)
	if result.Moved {
		g.inputs = append(g.inputs, directionSymbol(dir))
	}
	return result
}

// Engine exposes the underlying rule engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Record returns the journal of the current run.
func (g *Game) Record() core.RunRecord {
	return core.RunRecord{
		Seed:     g.seed,
		Inputs:   string(g.inputs),
		Score:    g.engine.Score(),
		MaxTile:  g.engine.MaxTile(),
		Moves:    g.engine.HistoryLen(),
		Finished: g.engine.GameOver(),
	}
}
