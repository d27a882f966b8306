package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q should be registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "2048" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestDeterministicReset(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	if g1.Engine().Board() != g2.Engine().Board() {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v",
			g1.Engine().Board(), g2.Engine().Board())
	}
}

func TestStepMapsDirections(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected Direction
	}{
		{core.ActionUp, DirUp},
		{core.ActionDown, DirDown},
		{core.ActionLeft, DirLeft},
		{core.ActionRight, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			g := New()
			g.Reset(testConfig(1))
			g.engine.state = GameState{Board: Board{
				{0, 0, 0, 0},
				{0, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			}}

			g.Step(press(tt.action))

			expected, _, _ := Slide(Board{
				{0, 0, 0, 0},
				{0, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			}, tt.expected)

			// The moved tile must be where Slide puts it
			board := g.Engine().Board()
			for r := 0; r < BoardSize; r++ {
				for c := 0; c < BoardSize; c++ {
					if expected[r][c] != Empty && board[r][c] != expected[r][c] {
						t.Errorf("tile missing at (%d, %d):\n%s", r, c, FormatBoard(board))
					}
				}
			}
			if got := g.Record().Inputs; got != string(directionSymbol(tt.expected)) {
				t.Errorf("journal = %q, want %q", got, string(directionSymbol(tt.expected)))
			}
		})
	}
}

func TestStepIneffectiveMoveNotJournalled(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.engine.state = GameState{Board: Board{{2, 4, 0, 0}}}

	g.Step(press(core.ActionLeft))

	if g.Record().Inputs != "" {
		t.Errorf("journal = %q, want empty", g.Record().Inputs)
	}
	if g.Engine().CanUndo() {
		t.Error("no history should be pushed")
	}
}

func TestStepUndo(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))
	g.engine.state = GameState{Board: Board{{2, 2, 0, 0}}}

	g.Step(press(core.ActionLeft))
	if g.State().Score != 4 {
		t.Fatalf("Score = %d, want 4", g.State().Score)
	}

	g.Step(press(core.ActionUndo))
	if g.State().Score != 0 {
		t.Errorf("Score after undo = %d, want 0", g.State().Score)
	}
	if g.Engine().Board() != (Board{{2, 2, 0, 0}}) {
		t.Errorf("board after undo:\n%s", FormatBoard(g.Engine().Board()))
	}

	// A second undo has nothing to pop and is not journalled
	g.Step(press(core.ActionUndo))
	if got := g.Record().Inputs; got != "LZ" {
		t.Errorf("journal = %q, want %q", got, "LZ")
	}
}

func TestPauseAbsorbsInput(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))
	before := g.Engine().Board()

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		g.Step(press(a))
	}
	if g.Engine().Board() != before {
		t.Error("moves while paused should be ignored")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	cfg := testConfig(3)
	cfg.ScreenW = 20
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("too small screen should report paused")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot State = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resize to a large screen should resume")
	}
}

func TestGameOverState(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))
	g.engine.state = GameState{
		Board: Board{
			{2, 4, 8, 16},
			{32, 64, 128, 256},
			{512, 1024, 2048, 4096},
			{8192, 16384, 32768, 65536},
		},
		GameOver: true,
	}

	g.Step(press(core.ActionLeft))

	state := g.State()
	if !state.GameOver {
		t.Error("State should report game over")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot State = %s, want game_over", g.Snapshot().State)
	}
	if !g.Record().Finished {
		t.Error("Record should be marked finished")
	}
}

func TestResetClearsJournal(t *testing.T) {
	g := New()
	g.Reset(testConfig(4))
	g.engine.state = GameState{Board: Board{{2, 2, 0, 0}}}
	g.Step(press(core.ActionLeft))

	g.Reset(testConfig(5))

	rec := g.Record()
	if rec.Inputs != "" || rec.Seed != 5 || rec.Score != 0 || rec.Moves != 0 {
		t.Errorf("Record after reset = %+v", rec)
	}
}

func TestSnapshot(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	snap := g.Snapshot()

	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
	if snap.Seed != 42 {
		t.Errorf("Snapshot Seed = %d, want 42", snap.Seed)
	}
	if snap.Board != g.Engine().Board() {
		t.Error("Snapshot Board should match engine board")
	}
	if snap.MaxTile != MaxTile(snap.Board) {
		t.Errorf("Snapshot MaxTile = %d", snap.MaxTile)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.engine.state = GameState{Board: Board{
		{2048, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}, Score: 1234}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "Score: 1234", "Best tile: 2048", "Undo: -"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// Tile cells carry their tier color
	found := false
	for y, ny := 0, screen.Height(); y < ny; y++ {
		for x, nx := 0, screen.Width(); x < nx; x++ {
			if screen.GetCell(x, y).Color == core.ColorTile2048 {
				found = true
			}
		}
	}
	if !found {
		t.Error("2048 tile should be drawn with ColorTile2048")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	g.Step(press(core.ActionPause))
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should render PAUSED overlay")
	}

	g.Step(press(core.ActionPause))
	g.engine.state.GameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("finished game should render GAME OVER overlay")
	}

	g.Resize(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small window should render resize hint")
	}
}
