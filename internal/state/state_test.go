package state

import (
	"errors"
	"fmt"
	"testing"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
)

func newTestMachine(t *testing.T) *StateMachine {
	t.Helper()
	lib, err := defs.Parse(defs.DefaultYAML())
	if err != nil {
		t.Fatalf("parse defaults: %v", err)
	}
	lib.Demo.Towers = 2
	sm := NewStateMachine(app.NewSession(lib))
	sm.DemoSeed = 7
	return sm
}

func newTestGameState(t *testing.T, sm *StateMachine) *GameState {
	t.Helper()
	g, err := sm.newGame()
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	gs := NewGameState(sm, g)
	sm.SetState(gs)
	return gs
}

func TestNewGameHook(t *testing.T) {
	sm := newTestMachine(t)
	var seen []*app.Game
	sm.OnNewGame = func(g *app.Game) { seen = append(seen, g) }
	gs := newTestGameState(t, sm)
	if len(seen) != 1 || seen[0] != gs.GetGame() {
		t.Fatalf("OnNewGame not called with the new game: %v", seen)
	}
}

func TestClickPlacesAndSelects(t *testing.T) {
	sm := newTestMachine(t)
	gs := newTestGameState(t, sm)
	g := gs.GetGame()

	if gs.selectedType != defs.TowerBasic {
		t.Fatalf("default selection = %q, want basic", gs.selectedType)
	}
	gs.handleClick(100, 340)
	if g.ECS.TowerCount() != 1 {
		t.Fatalf("expected a tower after the click, have %d", g.ECS.TowerCount())
	}
	if g.ECS.Economy.Money != 50 {
		t.Errorf("money = %d, want 50", g.ECS.Economy.Money)
	}

	// Клик рядом с башней выбирает её, а не строит новую
	gs.handleClick(110, 345)
	if g.ECS.TowerCount() != 1 {
		t.Fatal("click on a tower must not build")
	}
	if g.SelectedTower() == 0 || !gs.infoPanel.IsVisible {
		t.Fatal("expected the tower to be selected and the panel shown")
	}

	gs.clearSelection()
	if g.SelectedTower() != 0 {
		t.Error("selection should be cleared")
	}
}

func TestClickRejections(t *testing.T) {
	sm := newTestMachine(t)
	gs := newTestGameState(t, sm)
	g := gs.GetGame()

	gs.handleClick(100, 310)
	if g.ECS.TowerCount() != 0 || gs.message != "Too close to the path" {
		t.Fatalf("expected path rejection, towers=%d message=%q", g.ECS.TowerCount(), gs.message)
	}
	if gs.messageFrames != messageFrames {
		t.Errorf("message should be shown for %d frames", messageFrames)
	}

	gs.handleClick(100, 340)
	gs.handleClick(300, 560)
	if g.ECS.TowerCount() != 1 || gs.message != "Not enough money" {
		t.Fatalf("expected funds rejection, towers=%d message=%q", g.ECS.TowerCount(), gs.message)
	}

	// Клики по полосе HUD в поле не попадают
	g.ECS.Economy.Money = 1000
	gs.handleClick(300, 5)
	if g.ECS.TowerCount() != 1 {
		t.Error("click on the HUD must not build")
	}
}

func TestSelectTypeAndUpgrade(t *testing.T) {
	sm := newTestMachine(t)
	gs := newTestGameState(t, sm)
	g := gs.GetGame()

	gs.selectType(defs.TowerSplash)
	if gs.selectedType != defs.TowerBasic || gs.message != "Tower is locked" {
		t.Fatalf("locked type must not be selected: %q %q", gs.selectedType, gs.message)
	}
	gs.selectType(defs.TowerSniper)
	if gs.selectedType != defs.TowerSniper {
		t.Fatalf("selectedType = %q", gs.selectedType)
	}

	g.ECS.Economy.Money = 1000
	gs.selectType(defs.TowerBasic)
	gs.handleClick(100, 340)
	gs.handleClick(100, 340)
	id := g.SelectedTower()
	if id == 0 {
		t.Fatal("expected selection")
	}
	gs.upgrade(defs.UpgradeDamage)
	tower, _ := g.ECS.Tower(id)
	if tower.Level(defs.UpgradeDamage) != 1 || tower.Stats.Damage != 30 {
		t.Errorf("upgrade not applied: level %d damage %v", tower.Level(defs.UpgradeDamage), tower.Stats.Damage)
	}

	gs.upgrade(defs.UpgradeSplashDamage)
	if gs.message == "" {
		t.Error("expected a message for a non-applicable upgrade")
	}
}

func TestStartOrCallWave(t *testing.T) {
	sm := newTestMachine(t)
	gs := newTestGameState(t, sm)
	g := gs.GetGame()

	gs.startOrCallWave()
	if !g.Started() || g.ECS.Wave.Number != 1 {
		t.Fatalf("expected wave 1 to start, wave %d", g.ECS.Wave.Number)
	}
	gs.startOrCallWave()
	if gs.message != "Wave already in progress" {
		t.Errorf("message = %q", gs.message)
	}
}

func TestCycleSpeedUpdatesButton(t *testing.T) {
	sm := newTestMachine(t)
	gs := newTestGameState(t, sm)
	gs.cycleSpeed()
	if gs.GetGame().SpeedMultiplier != 2 || gs.speedButton.Speed != 2 {
		t.Fatalf("speed = %d, button = %d", gs.GetGame().SpeedMultiplier, gs.speedButton.Speed)
	}
	gs.cycleSpeed()
	if gs.GetGame().SpeedMultiplier != 1 || gs.speedButton.Speed != 1 {
		t.Fatalf("speed should wrap to 1, got %d", gs.GetGame().SpeedMultiplier)
	}
}

func TestPauseAndResume(t *testing.T) {
	sm := newTestMachine(t)
	gs := newTestGameState(t, sm)
	g := gs.GetGame()
	g.StartGame()

	gs.pause()
	pause, ok := sm.Current().(*PauseState)
	if !ok || !g.IsPaused() {
		t.Fatalf("expected pause state, got %T paused=%v", sm.Current(), g.IsPaused())
	}
	tick := g.Tick()
	g.Update()
	if g.Tick() != tick {
		t.Error("paused game must not advance")
	}

	pause.resume()
	if sm.Current() != State(gs) || g.IsPaused() {
		t.Fatalf("expected to resume the game state, got %T", sm.Current())
	}
}

func TestQuitToMenuSettles(t *testing.T) {
	sm := newTestMachine(t)
	gs := newTestGameState(t, sm)
	g := gs.GetGame()
	g.ECS.Economy.Earned = 40
	before := sm.Session.Credits

	gs.pause()
	sm.Current().(*PauseState).quitToMenu()
	if sm.Session.Credits != before+40 {
		t.Errorf("credits = %d, want %d", sm.Session.Credits, before+40)
	}
	menu, ok := sm.Current().(*MenuState)
	if !ok {
		t.Fatalf("expected menu, got %T", sm.Current())
	}
	if menu.demo == nil || !menu.demo.Game.Started() {
		t.Error("menu should run a demo game in the background")
	}
}

func TestGameOverRestart(t *testing.T) {
	sm := newTestMachine(t)
	gs := newTestGameState(t, sm)
	g := gs.GetGame()
	g.StartGame()
	g.ECS.Economy.Earned = 25
	g.ECS.Economy.BaseHealth = 0
	g.Step()
	if !g.GameOver() {
		t.Fatal("expected game over")
	}
	before := sm.Session.Credits

	over := NewGameOverState(sm, gs)
	sm.SetState(over)
	if over.credited != 25 || sm.Session.Credits != before+25 {
		t.Fatalf("credited %d, credits %d", over.credited, sm.Session.Credits)
	}

	over.restart()
	next, ok := sm.Current().(*GameState)
	if !ok {
		t.Fatalf("expected a game state, got %T", sm.Current())
	}
	if next.GetGame() != g || g.GameOver() || g.Started() {
		t.Error("restart should reset the same game")
	}
	if sm.Session.Credits != before+25 {
		t.Error("restart must not credit the same earnings twice")
	}
}

func TestMenuBuyAndDifficulty(t *testing.T) {
	sm := newTestMachine(t)
	sm.Session.Credits = 1200
	menu := NewMenuState(sm)
	sm.SetState(menu)
	if len(menu.shop) != 2 {
		t.Fatalf("expected two locked towers in the shop, got %d", len(menu.shop))
	}
	if menu.shop[0].Disabled || !menu.shop[1].Disabled {
		t.Error("only affordable unlocks should be enabled")
	}

	menu.buy(defs.TowerSplash)
	if !sm.Session.Loadout.Unlocked(defs.TowerSplash) || sm.Session.Credits != 200 {
		t.Fatalf("buy failed: credits %d", sm.Session.Credits)
	}
	if len(menu.shop) != 1 {
		t.Errorf("shop should shrink after a purchase, have %d", len(menu.shop))
	}
	menu.buy(defs.TowerMissile)
	if menu.message != app.ErrInsufficientCredits.Error() {
		t.Errorf("message = %q", menu.message)
	}

	menu.cycleDifficulty()
	if sm.Session.Difficulty != defs.DifficultyHard {
		t.Errorf("difficulty = %q, want hard", sm.Session.Difficulty)
	}
	menu.startGame()
	gs, ok := sm.Current().(*GameState)
	if !ok {
		t.Fatalf("expected a game state, got %T", sm.Current())
	}
	if gs.GetGame().Difficulty != defs.DifficultyHard || gs.GetGame().ECS.Economy.Money != 100 {
		t.Error("game should use the session difficulty")
	}
}

func TestNextDifficulty(t *testing.T) {
	d := defs.DifficultyEasy
	var seen []defs.Difficulty
	for i := 0; i < 3; i++ {
		d = nextDifficulty(d)
		seen = append(seen, d)
	}
	if fmt.Sprint(seen) != "[normal hard easy]" {
		t.Errorf("cycle = %v", seen)
	}
}

func TestPlacementMessage(t *testing.T) {
	wrapped := fmt.Errorf("%w: %w", app.ErrInvalidPlacement, app.ErrTooCloseToBase)
	if got := placementMessage(wrapped); got != "Too close to the base" {
		t.Errorf("got %q", got)
	}
	other := errors.New("boom")
	if got := placementMessage(other); got != "boom" {
		t.Errorf("got %q", got)
	}
}

func TestWaveLabel(t *testing.T) {
	tests := []struct {
		snap app.Snapshot
		want string
	}{
		{app.Snapshot{}, "SPACE to start"},
		{app.Snapshot{Started: true, Wave: 3, WavePhase: component.WaveSpawning, WaveActive: true, Spawned: 2, ToSpawn: 8}, "Wave 3 2/8"},
		{app.Snapshot{Started: true, Wave: 10, WavePhase: component.WaveSpawning, WaveActive: true, BossWave: true}, "Wave 10 BOSS"},
		{app.Snapshot{Started: true, Wave: 3, WavePhase: component.WaveWaitingForClear}, "Wave 3"},
		{app.Snapshot{Started: true, Wave: 3, WavePhase: component.WaveCountdown, Countdown: 61}, "Wave 4 in 2s"},
	}
	for _, tt := range tests {
		if got := waveLabel(tt.snap); got != tt.want {
			t.Errorf("waveLabel(%+v) = %q, want %q", tt.snap, got, tt.want)
		}
	}
}
