// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const messageFrames = 120

// Клавиши выбора башни по порядку AllTowerTypes.
var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// Клавиши улучшений выбранной башни по порядку AllUpgradeStats.
var upgradeKeys = []ebiten.Key{ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV}

// GameState: состояние игры
type GameState struct {
	sm              *StateMachine
	game            *app.Game
	infoPanel       *ui.InfoPanel
	speedButton     *ui.SpeedButton
	pauseButton     *ui.PauseButton
	indicator       *ui.StateIndicator
	waveIndicator   *ui.WaveIndicator
	healthIndicator *ui.BaseHealthIndicator
	selectedType    defs.TowerType
	message         string
	messageFrames   int
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	gs := &GameState{
		sm:              sm,
		game:            g,
		infoPanel:       ui.NewInfoPanel(),
		speedButton:     ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton:     ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
		indicator:       ui.NewStateIndicator(config.HUDPadding+config.IndicatorRadius, config.HUDHeight/2, config.IndicatorRadius),
		waveIndicator:   ui.NewWaveIndicator(config.WaveIndicatorX, config.WaveIndicatorY),
		healthIndicator: ui.NewBaseHealthIndicator(150, 9),
	}
	if available := g.Loadout.Available(); len(available) > 0 {
		gs.selectedType = available[0]
	}
	gs.speedButton.SetSpeed(g.SpeedMultiplier)
	return gs
}

// GetGame возвращает текущую партию.
func (g *GameState) GetGame() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(g.game.IsPaused())
}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startOrCallWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.cycleSpeed()
	}
	for i, key := range towerKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(defs.AllTowerTypes) {
			g.selectType(defs.AllTowerTypes[i])
		}
	}
	if g.game.SelectedTower() != 0 {
		for i, key := range upgradeKeys {
			if inpututil.IsKeyJustPressed(key) {
				g.upgrade(defs.AllUpgradeStats[i])
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.clearSelection()
	}

	g.game.Update()
	g.syncPanel()
	if g.messageFrames > 0 {
		g.messageFrames--
	}

	if g.game.GameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// handleClick: сначала UI, затем выбор башни, затем постройка.
func (g *GameState) handleClick(x, y int) {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	switch {
	case g.speedButton.IsClicked(x, y):
		if g.speedButton.Ready(cooldown) {
			g.cycleSpeed()
		}
		return
	case g.pauseButton.IsClicked(x, y):
		if g.pauseButton.Ready(cooldown) {
			g.pause()
		}
		return
	case g.infoPanel.Contains(x, y):
		if stat, ok := g.infoPanel.Click(x, y); ok {
			g.upgrade(stat)
		}
		return
	case y < config.HUDHeight:
		return
	}

	pos := component.Position{X: float64(x), Y: float64(y)}
	if id, ok := g.game.SelectTower(pos); ok {
		g.infoPanel.SetTarget(id)
		return
	}
	g.infoPanel.Hide()
	g.place(pos)
}

func (g *GameState) place(pos component.Position) {
	if g.selectedType == "" {
		return
	}
	id, err := g.game.PlaceTower(pos, g.selectedType)
	if err != nil {
		g.say(placementMessage(err))
		logger.Logger.Debug("placement rejected", "type", g.selectedType, "x", pos.X, "y", pos.Y, "err", err)
		return
	}
	logger.Logger.Debug("tower built", "id", id, "type", g.selectedType)
}

// placementMessage — короткий текст для игрока по ошибке постройки.
func placementMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrTooCloseToPath):
		return "Too close to the path"
	case errors.Is(err, app.ErrTooCloseToTower):
		return "Too close to another tower"
	case errors.Is(err, app.ErrTooCloseToBase):
		return "Too close to the base"
	case errors.Is(err, app.ErrInsufficientFunds):
		return "Not enough money"
	case errors.Is(err, app.ErrTowerLimit):
		return "Tower limit reached"
	case errors.Is(err, app.ErrTowerLocked):
		return "Tower is locked"
	case errors.Is(err, app.ErrGameOver):
		return "Game over"
	}
	return err.Error()
}

func (g *GameState) selectType(t defs.TowerType) {
	if !g.game.Loadout.Unlocked(t) {
		g.say("Tower is locked")
		return
	}
	g.selectedType = t
}

func (g *GameState) upgrade(stat defs.UpgradeStat) {
	id := g.game.SelectedTower()
	if id == 0 {
		return
	}
	if err := g.game.ApplyUpgrade(id, stat); err != nil {
		switch {
		case errors.Is(err, app.ErrInsufficientFunds):
			g.say("Not enough money")
		case errors.Is(err, app.ErrUpgradeMaxed):
			g.say("Already at max level")
		default:
			g.say(err.Error())
		}
	}
}

func (g *GameState) startOrCallWave() {
	if !g.game.Started() {
		g.game.StartGame()
		return
	}
	if !g.game.CallNextWave() {
		g.say("Wave already in progress")
	}
}

func (g *GameState) cycleSpeed() {
	g.speedButton.SetSpeed(g.game.CycleSpeed())
}

func (g *GameState) pause() {
	g.game.TogglePause()
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) clearSelection() {
	g.game.ClearSelection()
	g.infoPanel.Hide()
}

// syncPanel держит панель в согласии с выбором в игре.
func (g *GameState) syncPanel() {
	g.infoPanel.Update()
	id := g.game.SelectedTower()
	if id == 0 {
		g.infoPanel.Hide()
		return
	}
	options, err := g.game.UpgradeOptions(id)
	if err != nil {
		g.infoPanel.Hide()
		return
	}
	g.infoPanel.SetOptions(options)
}

func (g *GameState) say(msg string) {
	g.message = msg
	g.messageFrames = messageFrames
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.sm.Renderer.Draw(screen, snap)
	g.drawPreview(screen)
	g.drawHUD(screen, snap)
	g.drawPalette(screen, snap)

	if snap.Selected != 0 {
		for _, t := range snap.Towers {
			if t.ID == snap.Selected {
				def, _ := g.game.Lib.Tower(t.Type)
				g.infoPanel.Draw(screen, t, def.Name)
			}
		}
	}
	if g.messageFrames > 0 {
		ui.DrawCenteredText(screen, g.message, config.ScreenWidth/2, config.ScreenHeight-60, config.BaseDamagedColor)
	}
}

func (g *GameState) drawPreview(screen *ebiten.Image) {
	if g.selectedType == "" || g.game.SelectedTower() != 0 {
		return
	}
	x, y := ebiten.CursorPosition()
	if y < config.HUDHeight || y > config.ScreenHeight || x < 0 || x > config.ScreenWidth {
		return
	}
	def, ok := g.game.Lib.Tower(g.selectedType)
	if !ok {
		return
	}
	pos := component.Position{X: float64(x), Y: float64(y)}
	g.sm.Renderer.DrawPlacementPreview(screen, pos, def, g.game.CanPlaceTower(pos, g.selectedType) == nil)
}

func (g *GameState) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)
	g.indicator.Draw(screen, snap.WavePhase)
	ui.DrawText(screen, fmt.Sprintf("$%d", snap.Money), 30, 7, config.MoneyColor)
	g.healthIndicator.Draw(screen, snap.BaseHealth, snap.MaxBaseHealth)
	ui.DrawText(screen, waveLabel(snap), 420, 7, config.TextLightColor)
	ui.DrawText(screen, fmt.Sprintf("K:%d L:%d E:%d", snap.Kills, snap.Leaked, snap.OnField), 560, 7, config.TextMutedColor)
	if snap.OnField > 0 {
		// Полоска продвижения переднего врага к базе
		vector.DrawFilledRect(screen, 0, config.HUDHeight-2, float32(config.ScreenWidth*snap.LeadProgress), 2, config.BaseDamagedColor, false)
	}

	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, snap.Wave, snap.BossWave)
}

// waveLabel: строка волны для HUD.
func waveLabel(snap app.Snapshot) string {
	if !snap.Started {
		return "SPACE to start"
	}
	if snap.WavePhase == component.WaveCountdown {
		secs := (snap.Countdown + config.TPS - 1) / config.TPS
		return fmt.Sprintf("Wave %d in %ds", snap.Wave+1, secs)
	}
	if snap.BossWave {
		return fmt.Sprintf("Wave %d BOSS", snap.Wave)
	}
	if snap.WaveActive {
		return fmt.Sprintf("Wave %d %d/%d", snap.Wave, snap.Spawned, snap.ToSpawn)
	}
	return fmt.Sprintf("Wave %d", snap.Wave)
}

func (g *GameState) drawPalette(screen *ebiten.Image, snap app.Snapshot) {
	y := config.ScreenHeight - config.LineHeight - config.HUDPadding
	vector.DrawFilledRect(screen, 0, float32(y-4), config.ScreenWidth, float32(config.LineHeight+config.HUDPadding+4), config.HUDColor, false)
	x := config.HUDPadding
	for i, t := range defs.AllTowerTypes {
		def, _ := g.game.Lib.Tower(t)
		label := fmt.Sprintf("[%d] %s $%d", i+1, def.Name, def.Cost)
		clr := def.Color
		switch {
		case !g.game.Loadout.Unlocked(t):
			clr = config.TextMutedColor
			label = fmt.Sprintf("[%d] %s locked", i+1, def.Name)
		case def.Cost > snap.Money:
			clr = config.BaseDamagedColor
		}
		if t == g.selectedType {
			w := ui.TextWidth(label)
			vector.StrokeRect(screen, float32(x-3), float32(y-2), float32(w+6), float32(config.LineHeight), 1, config.TowerStrokeColor, false)
		}
		ui.DrawText(screen, label, x, y, clr)
		x += ui.TextWidth(label) + 24
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
