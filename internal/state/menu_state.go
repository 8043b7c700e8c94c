// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что MenuState соответствует интерфейсу State
var _ State = (*MenuState)(nil)

// MenuState это главное меню: выбор сложности, магазин башен и заставка
// с демо-партией на фоне.
type MenuState struct {
	sm         *StateMachine
	demo       *app.Demo
	start      *ui.Button
	difficulty *ui.Button
	shop       []*ui.Button
	shopTypes  []defs.TowerType
	message    string
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {
	demo, err := app.NewDemo(m.sm.Session.Lib, defs.DifficultyNormal, m.sm.DemoSeed)
	if err != nil {
		logger.Logger.Error("demo unavailable", "err", err)
	}
	m.demo = demo
	m.layout()
}

// layout перестраивает кнопки: магазин меняется после каждой покупки.
func (m *MenuState) layout() {
	session := m.sm.Session
	x := (config.ScreenWidth - config.ButtonWidth) / 2
	y := 200
	row := func() image.Rectangle {
		r := image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		y += config.ButtonHeight + 10
		return r
	}

	m.start = ui.NewButton(row(), "Start [Enter]")
	m.difficulty = ui.NewButton(row(), fmt.Sprintf("Difficulty: %s [D]", session.Difficulty))
	y += 20

	m.shop = m.shop[:0]
	m.shopTypes = m.shopTypes[:0]
	for _, t := range defs.AllTowerTypes {
		price, ok := session.Loadout.Price(t)
		if !ok {
			continue
		}
		def, _ := session.Lib.Tower(t)
		b := ui.NewButton(row(), fmt.Sprintf("Unlock %s - %d cr", def.Name, price))
		b.Disabled = session.Credits < price
		m.shop = append(m.shop, b)
		m.shopTypes = append(m.shopTypes, t)
	}
}

func (m *MenuState) Update() {
	if m.demo != nil {
		m.demo.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.startGame()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		m.cycleDifficulty()
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	switch {
	case m.start.IsClicked(x, y):
		m.startGame()
	case m.difficulty.IsClicked(x, y):
		m.cycleDifficulty()
	default:
		for i, b := range m.shop {
			if b.IsClicked(x, y) {
				m.buy(m.shopTypes[i])
				break
			}
		}
	}
}

func (m *MenuState) startGame() {
	g, err := m.sm.newGame()
	if err != nil {
		m.message = err.Error()
		logger.Logger.Error("cannot start game", "err", err)
		return
	}
	m.sm.SetState(NewGameState(m.sm, g))
}

func (m *MenuState) cycleDifficulty() {
	next := nextDifficulty(m.sm.Session.Difficulty)
	if err := m.sm.Session.SetDifficulty(next); err != nil {
		m.message = err.Error()
		return
	}
	m.layout()
}

func (m *MenuState) buy(t defs.TowerType) {
	if err := m.sm.Session.Buy(t); err != nil {
		m.message = err.Error()
		return
	}
	def, _ := m.sm.Session.Lib.Tower(t)
	m.message = def.Name + " unlocked"
	m.layout()
}

// nextDifficulty перебирает пресеты по кругу.
func nextDifficulty(d defs.Difficulty) defs.Difficulty {
	switch d {
	case defs.DifficultyEasy:
		return defs.DifficultyNormal
	case defs.DifficultyNormal:
		return defs.DifficultyHard
	}
	return defs.DifficultyEasy
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	if m.demo != nil {
		m.sm.Renderer.Draw(screen, m.demo.Game.Snapshot())
	} else {
		screen.Fill(config.BackgroundColor)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	ui.DrawOutlinedText(screen, "PATH DEFENSE", config.ScreenWidth/2, 120, 1, config.MoneyColor, config.TextDarkColor)
	ui.DrawCenteredText(screen, fmt.Sprintf("Credits: %d", m.sm.Session.Credits), config.ScreenWidth/2, 150, config.TextLightColor)

	m.start.Draw(screen)
	m.difficulty.Draw(screen)
	for _, b := range m.shop {
		b.Draw(screen)
	}
	if m.message != "" {
		ui.DrawCenteredText(screen, m.message, config.ScreenWidth/2, config.ScreenHeight-40, config.TextMutedColor)
	}
}

func (m *MenuState) Exit() {
	m.demo = nil
}
