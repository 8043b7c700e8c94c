// internal/state/pause_state.go
package state

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию; симуляция не продвигается.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.resume()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if s.previousState.pauseButton.IsClicked(ebiten.CursorPosition()) {
			s.resume()
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.quitToMenu()
	}
}

func (s *PauseState) resume() {
	game := s.previousState.GetGame()
	if game.IsPaused() {
		game.TogglePause()
	}
	s.stateMachine.SetState(s.previousState)
}

// quitToMenu засчитывает заработок партии и возвращает в меню.
func (s *PauseState) quitToMenu() {
	s.stateMachine.Session.Settle(s.previousState.GetGame())
	s.stateMachine.SetState(NewMenuState(s.stateMachine))
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, config.HUDHeight, config.ScreenWidth, config.ScreenHeight-config.HUDHeight, config.OverlayColor, false)
	ui.DrawOutlinedText(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2-20, 1, config.TextLightColor, config.TextDarkColor)
	ui.DrawCenteredText(screen, "P / Esc to resume, Q to quit to menu", config.ScreenWidth/2, config.ScreenHeight/2+4, config.TextMutedColor)
}

func (s *PauseState) Exit() {}
