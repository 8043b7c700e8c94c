// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-path-defense/internal/config"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог партии. Заработок переводится в кредиты
// сессии при входе.
type GameOverState struct {
	sm       *StateMachine
	previous *GameState
	credited int
}

func NewGameOverState(sm *StateMachine, prev *GameState) *GameOverState {
	return &GameOverState{sm: sm, previous: prev}
}

func (s *GameOverState) Enter() {
	g := s.previous.GetGame()
	s.credited = s.sm.Session.Settle(g)
	logger.Logger.Info("game over",
		"wave", g.ECS.Wave.Number,
		"kills", g.ECS.Economy.Kills,
		"credited", s.credited,
		"credits", s.sm.Session.Credits)
}

func (s *GameOverState) Update() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyM), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm))
	}
}

// restart начинает ту же партию заново на прежней сложности.
func (s *GameOverState) restart() {
	g := s.previous.GetGame()
	s.sm.Session.Restart(g)
	s.sm.SetState(NewGameState(s.sm, g))
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	g := s.previous.GetGame()
	cx := config.ScreenWidth / 2
	y := config.ScreenHeight/2 - 50
	ui.DrawOutlinedText(screen, "GAME OVER", cx, y, 1, config.BaseDamagedColor, config.TextDarkColor)
	lines := []string{
		fmt.Sprintf("Reached wave %d", g.ECS.Wave.Number),
		fmt.Sprintf("Kills %d, leaked %d", g.ECS.Economy.Kills, g.ECS.Economy.Leaked),
		fmt.Sprintf("+%d credits (total %d)", s.credited, s.sm.Session.Credits),
		"R to restart, M for menu",
	}
	for i, line := range lines {
		ui.DrawCenteredText(screen, line, cx, y+30+i*config.LineHeight, config.TextLightColor)
	}
}

func (s *GameOverState) Exit() {}
