// internal/state/state.go
package state

import (
	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// State: интерфейс для всех состояний
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine: структура для управления состояниями. Держит общие для
// всех экранов сессию и рендерер.
type StateMachine struct {
	current  State
	Session  *app.Session
	Renderer *render.Renderer
	// OnNewGame вызывается для каждой новой партии (подписка телеметрии).
	OnNewGame func(g *app.Game)
	// DemoSeed: сид заставки в меню; 0, по времени.
	DemoSeed int64
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(session *app.Session) *StateMachine {
	colors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		PathEdgeColor:   config.PathEdgeColor,
		BaseColor:       config.BaseColor,
		DamagedColor:    config.BaseDamagedColor,
		PathWidth:       config.PathWidth,
	}
	return &StateMachine{
		Session:  session,
		Renderer: render.NewRenderer(session.Lib, config.ScreenWidth, config.ScreenHeight, colors),
	}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// newGame starts a session game and hands it to OnNewGame.
func (sm *StateMachine) newGame() (*app.Game, error) {
	g, err := sm.Session.NewGame()
	if err != nil {
		return nil, err
	}
	if sm.OnNewGame != nil {
		sm.OnNewGame(g)
	}
	return g, nil
}
