package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/state"
	"go-path-defense/internal/telemetry"
)

var flagSkipMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window. The menu shows a demo game in the background,
lets you pick the difficulty and unlock towers with credits.

Controls:
  Mouse left     - Build the selected tower / select a tower / press buttons
  Mouse right    - Clear the selection
  1-5            - Choose the tower type to build
  Z X C V        - Upgrade damage, range, fire rate, splash of the selected tower
  Space          - Start the game / call the next wave early
  F              - Change game speed
  P/Esc          - Pause
  R              - Restart (after game over)`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start a game right away instead of the menu")
}

// AppGame adapts the state machine to ebiten.Game and feeds telemetry.
type AppGame struct {
	stateMachine *state.StateMachine
	sink         *telemetry.Sink
	listener     *telemetry.Listener
	current      *app.Game
	lastTick     uint64
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	if a.current != nil {
		tick := a.current.Tick()
		ran := tick
		if tick >= a.lastTick {
			ran = tick - a.lastTick
		}
		a.lastTick = tick
		a.sink.Frame(int(ran))
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// attach subscribes telemetry to a new game and applies the speed flag.
func (a *AppGame) attach(g *app.Game) {
	if a.current != nil && a.listener != nil {
		// брошенная партия больше не пишет в телеметрию
		for _, t := range a.listener.EventTypes() {
			a.current.Unsubscribe(t, a.listener)
		}
	}
	listener := telemetry.NewListener(a.sink)
	for _, t := range listener.EventTypes() {
		g.Subscribe(t, listener)
	}
	a.listener = listener
	g.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
		logger.Logger.Debug("telemetry status", "dropped", a.sink.Dropped())
	}))
	if err := g.SetGameSpeed(flagSpeed); err != nil {
		logger.Logger.Warn("speed flag ignored", "err", err)
	}
	a.current = g
	a.lastTick = 0
}

func runPlay(cmd *cobra.Command, args []string) {
	lib, err := loadLibrary()
	if err != nil {
		fail("cannot load definitions", err)
	}

	session := app.NewSession(lib)
	if err := session.SetDifficulty(defs.Difficulty(flagDifficulty)); err != nil {
		fail("bad difficulty", err)
	}

	sink := telemetry.NewSink(config.TelemetryFlushSecs * time.Second)
	defer sink.Close()

	sm := state.NewStateMachine(session)
	sm.DemoSeed = flagSeed
	a := &AppGame{stateMachine: sm, sink: sink}
	sm.OnNewGame = a.attach

	if flagSkipMenu {
		g, err := session.NewGame()
		if err != nil {
			fail("cannot start game", err)
		}
		a.attach(g)
		sm.SetState(state.NewGameState(sm, g))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	logger.Logger.Info("starting", "difficulty", session.Difficulty, "credits", session.Credits)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(a); err != nil {
		fail("game loop stopped", err)
	}
}
