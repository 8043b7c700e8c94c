// internal/app/game.go
package app

import (
	"fmt"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
)

// Game holds the simulation state and the systems that advance it.
type Game struct {
	Lib                *defs.Library
	Difficulty         defs.Difficulty
	Loadout            *Loadout
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	MovementSystem     *system.MovementSystem
	DamageSystem       *system.DamageSystem
	SplashSystem       *system.SplashSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	WaveSystem         *system.WaveSystem
	EconomySystem      *system.EconomySystem
	VisualEffectSystem *system.VisualEffectSystem
	SpeedMultiplier    int

	difficultyDef defs.DifficultyDefinition
	subscriptions []subscription

	// Game state
	tick          uint64
	started       bool
	gameOver      bool
	isPaused      bool
	selectedTower types.EntityID
	settled       int // сколько заработанного уже переведено в кредиты сессии
}

type subscription struct {
	eventType event.EventType
	listener  event.Listener
}

// NewGame initializes a new game instance. A nil loadout means the shop's
// initial set of towers.
func NewGame(lib *defs.Library, difficulty defs.Difficulty, loadout *Loadout) (*Game, error) {
	diffDef, ok := lib.Difficulty(difficulty)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
	if loadout == nil {
		loadout = NewLoadout(lib.Shop)
	}
	g := &Game{
		Lib:             lib,
		Difficulty:      difficulty,
		Loadout:         loadout,
		SpeedMultiplier: 1,
		difficultyDef:   diffDef,
	}
	g.init()
	return g, nil
}

// init собирает мир заново: свежий ECS, диспетчер и системы.
func (g *Game) init() {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g.ECS = ecs
	g.EventDispatcher = eventDispatcher

	g.EconomySystem = system.NewEconomySystem(ecs, g.Lib.Base, g.difficultyDef.StartingMoney, eventDispatcher)
	g.DamageSystem = system.NewDamageSystem(ecs, eventDispatcher, g.Lib)
	g.SplashSystem = system.NewSplashSystem(ecs, g.DamageSystem)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.DamageSystem, g.SplashSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, g.ProjectileSystem, g.Lib.Projectile.Speed)
	g.MovementSystem = system.NewMovementSystem(ecs, g.Lib.PathMap())
	g.WaveSystem = system.NewWaveSystem(ecs, g.Lib, g.difficultyDef, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	for _, s := range g.subscriptions {
		eventDispatcher.Subscribe(s.eventType, s.listener)
	}

	g.tick = 0
	g.started = false
	g.gameOver = false
	g.isPaused = false
	g.selectedTower = 0
	g.settled = 0
}

// Subscribe registers an outside listener. Unlike subscribing on
// EventDispatcher directly, it survives Reset.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.subscriptions = append(g.subscriptions, subscription{eventType: eventType, listener: listener})
	g.EventDispatcher.Subscribe(eventType, listener)
}

// Unsubscribe снимает слушателя, добавленного через Subscribe. После Reset
// он тоже не вернётся.
func (g *Game) Unsubscribe(eventType event.EventType, listener event.Listener) {
	if _, isFunc := listener.(event.ListenerFunc); isFunc {
		return
	}
	kept := g.subscriptions[:0]
	for _, s := range g.subscriptions {
		if s.eventType == eventType && s.listener == listener {
			continue
		}
		kept = append(kept, s)
	}
	g.subscriptions = kept
	g.EventDispatcher.Unsubscribe(eventType, listener)
}

// Update progresses the game by one rendered frame: SpeedMultiplier full
// simulation ticks.
func (g *Game) Update() {
	if g.isPaused {
		return
	}
	for i := 0; i < g.SpeedMultiplier; i++ {
		g.Step()
	}
}

// Step: один тик симуляции. Порядок фиксирован: движение, уборка
// (урон базе), проверка поражения, башни со снарядами, волны, таймеры.
func (g *Game) Step() {
	if !g.started || g.gameOver {
		return
	}
	g.tick++

	g.MovementSystem.Update()
	g.cleanupDestroyedEntities()
	if g.checkGameOver() {
		return
	}
	g.CombatSystem.Update()
	g.WaveSystem.Update()
	g.VisualEffectSystem.Update()
}

// StartGame starts wave 1 right away. Repeated calls do nothing.
func (g *Game) StartGame() {
	if g.started || g.gameOver {
		return
	}
	g.started = true
	g.WaveSystem.Start()
	logger.Logger.Info("game started", "difficulty", g.Difficulty, "money", g.ECS.Economy.Money)
}

// CallNextWave skips the intermission countdown.
func (g *Game) CallNextWave() bool {
	if !g.started || g.gameOver {
		return false
	}
	return g.WaveSystem.CallNextWave()
}

// SetGameSpeed sets how many ticks run per Update.
func (g *Game) SetGameSpeed(multiplier int) error {
	if !g.Lib.SpeedAllowed(multiplier) {
		return fmt.Errorf("%w: %dx", ErrInvalidSpeed, multiplier)
	}
	g.SpeedMultiplier = multiplier
	return nil
}

// CycleSpeed switches to the next configured speed and returns it.
func (g *Game) CycleSpeed() int {
	speeds := g.Lib.Speeds
	next := speeds[0]
	for i, s := range speeds {
		if s == g.SpeedMultiplier {
			next = speeds[(i+1)%len(speeds)]
			break
		}
	}
	g.SpeedMultiplier = next
	return next
}

// Reset restores the initial state with the same difficulty, loadout and
// speed. Listeners added with Subscribe stay attached.
func (g *Game) Reset() {
	logger.Logger.Info("game reset", "difficulty", g.Difficulty)
	g.init()
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) Started() bool {
	return g.started
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

// Tick returns the number of simulation ticks processed since start.
func (g *Game) Tick() uint64 {
	return g.tick
}

// --- Private Helper Functions ---

// cleanupDestroyedEntities убирает убитых и дошедших до базы врагов.
// Награда за убийство уже начислена в момент смерти; дошедший враг
// бьёт по базе и награды не даёт.
func (g *Game) cleanupDestroyedEntities() {
	for _, id := range g.ECS.EnemyIDs() {
		enemy, ok := g.ECS.Enemy(id)
		if !ok {
			continue
		}
		if enemy.Path.ReachedEnd && !enemy.Killed {
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyReachedBase,
				Data: event.EnemyData{ID: id, Kind: enemy.Kind, Damage: g.EconomySystem.ArrivalDamage(enemy.IsBoss())},
			})
		} else if enemy.Alive() {
			continue
		}
		g.ECS.RemoveEnemy(id)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyRemoved,
			Data: event.EnemyData{ID: id, Kind: enemy.Kind},
		})
	}
}

func (g *Game) checkGameOver() bool {
	if !g.EconomySystem.BaseDestroyed() {
		return false
	}
	g.ECS.Economy.BaseHealth = 0
	g.gameOver = true
	logger.Logger.Warn("base destroyed",
		"wave", g.ECS.Wave.Number,
		"kills", g.ECS.Economy.Kills,
		"leaked", g.ECS.Economy.Leaked,
		"tick", g.tick)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.WaveData{Number: g.ECS.Wave.Number, Boss: g.ECS.Wave.IsBossWave},
	})
	return true
}
