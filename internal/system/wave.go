// internal/system/wave.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/types"
)

// WaveSystem: планировщик волн:
// Idle -> Spawning -> WaitingForClear -> Countdown -> Spawning ...
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	difficulty      defs.DifficultyDefinition
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, difficulty defs.DifficultyDefinition, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		difficulty:      difficulty,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyRemoved, ws)
	return ws
}

// Start begins wave 1 immediately, without an initial countdown.
func (s *WaveSystem) Start() {
	if s.ecs.Wave.Phase != component.WaveIdle {
		return
	}
	s.beginWave(1)
}

// CallNextWave skips the rest of the intermission. It only works while
// counting down; returns whether a wave was started.
func (s *WaveSystem) CallNextWave() bool {
	wave := s.ecs.Wave
	if wave.Phase != component.WaveCountdown {
		return false
	}
	s.beginWave(wave.Number + 1)
	return true
}

func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	switch wave.Phase {
	case component.WaveSpawning:
		wave.SpawnCounter++
		if wave.SpawnCounter < s.lib.Waves.SpawnIntervalTicks {
			return
		}
		wave.SpawnCounter = 0
		s.spawnEnemy(wave)
		wave.Spawned++
		if wave.Spawned >= wave.ToSpawn {
			wave.Phase = component.WaveWaitingForClear
		}
	case component.WaveWaitingForClear:
		if wave.Alive > 0 {
			return
		}
		logger.Logger.Info("wave cleared", "wave", wave.Number)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WaveData{Number: wave.Number, Boss: wave.IsBossWave, Count: wave.Spawned},
		})
		wave.Phase = component.WaveCountdown
		wave.Countdown = s.lib.Waves.IntermissionTicks
	case component.WaveCountdown:
		wave.Countdown--
		if wave.Countdown <= 0 {
			s.beginWave(wave.Number + 1)
		}
	}
}

func (s *WaveSystem) beginWave(number int) {
	wave := s.ecs.Wave
	wave.Number = number
	wave.Phase = component.WaveSpawning
	wave.Countdown = 0
	wave.Spawned = 0
	wave.SpawnCounter = 0
	wave.IsBossWave = s.lib.Waves.IsBossWave(number)
	wave.ToSpawn = s.lib.Waves.CountFor(number)

	logger.Logger.Info("wave started", "wave", number, "boss", wave.IsBossWave, "enemies", wave.ToSpawn)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: number, Boss: wave.IsBossWave, Count: wave.ToSpawn},
	})
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) types.EntityID {
	var enemy *component.Enemy
	if wave.IsBossWave {
		enemy = NewBoss(s.lib, s.difficulty, wave.Number)
	} else {
		enemy = NewEnemy(s.lib, s.difficulty, wave.Number)
	}
	id := s.ecs.AddEnemy(enemy)
	wave.Alive++
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: id, Kind: enemy.Kind, Reward: enemy.Reward},
	})
	return id
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyRemoved && s.ecs.Wave.Alive > 0 {
		s.ecs.Wave.Alive--
	}
}

// NewEnemy creates a regular enemy for wave at the start of the path.
// Health is min(start*scaling^wave*difficulty, cap).
func NewEnemy(lib *defs.Library, difficulty defs.DifficultyDefinition, wave int) *component.Enemy {
	health := lib.Enemy.HealthForWave(wave, difficulty.HealthMultiplier)
	speed := lib.Enemy.Speed * difficulty.EnemySpeedMultiplier
	return &component.Enemy{
		Kind:      component.KindRegular,
		Wave:      wave,
		Pos:       lib.PathMap().Start(),
		Health:    health,
		MaxHealth: health,
		BaseSpeed: speed,
		Speed:     speed,
		Reward:    scaleReward(lib.Enemy.RewardForWave(wave), difficulty.MoneyMultiplier),
		Color:     lib.Enemy.Color,
	}
}

// NewBoss creates the single enemy of a boss wave. The special wave gets
// its own multipliers and reward.
func NewBoss(lib *defs.Library, difficulty defs.DifficultyDefinition, wave int) *component.Enemy {
	e := NewEnemy(lib, difficulty, wave)
	boss := lib.Boss
	e.Kind = component.KindBoss
	e.MaxHealth *= boss.HealthMultiplier
	e.Reward = scaleReward(boss.Reward, difficulty.MoneyMultiplier)
	e.Color = boss.Color
	special := boss.Special.Wave > 0 && wave == boss.Special.Wave
	if special {
		e.MaxHealth = lib.Enemy.HealthForWave(wave, difficulty.HealthMultiplier) * boss.Special.HealthMultiplier
		e.BaseSpeed *= boss.Special.SpeedMultiplier
		e.Reward = scaleReward(boss.Special.Reward, difficulty.MoneyMultiplier)
		e.Color = boss.Special.Color
	}
	e.Health = e.MaxHealth
	e.Speed = PhaseSpeed(e.BaseSpeed, component.PhaseShielded, boss)
	shield := e.MaxHealth * boss.ShieldFraction
	e.Boss = &component.BossState{
		Shield:       shield,
		MaxShield:    shield,
		ShieldActive: shield > 0,
		Phase:        component.PhaseShielded,
		Special:      special,
	}
	if shield <= 0 {
		e.Boss.Phase = component.PhaseUnshielded
	}
	return e
}

func scaleReward(reward int, mult float64) int {
	if mult <= 0 {
		mult = 1
	}
	return int(math.Round(float64(reward) * mult))
}
