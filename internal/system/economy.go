// internal/system/economy.go
package system

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logger"
)

// EconomySystem начисляет награды за убийства и списывает здоровье базы
// за прорвавшихся врагов.
type EconomySystem struct {
	ecs  *entity.ECS
	base defs.BaseDefinition
}

func NewEconomySystem(ecs *entity.ECS, base defs.BaseDefinition, startingMoney int, eventDispatcher *event.Dispatcher) *EconomySystem {
	s := &EconomySystem{ecs: ecs, base: base}
	ecs.Economy.Money = startingMoney
	ecs.Economy.BaseHealth = base.MaxHealth
	ecs.Economy.MaxBaseHealth = base.MaxHealth
	eventDispatcher.SubscribeAll(s, event.EnemyKilled, event.EnemyReachedBase)
	return s
}

func (s *EconomySystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyData)
	if !ok {
		return
	}
	econ := s.ecs.Economy
	switch e.Type {
	case event.EnemyKilled:
		econ.Money += data.Reward
		econ.Earned += data.Reward
		econ.Kills++
	case event.EnemyReachedBase:
		econ.BaseHealth -= data.Damage
		if econ.BaseHealth < 0 {
			econ.BaseHealth = 0
		}
		econ.BaseShake = s.base.ShakeTicks
		econ.Leaked++
		logger.Logger.Debug("enemy reached base", "id", data.ID, "damage", data.Damage, "base", econ.BaseHealth)
	}
}

// CanAfford reports whether money covers cost.
func (s *EconomySystem) CanAfford(cost int) bool {
	return s.ecs.Economy.Money >= cost
}

// Spend списывает cost, если хватает денег.
func (s *EconomySystem) Spend(cost int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.ecs.Economy.Money -= cost
	return true
}

// ArrivalDamage returns how much a leaked enemy hurts the base.
func (s *EconomySystem) ArrivalDamage(boss bool) int {
	if boss {
		return s.base.BossArrivalDamage
	}
	return s.base.ArrivalDamage
}

// BaseDestroyed reports whether the game is lost.
func (s *EconomySystem) BaseDestroyed() bool {
	return s.ecs.Economy.BaseHealth <= 0
}
