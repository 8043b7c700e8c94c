// internal/system/damage.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/types"
)

// DamageSystem — единая точка нанесения урона. Прямые попадания и урон
// по области проходят через неё, поэтому щит и ярость босса работают
// одинаково для любого источника.
type DamageSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	enemyDef        defs.EnemyDefinition
	bossDef         defs.BossDefinition
}

func NewDamageSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, lib *defs.Library) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		enemyDef:        lib.Enemy,
		bossDef:         lib.Boss,
	}
}

// ApplyDamage наносит урон врагу id и возвращает true, если именно этот
// удар его убил. Мёртвые и несуществующие цели игнорируются.
func (s *DamageSystem) ApplyDamage(id types.EntityID, amount float64) bool {
	return s.apply(id, amount, false)
}

// ApplySplash is ApplyDamage for area damage; it only differs in the
// DamageDealt event payload.
func (s *DamageSystem) ApplySplash(id types.EntityID, amount float64) bool {
	return s.apply(id, amount, true)
}

func (s *DamageSystem) apply(id types.EntityID, amount float64, splash bool) bool {
	enemy, ok := s.ecs.Enemy(id)
	if !ok || !enemy.Alive() || amount <= 0 {
		return false
	}
	enemy.HitFlash = s.enemyDef.HitFlashTicks
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DamageDealt,
		Data: event.DamageData{Target: id, Amount: amount, Splash: splash},
	})

	if enemy.IsBoss() && enemy.Boss.ShieldActive {
		s.damageShield(id, enemy, amount)
		return false
	}

	enemy.Health -= amount
	if enemy.IsBoss() {
		s.checkEnrage(id, enemy)
	}
	if enemy.Health <= 0 && !enemy.Killed {
		enemy.Killed = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyData{ID: id, Kind: enemy.Kind, Reward: enemy.Reward},
		})
		return true
	}
	return false
}

// damageShield: пока щит активен, весь урон уходит в щит. Излишек сверх
// остатка щита сгорает и до здоровья не доходит.
func (s *DamageSystem) damageShield(id types.EntityID, enemy *component.Enemy, amount float64) {
	boss := enemy.Boss
	boss.Shield -= amount
	if boss.Shield > 0 {
		return
	}
	boss.Shield = 0
	boss.ShieldActive = false
	s.setPhase(id, enemy, component.PhaseUnshielded)
}

// checkEnrage переводит босса в фазу 3 один раз. Скорость считается
// от BaseSpeed, а не умножается на текущую.
func (s *DamageSystem) checkEnrage(id types.EntityID, enemy *component.Enemy) {
	if enemy.Boss.Phase != component.PhaseUnshielded {
		return
	}
	if enemy.Health >= enemy.MaxHealth*s.bossDef.EnrageThreshold {
		return
	}
	s.setPhase(id, enemy, component.PhaseEnraged)
}

func (s *DamageSystem) setPhase(id types.EntityID, enemy *component.Enemy, to component.BossPhase) {
	from := enemy.Boss.Phase
	if to <= from {
		return
	}
	enemy.Boss.Phase = to
	enemy.Speed = PhaseSpeed(enemy.BaseSpeed, to, s.bossDef)
	logger.Logger.Info("boss phase changed", "id", id, "from", from, "to", to, "speed", enemy.Speed)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BossPhaseChanged,
		Data: event.BossPhaseData{ID: id, From: from, To: to, Speed: enemy.Speed},
	})
}

// PhaseSpeed returns the boss speed for a phase.
func PhaseSpeed(base float64, phase component.BossPhase, def defs.BossDefinition) float64 {
	if phase == component.PhaseEnraged {
		return base * def.EnrageSpeedMultiplier
	}
	return base
}
