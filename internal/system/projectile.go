// internal/system/projectile.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/pathmap"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
	splash *SplashSystem
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageSystem, splash *SplashSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:    ecs,
		damage: damage,
		splash: splash,
	}
}

// UpdateOwned advances the projectiles fired by one tower. Towers call it
// before they fire, so a fresh projectile first moves on the next tick.
func (s *ProjectileSystem) UpdateOwned(tower *component.Tower) {
	owned := append([]types.EntityID(nil), tower.Projectiles...)
	for _, id := range owned {
		s.Advance(id)
	}
}

// Advance двигает снаряд к текущей позиции цели (самонаведение).
// Если цель уже мертва или удалена, снаряд исчезает без урона.
func (s *ProjectileSystem) Advance(id types.EntityID) {
	proj, ok := s.ecs.Projectile(id)
	if !ok {
		return
	}
	target, ok := s.ecs.Enemy(proj.TargetID)
	if !ok || !target.Alive() {
		s.removeProjectile(id, proj)
		return
	}

	pos, arrived := pathmap.StepToward(proj.Pos, target.Pos, proj.Speed)
	proj.Pos = pos
	if arrived {
		s.hitTarget(id, proj)
	}
}

func (s *ProjectileSystem) hitTarget(id types.EntityID, proj *component.Projectile) {
	target, ok := s.ecs.Enemy(proj.TargetID)
	if !ok {
		s.removeProjectile(id, proj)
		return
	}
	impact := target.Pos
	s.damage.ApplyDamage(proj.TargetID, proj.Damage)
	s.removeProjectile(id, proj)

	if proj.SplashDamage > 0 && proj.SplashRange > 0 {
		s.splash.Resolve(impact, proj.SplashRange, proj.SplashDamage, proj.TargetID)
	}
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID, proj *component.Projectile) {
	proj.Dead = true
	s.ecs.RemoveProjectile(id)
}
