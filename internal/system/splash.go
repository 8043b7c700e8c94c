// internal/system/splash.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/pathmap"
)

// SplashSystem наносит урон по области вокруг точки попадания.
// Прямой видимости не требуется: задеты все враги в радиусе.
type SplashSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewSplashSystem(ecs *entity.ECS, damage *DamageSystem) *SplashSystem {
	return &SplashSystem{ecs: ecs, damage: damage}
}

// Resolve applies splashDamage*(1-d/radius) to every live enemy within
// radius of center, except primary. Returns the number of enemies hit.
func (s *SplashSystem) Resolve(center component.Position, radius, splashDamage float64, primary types.EntityID) int {
	if radius <= 0 || splashDamage <= 0 {
		return 0
	}
	hits := 0
	for _, id := range s.ecs.EnemyIDs() {
		if id == primary {
			continue
		}
		enemy, ok := s.ecs.Enemy(id)
		if !ok || !enemy.Alive() {
			continue
		}
		amount := SplashFalloff(pathmap.Distance(center, enemy.Pos), radius, splashDamage)
		if amount <= 0 {
			continue
		}
		s.damage.ApplySplash(id, amount)
		hits++
	}
	return hits
}

// SplashFalloff считает линейное затухание: полный урон в центре, ноль на границе
// и дальше.
func SplashFalloff(distance, radius, splashDamage float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	return splashDamage * (1 - distance/radius)
}
