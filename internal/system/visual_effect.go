// internal/system/visual_effect.go
package system

import (
	"go-path-defense/internal/entity"
	"go-path-defense/internal/utils"
)

const (
	bossSpin        = 0.02
	specialBossSpin = 0.04
)

// VisualEffectSystem управляет визуальными таймерами: вспышки урона,
// тряска базы, вращение босса.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemy(id)
		if !ok {
			continue
		}
		if enemy.HitFlash > 0 {
			enemy.HitFlash--
		}
		if enemy.IsBoss() {
			spin := bossSpin
			if enemy.Boss.Special {
				spin = specialBossSpin
			}
			enemy.Boss.Angle = utils.NormalizeAngle(enemy.Boss.Angle + spin)
		}
	}
	if s.ecs.Economy.BaseShake > 0 {
		s.ecs.Economy.BaseShake--
	}
}
