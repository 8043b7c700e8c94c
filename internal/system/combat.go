package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/pathmap"
)

// towerTurnRate: доля оставшегося угла, на которую башня доворачивает за тик.
const towerTurnRate = 0.25

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	projectiles     *ProjectileSystem
	projectileSpeed float64
}

func NewCombatSystem(ecs *entity.ECS, projectiles *ProjectileSystem, projectileSpeed float64) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		projectiles:     projectiles,
		projectileSpeed: projectileSpeed,
	}
}

// Update: башни действуют в порядке постройки. Каждая сначала ведёт свои
// снаряды, затем перезаряжается, проверяет цель и стреляет.
func (s *CombatSystem) Update() {
	for _, id := range s.ecs.TowerIDs() {
		tower, ok := s.ecs.Tower(id)
		if !ok {
			continue
		}
		s.projectiles.UpdateOwned(tower)

		if tower.Cooldown > 0 {
			tower.Cooldown--
		}
		if !s.targetValid(tower) {
			tower.TargetID = s.FindTarget(tower)
		}
		if tower.TargetID == 0 {
			continue
		}
		s.aim(tower)
		if tower.Cooldown > 0 {
			continue
		}
		s.fire(id, tower)
	}
}

// targetValid: цель существует, жива и всё ещё в радиусе.
func (s *CombatSystem) targetValid(tower *component.Tower) bool {
	enemy, ok := s.ecs.Enemy(tower.TargetID)
	if !ok || !enemy.Alive() {
		return false
	}
	return pathmap.Distance(tower.Pos, enemy.Pos) <= tower.Stats.Range
}

// FindTarget returns the nearest live enemy within range. Ties go to the
// enemy that spawned first. Returns 0 when nothing is in range.
func (s *CombatSystem) FindTarget(tower *component.Tower) types.EntityID {
	var nearest types.EntityID
	minDistance := math.MaxFloat64
	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemy(id)
		if !ok || !enemy.Alive() {
			continue
		}
		d := pathmap.Distance(tower.Pos, enemy.Pos)
		if d <= tower.Stats.Range && d < minDistance {
			minDistance = d
			nearest = id
		}
	}
	return nearest
}

// aim плавно доворачивает ствол на цель. На стрельбу не влияет.
func (s *CombatSystem) aim(tower *component.Tower) {
	target, ok := s.ecs.Enemy(tower.TargetID)
	if !ok {
		return
	}
	angle := math.Atan2(target.Pos.Y-tower.Pos.Y, target.Pos.X-tower.Pos.X)
	tower.Rotation = utils.LerpAngle(tower.Rotation, angle, towerTurnRate)
}

func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower) {
	if _, ok := s.ecs.Enemy(tower.TargetID); !ok {
		return
	}
	tower.Cooldown = tower.Stats.FireRate

	proj := &component.Projectile{
		OwnerID:   towerID,
		TargetID:  tower.TargetID,
		TowerType: tower.Type,
		Pos:       tower.Pos,
		Speed:     s.projectileSpeed,
		Damage:    tower.Stats.Damage,
	}
	if tower.Stats.HasSplash() {
		proj.SplashDamage = tower.Stats.SplashDamage
		proj.SplashRange = tower.Stats.SplashRange
	}
	projID := s.ecs.AddProjectile(proj)
	logger.Logger.Debug("tower fired", "tower", towerID, "target", tower.TargetID, "projectile", projID)
}
