// internal/system/movement.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/pkg/pathmap"
)

// MovementSystem ведёт врагов по общему пути.
type MovementSystem struct {
	ecs  *entity.ECS
	path *pathmap.Path
}

func NewMovementSystem(ecs *entity.ECS, path *pathmap.Path) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path}
}

// Update двигает всех живых врагов в порядке появления.
func (s *MovementSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemy(id)
		if !ok || !enemy.Alive() || enemy.Path.ReachedEnd {
			continue
		}
		Move(enemy, s.path)
	}
}

// Move advances enemy one tick toward the next waypoint. Once the last
// waypoint has been reached the enemy is flagged ReachedEnd and its health
// is forced to zero, so cleanup removes it without a kill reward.
func Move(enemy *component.Enemy, path *pathmap.Path) {
	if enemy.Path.CurrentPoint >= path.LastIndex() {
		enemy.Path.ReachedEnd = true
		enemy.Health = 0
		return
	}
	target, ok := path.Waypoint(enemy.Path.CurrentPoint + 1)
	if !ok {
		enemy.Path.ReachedEnd = true
		enemy.Health = 0
		return
	}
	pos, arrived := pathmap.StepToward(enemy.Pos, target, enemy.Speed)
	enemy.Pos = pos
	if arrived {
		enemy.Path.CurrentPoint++
	}
}
