// component/tower.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

type Tower struct {
	Type        defs.TowerType
	Pos         Position
	Stats       TowerStats
	Levels      map[defs.UpgradeStat]int // уровень улучшения 0..3 по каждому параметру
	Cooldown    float64                  // тиков до следующего выстрела
	TargetID    types.EntityID           // слабая ссылка, 0 если цели нет
	Projectiles []types.EntityID         // снаряды, выпущенные этой башней
	Rotation    float64                  // угол на цель, для отрисовки
	Spent       int                      // стоимость башни и улучшений
}

// Level returns the upgrade level of stat.
func (t *Tower) Level(stat defs.UpgradeStat) int {
	return t.Levels[stat]
}
