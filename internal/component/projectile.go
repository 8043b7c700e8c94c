// internal/component/projectile.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Projectile представляет летящий снаряд. Урон и параметры взрыва
// фиксируются в момент выстрела.
type Projectile struct {
	OwnerID      types.EntityID
	TargetID     types.EntityID
	TowerType    defs.TowerType
	Pos          Position
	Speed        float64
	Damage       float64
	SplashDamage float64
	SplashRange  float64
	Dead         bool
}
