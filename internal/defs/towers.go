// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type         TowerType  `yaml:"type"`
	Name         string     `yaml:"name"`
	Cost         int        `yaml:"cost"`
	Damage       float64    `yaml:"damage"`
	Range        float64    `yaml:"range"`
	FireRate     float64    `yaml:"fire_rate"` // тиков между выстрелами, меньше значит быстрее
	SplashDamage float64    `yaml:"splash_damage,omitempty"`
	SplashRange  float64    `yaml:"splash_range,omitempty"`
	Color        color.RGBA `yaml:"color"`
	// Upgrades overrides the global upgrade table for individual stats.
	Upgrades map[UpgradeStat]UpgradeTable `yaml:"upgrades,omitempty"`
}

// HasSplash reports whether projectiles of this tower deal area damage.
func (d TowerDefinition) HasSplash() bool {
	return d.SplashDamage > 0 && d.SplashRange > 0
}

// BaseStat returns the unupgraded value of a stat.
func (d TowerDefinition) BaseStat(stat UpgradeStat) float64 {
	switch stat {
	case UpgradeDamage:
		return d.Damage
	case UpgradeRange:
		return d.Range
	case UpgradeFireRate:
		return d.FireRate
	case UpgradeSplashDamage:
		return d.SplashDamage
	}
	return 0
}

// UpgradeTable: множители по уровням (индекс = уровень 0..3) и цена
// перехода на уровни 1..3.
type UpgradeTable struct {
	Multipliers []float64 `yaml:"multipliers"`
	Costs       []int     `yaml:"costs"`
}

// Multiplier returns the absolute multiplier for level, clamped to the table.
func (u UpgradeTable) Multiplier(level int) float64 {
	if len(u.Multipliers) == 0 {
		return 1
	}
	if level < 0 {
		level = 0
	}
	if level >= len(u.Multipliers) {
		level = len(u.Multipliers) - 1
	}
	return u.Multipliers[level]
}

// CostFor возвращает цену перехода с уровня current на current+1.
func (u UpgradeTable) CostFor(current int) (int, bool) {
	if current < 0 || current >= len(u.Costs) {
		return 0, false
	}
	return u.Costs[current], true
}

// ProjectileDefinition: параметры снарядов.
type ProjectileDefinition struct {
	Speed float64 `yaml:"speed"`
}

// PlacementDefinition holds the tower placement rules.
type PlacementDefinition struct {
	PathClearance float64 `yaml:"path_clearance"`
	TowerSpacing  float64 `yaml:"tower_spacing"`
	MaxTowers     int     `yaml:"max_towers"`
	SelectRadius  float64 `yaml:"select_radius"`
}

// ShopDefinition описывает стартовый набор башен и цены разблокировки.
type ShopDefinition struct {
	Initial []TowerType       `yaml:"initial"`
	Unlocks map[TowerType]int `yaml:"unlocks"`
}
