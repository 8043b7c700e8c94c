// internal/defs/types.go
package defs

import "go-path-defense/pkg/pathmap"

// MaxUpgradeLevel — максимальный уровень улучшения одного параметра башни.
const MaxUpgradeLevel = 3

// TowerType defines the kind of a tower. The set is closed: only the
// constants below are accepted by Validate.
type TowerType string

const (
	TowerBasic   TowerType = "basic"
	TowerRapid   TowerType = "rapid"
	TowerSniper  TowerType = "sniper"
	TowerSplash  TowerType = "splash"
	TowerMissile TowerType = "missile"
)

// AllTowerTypes lists tower types in display order.
var AllTowerTypes = []TowerType{TowerBasic, TowerRapid, TowerSniper, TowerSplash, TowerMissile}

// Valid reports whether t is one of the known tower types.
func (t TowerType) Valid() bool {
	for _, known := range AllTowerTypes {
		if t == known {
			return true
		}
	}
	return false
}

// UpgradeStat: параметр башни, который можно улучшать.
type UpgradeStat string

const (
	UpgradeDamage       UpgradeStat = "damage"
	UpgradeRange        UpgradeStat = "range"
	UpgradeFireRate     UpgradeStat = "fire_rate"
	UpgradeSplashDamage UpgradeStat = "splash_damage"
)

// AllUpgradeStats lists upgradeable stats in display order.
var AllUpgradeStats = []UpgradeStat{UpgradeDamage, UpgradeRange, UpgradeFireRate, UpgradeSplashDamage}

// Valid reports whether s is a known upgrade stat.
func (s UpgradeStat) Valid() bool {
	for _, known := range AllUpgradeStats {
		if s == known {
			return true
		}
	}
	return false
}

// Difficulty: пресет сложности.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Vec is a YAML-friendly 2D point.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Point converts v to a pathmap point.
func (v Vec) Point() pathmap.Point {
	return pathmap.Point{X: v.X, Y: v.Y}
}
