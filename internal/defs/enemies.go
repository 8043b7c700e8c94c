// internal/defs/enemies.go
package defs

import (
	"image/color"
	"math"
)

// EnemyDefinition holds the static data for regular enemies.
type EnemyDefinition struct {
	StartingHealth float64    `yaml:"starting_health"`
	HealthScaling  float64    `yaml:"health_scaling"`
	HealthCap      float64    `yaml:"health_cap"`
	Speed          float64    `yaml:"speed"`
	Reward         int        `yaml:"reward"`
	RewardPerWave  int        `yaml:"reward_per_wave"`
	HitFlashTicks  int        `yaml:"hit_flash_ticks"`
	Color          color.RGBA `yaml:"color"`
}

// HealthForWave: здоровье обычного врага на волне wave:
// min(start * scaling^wave * mult, cap).
func (d EnemyDefinition) HealthForWave(wave int, mult float64) float64 {
	h := d.StartingHealth * math.Pow(d.HealthScaling, float64(wave)) * mult
	return math.Min(h, d.HealthCap)
}

// RewardForWave returns the kill reward before the difficulty multiplier.
func (d EnemyDefinition) RewardForWave(wave int) int {
	return d.Reward + d.RewardPerWave*wave
}

// BossDefinition holds the boss multipliers and state machine thresholds.
type BossDefinition struct {
	HealthMultiplier      float64               `yaml:"health_multiplier"`
	Reward                int                   `yaml:"reward"`
	ShieldFraction        float64               `yaml:"shield_fraction"`
	EnrageThreshold       float64               `yaml:"enrage_threshold"`
	EnrageSpeedMultiplier float64               `yaml:"enrage_speed_multiplier"`
	Color                 color.RGBA            `yaml:"color"`
	Special               SpecialBossDefinition `yaml:"special"`
}

// SpecialBossDefinition — усиленный босс на конкретной волне.
type SpecialBossDefinition struct {
	Wave             int        `yaml:"wave"`
	HealthMultiplier float64    `yaml:"health_multiplier"`
	SpeedMultiplier  float64    `yaml:"speed_multiplier"`
	Reward           int        `yaml:"reward"`
	Color            color.RGBA `yaml:"color"`
}

// BaseDefinition: база игрока в конце пути.
type BaseDefinition struct {
	Position          Vec     `yaml:"position"`
	Radius            float64 `yaml:"radius"`
	Margin            float64 `yaml:"margin"`
	MaxHealth         int     `yaml:"max_health"`
	ArrivalDamage     int     `yaml:"arrival_damage"`
	BossArrivalDamage int     `yaml:"boss_arrival_damage"`
	ShakeTicks        int     `yaml:"shake_ticks"`
}

// DifficultyDefinition scales enemies and the economy.
type DifficultyDefinition struct {
	HealthMultiplier     float64 `yaml:"health_multiplier"`
	MoneyMultiplier      float64 `yaml:"money_multiplier"`
	EnemySpeedMultiplier float64 `yaml:"enemy_speed_multiplier"`
	StartingMoney        int     `yaml:"starting_money"`
}
