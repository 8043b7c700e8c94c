// internal/event/types.go
package event

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

const (
	EnemySpawned     EventType = "EnemySpawned"     // Враг появился
	EnemyKilled      EventType = "EnemyKilled"      // Здоровье врага упало до нуля
	EnemyReachedBase EventType = "EnemyReachedBase" // Враг дошёл до базы
	EnemyRemoved     EventType = "EnemyRemoved"     // Враг убран с поля (любая причина)
	BossPhaseChanged EventType = "BossPhaseChanged"
	WaveStarted      EventType = "WaveStarted"
	WaveEnded        EventType = "WaveEnded" // Волна закончилась
	TowerPlaced      EventType = "TowerPlaced"
	TowerUpgraded    EventType = "TowerUpgraded"
	DamageDealt      EventType = "DamageDealt"
	GameOver         EventType = "GameOver"
)

// EnemyData сопровождает события врагов.
type EnemyData struct {
	ID     types.EntityID
	Kind   component.EnemyKind
	Reward int
	Damage int // урон базе для EnemyReachedBase
}

// BossPhaseData: смена фазы босса.
type BossPhaseData struct {
	ID    types.EntityID
	From  component.BossPhase
	To    component.BossPhase
	Speed float64
}

// WaveData: номер волны и её тип.
type WaveData struct {
	Number int
	Boss   bool
	Count  int
}

// TowerData: постройка или улучшение башни.
type TowerData struct {
	ID    types.EntityID
	Type  defs.TowerType
	Stat  defs.UpgradeStat
	Level int
	Cost  int
}

// DamageData: нанесённый урон.
type DamageData struct {
	Target types.EntityID
	Amount float64
	Splash bool
}
