// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/pathmap"
)

// UpgradeOption описывает одну строку панели улучшений.
type UpgradeOption struct {
	Stat       defs.UpgradeStat
	Level      int
	Value      float64 // текущее значение параметра
	NextValue  float64 // значение после покупки; равно Value, если Maxed
	Cost       int
	Maxed      bool
	Affordable bool
}

// PlaceTower attempts to place a tower of towerType at pos. On success the
// cost is deducted and the new tower's id returned.
func (g *Game) PlaceTower(pos component.Position, towerType defs.TowerType) (types.EntityID, error) {
	def, err := g.canPlaceTower(pos, towerType)
	if err != nil {
		return 0, err
	}
	if !g.EconomySystem.Spend(def.Cost) {
		return 0, ErrInsufficientFunds
	}

	levels := make(map[defs.UpgradeStat]int, len(defs.AllUpgradeStats))
	tower := &component.Tower{
		Type:   towerType,
		Pos:    pos,
		Stats:  g.towerStats(def, levels),
		Levels: levels,
		Spent:  def.Cost,
	}
	id := g.ECS.AddTower(tower)

	logger.Logger.Debug("tower placed", "id", id, "type", towerType, "x", pos.X, "y", pos.Y)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: id, Type: towerType, Cost: def.Cost},
	})
	return id, nil
}

// CanPlaceTower reports why a tower of towerType could not be placed at pos,
// or nil if it could.
func (g *Game) CanPlaceTower(pos component.Position, towerType defs.TowerType) error {
	_, err := g.canPlaceTower(pos, towerType)
	return err
}

func (g *Game) canPlaceTower(pos component.Position, towerType defs.TowerType) (defs.TowerDefinition, error) {
	if g.gameOver {
		return defs.TowerDefinition{}, ErrGameOver
	}
	def, ok := g.Lib.Tower(towerType)
	if !ok {
		return def, fmt.Errorf("%w: %q", ErrUnknownTower, towerType)
	}
	if !g.Loadout.Unlocked(towerType) {
		return def, fmt.Errorf("%w: %s", ErrTowerLocked, towerType)
	}
	if g.ECS.TowerCount() >= g.Lib.Placement.MaxTowers {
		return def, ErrTowerLimit
	}
	if !g.EconomySystem.CanAfford(def.Cost) {
		return def, ErrInsufficientFunds
	}
	if err := g.ValidatePlacement(pos); err != nil {
		return def, err
	}
	return def, nil
}

// ValidatePlacement checks only the geometry: clearance from every path
// segment, spacing from other towers and distance from the base. The
// boundary distance itself is allowed.
func (g *Game) ValidatePlacement(pos component.Position) error {
	rules := g.Lib.Placement
	if g.Lib.PathMap().DistanceTo(pos) < rules.PathClearance {
		return fmt.Errorf("%w: %w", ErrInvalidPlacement, ErrTooCloseToPath)
	}
	for _, id := range g.ECS.TowerIDs() {
		tower, _ := g.ECS.Tower(id)
		if pathmap.Distance(pos, tower.Pos) < rules.TowerSpacing {
			return fmt.Errorf("%w: %w", ErrInvalidPlacement, ErrTooCloseToTower)
		}
	}
	base := g.Lib.Base
	if pathmap.Distance(pos, base.Position.Point()) < base.Radius+base.Margin {
		return fmt.Errorf("%w: %w", ErrInvalidPlacement, ErrTooCloseToBase)
	}
	return nil
}

// SelectTower selects the first tower (in placement order) within the
// select radius of pos. A miss clears the selection.
func (g *Game) SelectTower(pos component.Position) (types.EntityID, bool) {
	for _, id := range g.ECS.TowerIDs() {
		tower, _ := g.ECS.Tower(id)
		if pathmap.Distance(pos, tower.Pos) <= g.Lib.Placement.SelectRadius {
			g.selectedTower = id
			return id, true
		}
	}
	g.selectedTower = 0
	return 0, false
}

// SelectedTower returns the selected tower id, or 0.
func (g *Game) SelectedTower() types.EntityID {
	if _, ok := g.ECS.Tower(g.selectedTower); !ok {
		return 0
	}
	return g.selectedTower
}

func (g *Game) ClearSelection() {
	g.selectedTower = 0
}

// ApplyUpgrade raises one stat of a tower by a level. The new value is
// always base * multiplier[level], never compounded on the current value.
func (g *Game) ApplyUpgrade(id types.EntityID, stat defs.UpgradeStat) error {
	if g.gameOver {
		return ErrGameOver
	}
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTowerNotFound, id)
	}
	def, _ := g.Lib.Tower(tower.Type)
	cost, err := g.upgradeCost(def, tower, stat)
	if err != nil {
		return err
	}
	if !g.EconomySystem.Spend(cost) {
		return ErrInsufficientFunds
	}

	tower.Levels[stat]++
	tower.Stats = g.towerStats(def, tower.Levels)
	tower.Spent += cost

	logger.Logger.Debug("tower upgraded", "id", id, "stat", stat, "level", tower.Levels[stat], "cost", cost)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{ID: id, Type: tower.Type, Stat: stat, Level: tower.Levels[stat], Cost: cost},
	})
	return nil
}

// UpgradeOptions lists every upgrade that applies to the tower, in a fixed
// stat order.
func (g *Game) UpgradeOptions(id types.EntityID) ([]UpgradeOption, error) {
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTowerNotFound, id)
	}
	def, _ := g.Lib.Tower(tower.Type)
	var options []UpgradeOption
	for _, stat := range defs.AllUpgradeStats {
		if !upgradeApplies(def, stat) {
			continue
		}
		table, _ := g.Lib.UpgradeTable(tower.Type, stat)
		level := tower.Level(stat)
		opt := UpgradeOption{
			Stat:  stat,
			Level: level,
			Value: def.BaseStat(stat) * table.Multiplier(level),
		}
		opt.NextValue = opt.Value
		if cost, ok := table.CostFor(level); ok && level < defs.MaxUpgradeLevel {
			opt.Cost = cost
			opt.NextValue = def.BaseStat(stat) * table.Multiplier(level+1)
			opt.Affordable = g.EconomySystem.CanAfford(cost)
		} else {
			opt.Maxed = true
		}
		options = append(options, opt)
	}
	return options, nil
}

func (g *Game) upgradeCost(def defs.TowerDefinition, tower *component.Tower, stat defs.UpgradeStat) (int, error) {
	if !stat.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, stat)
	}
	if !upgradeApplies(def, stat) {
		return 0, fmt.Errorf("%w: %s on %s", ErrUpgradeNotApplicable, stat, tower.Type)
	}
	table, ok := g.Lib.UpgradeTable(tower.Type, stat)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, stat)
	}
	level := tower.Level(stat)
	cost, ok := table.CostFor(level)
	if !ok || level >= defs.MaxUpgradeLevel {
		return 0, ErrUpgradeMaxed
	}
	return cost, nil
}

// Урон по области улучшается только у башен, у которых он есть.
func upgradeApplies(def defs.TowerDefinition, stat defs.UpgradeStat) bool {
	if stat == defs.UpgradeSplashDamage {
		return def.HasSplash()
	}
	return stat.Valid()
}

// towerStats пересчитывает все параметры от базовых значений типа.
func (g *Game) towerStats(def defs.TowerDefinition, levels map[defs.UpgradeStat]int) component.TowerStats {
	stat := func(s defs.UpgradeStat) float64 {
		table, _ := g.Lib.UpgradeTable(def.Type, s)
		return def.BaseStat(s) * table.Multiplier(levels[s])
	}
	return component.TowerStats{
		Damage:       stat(defs.UpgradeDamage),
		Range:        stat(defs.UpgradeRange),
		FireRate:     stat(defs.UpgradeFireRate),
		SplashDamage: stat(defs.UpgradeSplashDamage),
		SplashRange:  def.SplashRange,
	}
}
