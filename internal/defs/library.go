// internal/defs/library.go
package defs

import (
	"errors"
	"fmt"

	"go-path-defense/pkg/pathmap"
)

// Library: полный набор статических определений игры. После загрузки
// не изменяется; все системы получают его только для чтения.
type Library struct {
	Path         []Vec                               `yaml:"path"`
	Base         BaseDefinition                      `yaml:"base"`
	Placement    PlacementDefinition                 `yaml:"placement"`
	Towers       []TowerDefinition                   `yaml:"towers"`
	Upgrades     map[UpgradeStat]UpgradeTable        `yaml:"upgrades"`
	Projectile   ProjectileDefinition                `yaml:"projectile"`
	Enemy        EnemyDefinition                     `yaml:"enemy"`
	Boss         BossDefinition                      `yaml:"boss"`
	Waves        WaveDefinition                      `yaml:"waves"`
	Difficulties map[Difficulty]DifficultyDefinition `yaml:"difficulties"`
	Shop         ShopDefinition                      `yaml:"shop"`
	Speeds       []int                               `yaml:"speeds"`
	Demo         DemoDefinition                      `yaml:"demo"`

	towers map[TowerType]TowerDefinition
	path   *pathmap.Path
}

// Tower returns the definition for t.
func (l *Library) Tower(t TowerType) (TowerDefinition, bool) {
	def, ok := l.towers[t]
	return def, ok
}

// PathMap returns the shared, immutable enemy path.
func (l *Library) PathMap() *pathmap.Path {
	return l.path
}

// Difficulty returns the preset for d.
func (l *Library) Difficulty(d Difficulty) (DifficultyDefinition, bool) {
	def, ok := l.Difficulties[d]
	return def, ok
}

// UpgradeTable возвращает таблицу улучшений для параметра stat башни t.
// Переопределение в самой башне имеет приоритет над общей таблицей.
func (l *Library) UpgradeTable(t TowerType, stat UpgradeStat) (UpgradeTable, bool) {
	if def, ok := l.towers[t]; ok {
		if table, ok := def.Upgrades[stat]; ok {
			return table, true
		}
	}
	table, ok := l.Upgrades[stat]
	return table, ok
}

// SpeedAllowed reports whether multiplier is one of the configured game speeds.
func (l *Library) SpeedAllowed(multiplier int) bool {
	for _, s := range l.Speeds {
		if s == multiplier {
			return true
		}
	}
	return false
}

// index builds the lookup tables derived from the YAML lists.
func (l *Library) index() error {
	l.towers = make(map[TowerType]TowerDefinition, len(l.Towers))
	for _, def := range l.Towers {
		if _, dup := l.towers[def.Type]; dup {
			return fmt.Errorf("duplicate tower type %q", def.Type)
		}
		l.towers[def.Type] = def
	}
	points := make([]pathmap.Point, len(l.Path))
	for i, v := range l.Path {
		points[i] = v.Point()
	}
	path, err := pathmap.NewPath(points)
	if err != nil {
		return err
	}
	l.path = path
	return nil
}

// Validate checks the invariants the simulation relies on.
func (l *Library) Validate() error {
	var errs []error
	if len(l.Path) < 2 {
		errs = append(errs, pathmap.ErrTooFewPoints)
	}
	for _, def := range l.Towers {
		if !def.Type.Valid() {
			errs = append(errs, fmt.Errorf("tower %q: unknown type", def.Type))
			continue
		}
		if def.Cost < 0 || def.Damage < 0 || def.Range <= 0 || def.FireRate <= 0 {
			errs = append(errs, fmt.Errorf("tower %q: cost, damage, range and fire_rate must be positive", def.Type))
		}
		for stat, table := range def.Upgrades {
			if err := validateUpgradeTable(stat, table); err != nil {
				errs = append(errs, fmt.Errorf("tower %q: %w", def.Type, err))
			}
		}
	}
	for _, stat := range AllUpgradeStats {
		table, ok := l.Upgrades[stat]
		if !ok {
			errs = append(errs, fmt.Errorf("upgrade table for %q is missing", stat))
			continue
		}
		if err := validateUpgradeTable(stat, table); err != nil {
			errs = append(errs, err)
		}
	}
	for stat := range l.Upgrades {
		if !stat.Valid() {
			errs = append(errs, fmt.Errorf("unknown upgrade stat %q", stat))
		}
	}
	if l.Projectile.Speed <= 0 {
		errs = append(errs, errors.New("projectile speed must be positive"))
	}
	if l.Enemy.Speed <= 0 || l.Enemy.StartingHealth <= 0 || l.Enemy.HealthCap <= 0 {
		errs = append(errs, errors.New("enemy speed, starting_health and health_cap must be positive"))
	}
	if l.Boss.ShieldFraction < 0 || l.Boss.EnrageThreshold < 0 || l.Boss.EnrageSpeedMultiplier <= 0 {
		errs = append(errs, errors.New("boss thresholds must be non-negative and enrage multiplier positive"))
	}
	if l.Waves.EnemiesPerWave <= 0 || l.Waves.SpawnIntervalTicks <= 0 || l.Waves.IntermissionTicks < 0 {
		errs = append(errs, errors.New("waves: enemies_per_wave and spawn_interval_ticks must be positive"))
	}
	if l.Base.MaxHealth <= 0 {
		errs = append(errs, errors.New("base max_health must be positive"))
	}
	if l.Placement.MaxTowers <= 0 {
		errs = append(errs, errors.New("placement: max_towers must be positive"))
	}
	if l.Placement.PathClearance < 0 || l.Placement.TowerSpacing < 0 || l.Placement.SelectRadius < 0 {
		errs = append(errs, errors.New("placement: path_clearance, tower_spacing and select_radius must not be negative"))
	}
	if _, ok := l.Difficulties[DifficultyNormal]; !ok {
		errs = append(errs, errors.New("difficulty \"normal\" is required"))
	}
	for name, d := range l.Difficulties {
		if err := validateDifficulty(d); err != nil {
			errs = append(errs, fmt.Errorf("difficulty %q: %w", name, err))
		}
	}
	for _, t := range l.Shop.Initial {
		if !t.Valid() {
			errs = append(errs, fmt.Errorf("shop: unknown initial tower %q", t))
		}
	}
	for t := range l.Shop.Unlocks {
		if !t.Valid() {
			errs = append(errs, fmt.Errorf("shop: unknown unlockable tower %q", t))
		}
	}
	for _, w := range l.Demo.TowerTable {
		if !w.Tower.Valid() {
			errs = append(errs, fmt.Errorf("demo: unknown tower %q", w.Tower))
		}
	}
	if len(l.Speeds) == 0 {
		errs = append(errs, errors.New("at least one game speed is required"))
	}
	for _, s := range l.Speeds {
		if s <= 0 {
			errs = append(errs, fmt.Errorf("invalid game speed %d", s))
		}
	}
	return errors.Join(errs...)
}

func validateUpgradeTable(stat UpgradeStat, table UpgradeTable) error {
	if len(table.Multipliers) != MaxUpgradeLevel+1 {
		return fmt.Errorf("upgrade %q: need %d multipliers, got %d", stat, MaxUpgradeLevel+1, len(table.Multipliers))
	}
	if len(table.Costs) != MaxUpgradeLevel {
		return fmt.Errorf("upgrade %q: need %d costs, got %d", stat, MaxUpgradeLevel, len(table.Costs))
	}
	for level, m := range table.Multipliers {
		if m <= 0 {
			return fmt.Errorf("upgrade %q: multiplier for level %d must be positive, got %v", stat, level, m)
		}
	}
	for i, c := range table.Costs {
		if c < 0 {
			return fmt.Errorf("upgrade %q: cost for level %d must not be negative, got %d", stat, i+1, c)
		}
	}
	return nil
}

// validateDifficulty: нулевой множитель даёт врагов без здоровья и скорости.
func validateDifficulty(d DifficultyDefinition) error {
	if d.HealthMultiplier <= 0 || d.MoneyMultiplier <= 0 || d.EnemySpeedMultiplier <= 0 {
		return errors.New("health_multiplier, money_multiplier and enemy_speed_multiplier must be positive")
	}
	if d.StartingMoney < 0 {
		return fmt.Errorf("starting_money must not be negative, got %d", d.StartingMoney)
	}
	return nil
}
