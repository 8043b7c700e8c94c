// internal/app/demo.go
package app

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/utils"
)

// Demo это режим заставки: случайные башни на сиде, волны идут сами.
// Один и тот же сид даёт одну и ту же партию.
type Demo struct {
	Game *Game
	rng  *utils.PRNGService
	def  defs.DemoDefinition
}

// Summary: итог прогона без окна.
type Summary struct {
	Seed       int64
	Ticks      uint64
	Wave       int
	Kills      int
	Leaked     int
	Money      int
	Earned     int
	BaseHealth int
	Towers     int
	GameOver   bool
}

// NewDemo builds an attract-mode game. seed 0 picks a time-based seed.
func NewDemo(lib *defs.Library, difficulty defs.Difficulty, seed int64) (*Demo, error) {
	loadout := NewLoadout(lib.Shop)
	loadout.UnlockAll()
	g, err := NewGame(lib, difficulty, loadout)
	if err != nil {
		return nil, err
	}
	d := &Demo{
		Game: g,
		rng:  utils.NewPRNGService(seed),
		def:  lib.Demo,
	}
	d.setup()
	return d, nil
}

// Seed returns the seed in use.
func (d *Demo) Seed() int64 {
	return d.rng.Seed()
}

// Update runs one frame and restarts the demo after a game over.
func (d *Demo) Update() {
	if d.Game.IsPaused() {
		return
	}
	for i := 0; i < d.Game.SpeedMultiplier; i++ {
		d.step()
		if d.Game.GameOver() {
			d.Game.Reset()
			d.setup()
			return
		}
	}
}

// Run advances up to ticks simulation ticks, stopping early on game over.
func (d *Demo) Run(ticks int) Summary {
	for i := 0; i < ticks && !d.Game.GameOver(); i++ {
		d.step()
	}
	return d.Summary()
}

func (d *Demo) Summary() Summary {
	econ := d.Game.ECS.Economy
	return Summary{
		Seed:       d.Seed(),
		Ticks:      d.Game.Tick(),
		Wave:       d.Game.ECS.Wave.Number,
		Kills:      econ.Kills,
		Leaked:     econ.Leaked,
		Money:      econ.Money,
		Earned:     econ.Earned,
		BaseHealth: econ.BaseHealth,
		Towers:     d.Game.ECS.TowerCount(),
		GameOver:   d.Game.GameOver(),
	}
}

func (d *Demo) setup() {
	if d.def.Money > 0 {
		d.Game.ECS.Economy.Money = d.def.Money
	}
	placed := 0
	for i := 0; i < d.def.Towers; i++ {
		if d.placeRandomTower() {
			placed++
		}
	}
	logger.Logger.Debug("demo ready", "seed", d.Seed(), "towers", placed)
	d.Game.StartGame()
}

// placeRandomTower ставит башню рядом с дорогой: случайная точка пути,
// смещённая в случайную сторону чуть дальше минимального отступа.
func (d *Demo) placeRandomTower() bool {
	path := d.Game.Lib.PathMap()
	rules := d.Game.Lib.Placement
	for attempt := 0; attempt < d.def.Attempts; attempt++ {
		anchor := path.PointAt(d.rng.Between(0, path.Length()))
		angle := d.rng.Between(0, 2*math.Pi)
		offset := d.rng.Between(rules.PathClearance, rules.PathClearance+rules.TowerSpacing)
		pos := component.Position{
			X: anchor.X + math.Cos(angle)*offset,
			Y: anchor.Y + math.Sin(angle)*offset,
		}
		if pos.X < 0 || pos.Y < 0 || pos.X > d.def.Bounds.X || pos.Y > d.def.Bounds.Y {
			continue
		}
		towerType := d.rng.ChooseWeighted(d.def.TowerTable)
		if _, err := d.Game.PlaceTower(pos, towerType); err == nil {
			return true
		}
	}
	return false
}

func (d *Demo) step() {
	d.Game.Step()
	if d.def.UpgradeOdds <= 0 || d.rng.Float64() >= d.def.UpgradeOdds {
		return
	}
	ids := d.Game.ECS.TowerIDs()
	if len(ids) == 0 {
		return
	}
	id := ids[d.rng.Intn(len(ids))]
	stat := defs.AllUpgradeStats[d.rng.Intn(len(defs.AllUpgradeStats))]
	// неподходящие и недоступные улучшения просто пропускаются
	_ = d.Game.ApplyUpgrade(id, stat)
}
