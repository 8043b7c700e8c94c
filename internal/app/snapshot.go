// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// EnemyView — то, что видит отрисовка о враге.
type EnemyView struct {
	ID           types.EntityID
	Kind         component.EnemyKind
	Pos          component.Position
	HealthRatio  float64
	Color        color.RGBA
	Flashing     bool
	Phase        component.BossPhase // 0 для обычных врагов
	ShieldActive bool
	ShieldRatio  float64
	Special      bool
	Angle        float64
	Progress     float64 // доля пройденного пути, 0..1
}

type TowerView struct {
	ID       types.EntityID
	Type     defs.TowerType
	Pos      component.Position
	Range    float64
	Rotation float64
	Color    color.RGBA
	Levels   map[defs.UpgradeStat]int
	Selected bool
}

type ProjectileView struct {
	Pos    component.Position
	Type   defs.TowerType
	Color  color.RGBA
	Splash bool
}

// Snapshot is a read-only copy of everything a renderer or HUD needs.
// Mutating it does not affect the game.
type Snapshot struct {
	Tick          uint64
	Started       bool
	GameOver      bool
	Paused        bool
	Speed         int
	Difficulty    defs.Difficulty
	Wave          int
	WavePhase     component.WavePhase
	Countdown     int
	BossWave      bool
	WaveActive    bool // волна ещё выпускает врагов
	Spawned       int
	ToSpawn       int
	Money         int
	BaseHealth    int
	MaxBaseHealth int
	BaseShake     int
	Kills         int
	Leaked        int
	OnField       int     // врагов на поле
	LeadProgress  float64 // как далеко продвинулся передний враг, 0..1
	Selected      types.EntityID
	Enemies       []EnemyView
	Towers        []TowerView
	Projectiles   []ProjectileView
}

// Snapshot copies the current state, in deterministic order.
func (g *Game) Snapshot() Snapshot {
	econ := g.ECS.Economy
	wave := g.ECS.Wave
	snap := Snapshot{
		Tick:          g.tick,
		Started:       g.started,
		GameOver:      g.gameOver,
		Paused:        g.isPaused,
		Speed:         g.SpeedMultiplier,
		Difficulty:    g.Difficulty,
		Wave:          wave.Number,
		WavePhase:     wave.Phase,
		Countdown:     wave.Countdown,
		BossWave:      wave.IsBossWave,
		WaveActive:    wave.Active(),
		Spawned:       wave.Spawned,
		ToSpawn:       wave.ToSpawn,
		Money:         econ.Money,
		BaseHealth:    econ.BaseHealth,
		MaxBaseHealth: econ.MaxBaseHealth,
		BaseShake:     econ.BaseShake,
		Kills:         econ.Kills,
		Leaked:        econ.Leaked,
		OnField:       g.ECS.EnemyCount(),
		Selected:      g.SelectedTower(),
	}

	for _, id := range g.ECS.EnemyIDs() {
		e, _ := g.ECS.Enemy(id)
		v := EnemyView{
			ID:          id,
			Kind:        e.Kind,
			Pos:         e.Pos,
			HealthRatio: e.HealthRatio(),
			Color:       e.Color,
			Flashing:    e.HitFlash > 0,
			Progress:    g.pathProgress(e),
		}
		if e.Alive() && v.Progress > snap.LeadProgress {
			snap.LeadProgress = v.Progress
		}
		if e.IsBoss() {
			v.Phase = e.Boss.Phase
			v.ShieldActive = e.Boss.ShieldActive
			if e.Boss.MaxShield > 0 {
				v.ShieldRatio = e.Boss.Shield / e.Boss.MaxShield
			}
			v.Special = e.Boss.Special
			v.Angle = e.Boss.Angle
		}
		snap.Enemies = append(snap.Enemies, v)
	}

	for _, id := range g.ECS.TowerIDs() {
		t, _ := g.ECS.Tower(id)
		def, _ := g.Lib.Tower(t.Type)
		levels := make(map[defs.UpgradeStat]int, len(t.Levels))
		for k, v := range t.Levels {
			levels[k] = v
		}
		snap.Towers = append(snap.Towers, TowerView{
			ID:       id,
			Type:     t.Type,
			Pos:      t.Pos,
			Range:    t.Stats.Range,
			Rotation: t.Rotation,
			Color:    def.Color,
			Levels:   levels,
			Selected: id == snap.Selected,
		})
	}

	for _, id := range g.ECS.ProjectileIDs() {
		p, _ := g.ECS.Projectile(id)
		def, _ := g.Lib.Tower(p.TowerType)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Pos:    p.Pos,
			Type:   p.TowerType,
			Color:  def.Color,
			Splash: p.SplashDamage > 0,
		})
	}
	return snap
}

// pathProgress: доля пути, пройденная врагом.
func (g *Game) pathProgress(e *component.Enemy) float64 {
	path := g.Lib.PathMap()
	total := path.Length()
	if total <= 0 {
		return 0
	}
	return path.Progress(e.Path.CurrentPoint, e.Pos) / total
}
