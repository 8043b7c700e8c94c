package system

import (
	"math"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
)

type world struct {
	lib        *defs.Library
	ecs        *entity.ECS
	events     *event.Dispatcher
	damage     *DamageSystem
	splash     *SplashSystem
	projectile *ProjectileSystem
	combat     *CombatSystem
	movement   *MovementSystem
	waves      *WaveSystem
	economy    *EconomySystem
	visual     *VisualEffectSystem
	seen       []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	normal, _ := lib.Difficulty(defs.DifficultyNormal)
	w := &world{lib: lib, ecs: entity.NewECS(), events: event.NewDispatcher()}
	w.events.SubscribeAll(event.ListenerFunc(func(e event.Event) { w.seen = append(w.seen, e) }),
		event.EnemyKilled, event.BossPhaseChanged, event.WaveStarted, event.WaveEnded, event.EnemySpawned)
	w.economy = NewEconomySystem(w.ecs, lib.Base, normal.StartingMoney, w.events)
	w.damage = NewDamageSystem(w.ecs, w.events, lib)
	w.splash = NewSplashSystem(w.ecs, w.damage)
	w.projectile = NewProjectileSystem(w.ecs, w.damage, w.splash)
	w.combat = NewCombatSystem(w.ecs, w.projectile, lib.Projectile.Speed)
	w.movement = NewMovementSystem(w.ecs, lib.PathMap())
	w.waves = NewWaveSystem(w.ecs, lib, normal, w.events)
	w.visual = NewVisualEffectSystem(w.ecs)
	return w
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.seen {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (w *world) addEnemy(x, y, health float64) types.EntityID {
	return w.ecs.AddEnemy(&component.Enemy{
		Pos:       component.Position{X: x, Y: y},
		Health:    health,
		MaxHealth: health,
		BaseSpeed: 2,
		Speed:     2,
		Reward:    12,
	})
}

func (w *world) addBoss(t *testing.T, wave int) (types.EntityID, *component.Enemy) {
	t.Helper()
	normal, _ := w.lib.Difficulty(defs.DifficultyNormal)
	b := NewBoss(w.lib, normal, wave)
	return w.ecs.AddEnemy(b), b
}

func (w *world) addTower(x, y float64, stats component.TowerStats) (types.EntityID, *component.Tower) {
	tw := &component.Tower{
		Type:   defs.TowerBasic,
		Pos:    component.Position{X: x, Y: y},
		Stats:  stats,
		Levels: map[defs.UpgradeStat]int{},
	}
	return w.ecs.AddTower(tw), tw
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMoveSnapsToWaypointAndFlagsArrival(t *testing.T) {
	w := newWorld(t)
	path := w.lib.PathMap()
	e := &component.Enemy{Pos: path.Start(), Health: 10, MaxHealth: 10, Speed: 2}

	// первый отрезок 200 px; остаток ровно в speed ещё не считается прибытием
	for i := 0; i < 100; i++ {
		Move(e, path)
	}
	if e.Path.CurrentPoint != 0 || !approx(e.Pos.X, 200) {
		t.Fatalf("after 100 ticks: point=%d pos=%+v", e.Path.CurrentPoint, e.Pos)
	}
	Move(e, path)
	if e.Path.CurrentPoint != 1 || e.Pos != (component.Position{X: 200, Y: 300}) {
		t.Fatalf("expected snap onto waypoint 1, got point=%d pos=%+v", e.Path.CurrentPoint, e.Pos)
	}
	e.Pos = component.Position{X: 200, Y: 101.5}
	Move(e, path)
	if e.Path.CurrentPoint != 2 || e.Pos != (component.Position{X: 200, Y: 100}) {
		t.Fatalf("remaining 1.5 < speed must snap: point=%d pos=%+v", e.Path.CurrentPoint, e.Pos)
	}

	e.Path.CurrentPoint = path.LastIndex()
	e.Pos = path.End()
	Move(e, path)
	if !e.Path.ReachedEnd || e.Health != 0 {
		t.Fatalf("enemy at last waypoint must be flagged: %+v", e.Path)
	}
}

func TestDamageKillsOnceAndCreditsReward(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(100, 100, 30)
	money := w.ecs.Economy.Money

	if w.damage.ApplyDamage(id, 20) {
		t.Fatal("20 damage should not kill a 30 hp enemy")
	}
	e, _ := w.ecs.Enemy(id)
	if e.HitFlash != w.lib.Enemy.HitFlashTicks {
		t.Errorf("hit flash = %d, want %d", e.HitFlash, w.lib.Enemy.HitFlashTicks)
	}
	if !w.damage.ApplyDamage(id, 20) {
		t.Fatal("second hit should kill")
	}
	if w.damage.ApplyDamage(id, 20) {
		t.Fatal("dead enemy cannot be killed twice")
	}
	if got := w.ecs.Economy.Money - money; got != 12 {
		t.Fatalf("reward credited %d, want 12", got)
	}
	if w.count(event.EnemyKilled) != 1 || w.ecs.Economy.Kills != 1 {
		t.Fatalf("expected exactly one kill event")
	}
}

func TestBossShieldAbsorbsWithoutSpillover(t *testing.T) {
	w := newWorld(t)
	id, boss := w.addBoss(t, 10)
	health := boss.Health
	shield := boss.Boss.Shield
	if !approx(shield, boss.MaxHealth*w.lib.Boss.ShieldFraction) {
		t.Fatalf("shield = %v, want %v", shield, boss.MaxHealth*w.lib.Boss.ShieldFraction)
	}

	w.damage.ApplyDamage(id, shield/2)
	if boss.Health != health || !approx(boss.Boss.Shield, shield/2) {
		t.Fatalf("damage below shield: health=%v shield=%v", boss.Health, boss.Boss.Shield)
	}
	if boss.Boss.Phase != component.PhaseShielded {
		t.Fatalf("phase = %v, want shielded", boss.Boss.Phase)
	}

	w.damage.ApplyDamage(id, shield*10)
	if boss.Health != health {
		t.Fatalf("excess shield damage leaked into health: %v -> %v", health, boss.Health)
	}
	if boss.Boss.ShieldActive || boss.Boss.Shield != 0 || boss.Boss.Phase != component.PhaseUnshielded {
		t.Fatalf("shield should be broken: %+v", boss.Boss)
	}
	if w.count(event.BossPhaseChanged) != 1 {
		t.Fatalf("phase events = %d, want 1", w.count(event.BossPhaseChanged))
	}
}

func TestBossEnrageAppliesOnce(t *testing.T) {
	w := newWorld(t)
	id, boss := w.addBoss(t, 10)
	w.damage.ApplyDamage(id, boss.Boss.Shield)
	base := boss.BaseSpeed

	w.damage.ApplyDamage(id, boss.MaxHealth*0.69)
	if boss.Boss.Phase != component.PhaseUnshielded {
		t.Fatalf("31%% health should not enrage, phase=%v", boss.Boss.Phase)
	}
	w.damage.ApplyDamage(id, boss.MaxHealth*0.02)
	if boss.Boss.Phase != component.PhaseEnraged {
		t.Fatalf("29%% health should enrage, phase=%v", boss.Boss.Phase)
	}
	want := base * w.lib.Boss.EnrageSpeedMultiplier
	for i := 0; i < 5; i++ {
		w.damage.ApplyDamage(id, 1)
		if !approx(boss.Speed, want) {
			t.Fatalf("hit %d: speed %v, want %v", i, boss.Speed, want)
		}
	}
	if w.count(event.BossPhaseChanged) != 2 {
		t.Fatalf("phase events = %d, want 2", w.count(event.BossPhaseChanged))
	}
}

func TestBossSplashGoesThroughShield(t *testing.T) {
	w := newWorld(t)
	primary := w.addEnemy(300, 300, 1000)
	_, boss := w.addBoss(t, 10)
	boss.Pos = component.Position{X: 300, Y: 300}
	health := boss.Health

	w.splash.Resolve(component.Position{X: 300, Y: 300}, 50, 8, primary)
	if boss.Health != health || !approx(boss.Boss.Shield, boss.Boss.MaxShield-8) {
		t.Fatalf("splash must hit the shield first: health=%v shield=%v", boss.Health, boss.Boss.Shield)
	}
}

func TestSplashFalloffBoundaries(t *testing.T) {
	w := newWorld(t)
	primary := w.addEnemy(100, 100, 100)
	center := w.addEnemy(100, 100, 100)
	half := w.addEnemy(125, 100, 100)
	edge := w.addEnemy(150, 100, 100)
	far := w.addEnemy(200, 100, 100)

	hits := w.splash.Resolve(component.Position{X: 100, Y: 100}, 50, 8, primary)
	if hits != 2 {
		t.Fatalf("hits = %d, want 2", hits)
	}
	health := func(id types.EntityID) float64 {
		e, _ := w.ecs.Enemy(id)
		return e.Health
	}
	if health(primary) != 100 {
		t.Errorf("primary target took splash damage")
	}
	if !approx(health(center), 92) {
		t.Errorf("distance 0: health %v, want 92", health(center))
	}
	if !approx(health(half), 96) {
		t.Errorf("half radius: health %v, want 96", health(half))
	}
	if health(edge) != 100 || health(far) != 100 {
		t.Errorf("boundary and beyond must be untouched: %v %v", health(edge), health(far))
	}
	if e, _ := w.ecs.Enemy(edge); e.HitFlash != 0 {
		t.Error("zero splash damage must not flash")
	}
}

func TestSplashFalloffFunction(t *testing.T) {
	cases := []struct {
		d, want float64
	}{
		{0, 10},
		{20, 6},
		{50, 0},
		{60, 0},
	}
	for _, c := range cases {
		if got := SplashFalloff(c.d, 50, 10); !approx(got, c.want) {
			t.Errorf("SplashFalloff(%v) = %v, want %v", c.d, got, c.want)
		}
	}
	if SplashFalloff(0, 0, 10) != 0 {
		t.Error("zero radius must deal nothing")
	}
}

func TestFindTargetNearestThenSpawnOrder(t *testing.T) {
	w := newWorld(t)
	_, tower := w.addTower(100, 100, component.TowerStats{Damage: 5, Range: 100, FireRate: 10})
	w.addEnemy(100, 250, 50) // out of range
	first := w.addEnemy(160, 100, 50)
	w.addEnemy(40, 100, 50) // same distance, spawned later
	if got := w.combat.FindTarget(tower); got != first {
		t.Fatalf("FindTarget = %d, want %d", got, first)
	}
	closer := w.addEnemy(110, 100, 50)
	if got := w.combat.FindTarget(tower); got != closer {
		t.Fatalf("FindTarget = %d, want nearest %d", got, closer)
	}
	e, _ := w.ecs.Enemy(closer)
	e.Health = 0
	if got := w.combat.FindTarget(tower); got != first {
		t.Fatalf("dead enemy targeted: %d", got)
	}
}

func TestTowerFiresOnCooldownAndRetargets(t *testing.T) {
	w := newWorld(t)
	towerID, tower := w.addTower(100, 100, component.TowerStats{Damage: 5, Range: 100, FireRate: 10})
	target := w.addEnemy(150, 100, 1000)

	w.combat.Update()
	if tower.TargetID != target || len(tower.Projectiles) != 1 || tower.Cooldown != 10 {
		t.Fatalf("first tick: target=%d projectiles=%d cooldown=%v", tower.TargetID, len(tower.Projectiles), tower.Cooldown)
	}
	proj, _ := w.ecs.Projectile(tower.Projectiles[0])
	if proj.OwnerID != towerID || proj.Pos != tower.Pos {
		t.Fatalf("projectile spawned wrong: %+v", proj)
	}

	for i := 0; i < 9; i++ {
		w.combat.Update()
	}
	if tower.Cooldown != 1 {
		t.Fatalf("cooldown after 9 ticks = %v, want 1", tower.Cooldown)
	}
	w.combat.Update()
	if tower.Cooldown != 10 {
		t.Fatalf("tower should fire every 10 ticks, cooldown=%v", tower.Cooldown)
	}

	e, _ := w.ecs.Enemy(target)
	e.Pos = component.Position{X: 500, Y: 500}
	w.combat.Update()
	if tower.TargetID != 0 {
		t.Fatalf("target left range but is still tracked: %d", tower.TargetID)
	}
}

func TestTowerTurnsTowardTarget(t *testing.T) {
	w := newWorld(t)
	_, tower := w.addTower(100, 100, component.TowerStats{Damage: 1, Range: 200, FireRate: 1000})
	w.addEnemy(100, 200, 1e6) // прямо под башней, угол π/2

	w.combat.Update()
	if want := math.Pi / 2 * towerTurnRate; !approx(tower.Rotation, want) {
		t.Fatalf("rotation after one tick = %v, want %v", tower.Rotation, want)
	}
	for i := 0; i < 100; i++ {
		w.combat.Update()
	}
	if math.Abs(tower.Rotation-math.Pi/2) > 1e-6 {
		t.Fatalf("rotation did not settle on target: %v", tower.Rotation)
	}
}

func TestProjectileHomesAndHits(t *testing.T) {
	w := newWorld(t)
	_, tower := w.addTower(100, 100, component.TowerStats{Damage: 20, Range: 200, FireRate: 1000})
	target := w.addEnemy(150, 100, 100)

	w.combat.Update() // выстрел
	for i := 0; i < 4; i++ {
		w.combat.Update()
	}
	e, _ := w.ecs.Enemy(target)
	if e.Health != 100 {
		t.Fatalf("projectile hit too early: health=%v", e.Health)
	}
	// цель сместилась, снаряд должен догнать
	e.Pos = component.Position{X: 150, Y: 130}
	for i := 0; i < 10 && len(tower.Projectiles) > 0; i++ {
		w.combat.Update()
	}
	if e.Health != 80 {
		t.Fatalf("homing projectile missed: health=%v", e.Health)
	}
	if len(w.ecs.ProjectileIDs()) != 0 {
		t.Fatal("projectile not removed after impact")
	}
}

func TestProjectileDroppedWhenTargetGone(t *testing.T) {
	w := newWorld(t)
	_, tower := w.addTower(100, 100, component.TowerStats{Damage: 20, Range: 200, FireRate: 1000})
	target := w.addEnemy(190, 100, 100)
	other := w.addEnemy(195, 100, 100)

	w.combat.Update()
	if len(tower.Projectiles) != 1 {
		t.Fatal("tower did not fire")
	}
	w.ecs.RemoveEnemy(target)
	w.combat.Update()
	if len(w.ecs.ProjectileIDs()) != 0 {
		t.Fatal("orphan projectile should be dropped")
	}
	if e, _ := w.ecs.Enemy(other); e.Health != 100 {
		t.Fatal("dropped projectile must not damage anyone")
	}
}

func TestSplashProjectileHitsNeighbours(t *testing.T) {
	w := newWorld(t)
	_, tower := w.addTower(100, 100, component.TowerStats{
		Damage: 15, Range: 200, FireRate: 1000, SplashDamage: 8, SplashRange: 50,
	})
	primary := w.addEnemy(115, 100, 100)
	neighbour := w.addEnemy(115, 100, 100)

	for i := 0; i < 4; i++ {
		w.combat.Update()
	}
	if len(tower.Projectiles) != 0 {
		t.Fatal("projectile still in flight")
	}
	p, _ := w.ecs.Enemy(primary)
	n, _ := w.ecs.Enemy(neighbour)
	if p.Health != 85 {
		t.Errorf("primary health = %v, want 85 (no double splash)", p.Health)
	}
	if !approx(n.Health, 92) {
		t.Errorf("neighbour health = %v, want 92", n.Health)
	}
}

func TestNewEnemyHealthScalingAndCap(t *testing.T) {
	w := newWorld(t)
	for _, d := range []defs.Difficulty{defs.DifficultyEasy, defs.DifficultyNormal, defs.DifficultyHard} {
		diff, _ := w.lib.Difficulty(d)
		prev := 0.0
		for wave := 1; wave <= 150; wave++ {
			e := NewEnemy(w.lib, diff, wave)
			if e.MaxHealth < prev {
				t.Fatalf("%s wave %d: health decreased", d, wave)
			}
			if e.MaxHealth > w.lib.Enemy.HealthCap {
				t.Fatalf("%s wave %d: health %v above cap", d, wave, e.MaxHealth)
			}
			prev = e.MaxHealth
		}
	}
	normal, _ := w.lib.Difficulty(defs.DifficultyNormal)
	e := NewEnemy(w.lib, normal, 1)
	if !approx(e.MaxHealth, 55) || e.Reward != 12 || e.Speed != 2 {
		t.Fatalf("wave 1 enemy: %+v", e)
	}
	if e.Pos != w.lib.PathMap().Start() {
		t.Fatalf("enemy must spawn at path start, got %+v", e.Pos)
	}
}

func TestNewBossAndSpecialBoss(t *testing.T) {
	w := newWorld(t)
	normal, _ := w.lib.Difficulty(defs.DifficultyNormal)
	b := NewBoss(w.lib, normal, 10)
	regular := NewEnemy(w.lib, normal, 10)
	if !b.IsBoss() || !approx(b.MaxHealth, regular.MaxHealth*3) || b.Reward != 500 {
		t.Fatalf("boss: %+v", b)
	}
	if b.Boss.Phase != component.PhaseShielded || !b.Boss.ShieldActive || b.Boss.Special {
		t.Fatalf("boss state: %+v", b.Boss)
	}

	sp := NewBoss(w.lib, normal, 100)
	if !sp.Boss.Special || sp.Reward != 2000 || !approx(sp.Speed, 2*0.7) {
		t.Fatalf("special boss: %+v", sp)
	}
	if !approx(sp.MaxHealth, w.lib.Enemy.HealthCap*50) {
		t.Fatalf("special boss health = %v", sp.MaxHealth)
	}

	hard, _ := w.lib.Difficulty(defs.DifficultyHard)
	if got := NewBoss(w.lib, hard, 10).Reward; got != 400 {
		t.Fatalf("hard boss reward = %d, want 400", got)
	}
}

func TestWaveSchedulerLifecycle(t *testing.T) {
	w := newWorld(t)
	wave := w.ecs.Wave

	w.waves.Update()
	if wave.Phase != component.WaveIdle || w.ecs.EnemyCount() != 0 {
		t.Fatal("scheduler must idle before Start")
	}

	w.waves.Start()
	if wave.Number != 1 || wave.Phase != component.WaveSpawning || wave.ToSpawn != 8 {
		t.Fatalf("after Start: %+v", wave)
	}
	for i := 0; i < 59; i++ {
		w.waves.Update()
	}
	if w.ecs.EnemyCount() != 0 {
		t.Fatal("first enemy must wait one spawn interval")
	}
	w.waves.Update()
	if w.ecs.EnemyCount() != 1 {
		t.Fatalf("enemies = %d, want 1", w.ecs.EnemyCount())
	}
	for i := 0; i < 7*60; i++ {
		w.waves.Update()
	}
	if w.ecs.EnemyCount() != 8 || wave.Phase != component.WaveWaitingForClear {
		t.Fatalf("after spawning: enemies=%d phase=%v", w.ecs.EnemyCount(), wave.Phase)
	}

	w.waves.Update()
	if wave.Phase != component.WaveWaitingForClear {
		t.Fatal("wave must wait until its enemies are gone")
	}
	for _, id := range w.ecs.EnemyIDs() {
		w.ecs.RemoveEnemy(id)
		w.events.Dispatch(event.Event{Type: event.EnemyRemoved, Data: event.EnemyData{ID: id}})
	}
	w.waves.Update()
	if wave.Phase != component.WaveCountdown || wave.Countdown != w.lib.Waves.IntermissionTicks {
		t.Fatalf("expected countdown, got %+v", wave)
	}
	if w.count(event.WaveEnded) != 1 {
		t.Fatal("WaveEnded not dispatched")
	}
	for i := 0; i < w.lib.Waves.IntermissionTicks-1; i++ {
		w.waves.Update()
	}
	if wave.Number != 1 {
		t.Fatal("next wave started before the intermission elapsed")
	}
	w.waves.Update()
	if wave.Number != 2 || wave.Phase != component.WaveSpawning {
		t.Fatalf("wave 2 did not start: %+v", wave)
	}
}

func TestCallNextWaveOnlyDuringCountdown(t *testing.T) {
	w := newWorld(t)
	w.waves.Start()
	if w.waves.CallNextWave() {
		t.Fatal("CallNextWave must not skip an active wave")
	}
	w.ecs.Wave.Phase = component.WaveCountdown
	w.ecs.Wave.Countdown = 900
	if !w.waves.CallNextWave() || w.ecs.Wave.Number != 2 {
		t.Fatalf("CallNextWave failed: %+v", w.ecs.Wave)
	}
}

func TestBossWaveSpawnsSingleBoss(t *testing.T) {
	w := newWorld(t)
	w.ecs.Wave.Phase = component.WaveCountdown
	w.ecs.Wave.Number = 9
	w.waves.CallNextWave()
	if !w.ecs.Wave.IsBossWave || w.ecs.Wave.ToSpawn != 1 {
		t.Fatalf("wave 10: %+v", w.ecs.Wave)
	}
	for i := 0; i < 10*w.lib.Waves.SpawnIntervalTicks; i++ {
		w.waves.Update()
	}
	if w.ecs.EnemyCount() != 1 {
		t.Fatalf("boss wave spawned %d enemies", w.ecs.EnemyCount())
	}
	e, _ := w.ecs.Enemy(w.ecs.EnemyIDs()[0])
	if !e.IsBoss() {
		t.Fatal("boss wave spawned a regular enemy")
	}
}

func TestEconomyArrivalDamageAndShake(t *testing.T) {
	w := newWorld(t)
	w.events.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyData{ID: 1, Damage: w.economy.ArrivalDamage(false)}})
	econ := w.ecs.Economy
	if econ.BaseHealth != 990 || econ.BaseShake != w.lib.Base.ShakeTicks || econ.Leaked != 1 {
		t.Fatalf("economy after leak: %+v", econ)
	}
	w.events.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyData{ID: 2, Damage: 5000}})
	if econ.BaseHealth != 0 || !w.economy.BaseDestroyed() {
		t.Fatalf("base health must clamp at 0, got %d", econ.BaseHealth)
	}
	if w.economy.ArrivalDamage(true) != 20 {
		t.Fatal("boss arrival damage should be 20")
	}

	if w.economy.Spend(econ.Money + 1) {
		t.Fatal("Spend beyond balance must fail")
	}
	money := econ.Money
	if !w.economy.Spend(100) || econ.Money != money-100 {
		t.Fatal("Spend did not deduct")
	}
}

func TestVisualTimersCountDown(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(0, 0, 10)
	e, _ := w.ecs.Enemy(id)
	e.HitFlash = 2
	_, boss := w.addBoss(t, 10)
	w.ecs.Economy.BaseShake = 1

	w.visual.Update()
	w.visual.Update()
	w.visual.Update()
	if e.HitFlash != 0 || w.ecs.Economy.BaseShake != 0 {
		t.Fatalf("timers did not stop at zero: flash=%d shake=%d", e.HitFlash, w.ecs.Economy.BaseShake)
	}
	if !approx(boss.Boss.Angle, 3*bossSpin) {
		t.Fatalf("boss angle = %v", boss.Boss.Angle)
	}
}
