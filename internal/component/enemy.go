// internal/component/enemy.go
package component

import "image/color"

// EnemyKind: тег варианта врага.
type EnemyKind int

const (
	KindRegular EnemyKind = iota
	KindBoss
)

func (k EnemyKind) String() string {
	if k == KindBoss {
		return "boss"
	}
	return "regular"
}

// BossPhase: фаза босса. Переходы только вперёд: 1 -> 2 -> 3.
type BossPhase int

const (
	PhaseShielded   BossPhase = 1
	PhaseUnshielded BossPhase = 2
	PhaseEnraged    BossPhase = 3
)

func (p BossPhase) String() string {
	switch p {
	case PhaseShielded:
		return "shielded"
	case PhaseUnshielded:
		return "unshielded"
	case PhaseEnraged:
		return "enraged"
	}
	return "unknown"
}

// BossState is the boss-only payload of an Enemy.
type BossState struct {
	Shield       float64
	MaxShield    float64
	ShieldActive bool
	Phase        BossPhase
	Special      bool    // усиленный босс особой волны
	Angle        float64 // поворот для отрисовки
}

// Enemy представляет вражескую сущность. Boss != nil только для KindBoss.
type Enemy struct {
	Kind      EnemyKind
	Wave      int
	Pos       Position
	Path      PathFollower
	Health    float64
	MaxHealth float64
	BaseSpeed float64 // скорость без учёта фазы
	Speed     float64
	Reward    int
	Color     color.RGBA
	HitFlash  int  // тиков до конца вспышки попадания
	Killed    bool // награда уже выдана
	Boss      *BossState
}

// Alive reports whether the enemy still has health.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// IsBoss reports whether the enemy carries a boss payload.
func (e *Enemy) IsBoss() bool {
	return e.Kind == KindBoss && e.Boss != nil
}

// HealthRatio is health/max clamped to [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	r := e.Health / e.MaxHealth
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
