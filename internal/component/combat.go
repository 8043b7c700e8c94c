package component

// TowerStats: текущие боевые параметры башни (после улучшений).
type TowerStats struct {
	Damage       float64
	Range        float64
	FireRate     float64 // тиков между выстрелами
	SplashDamage float64
	SplashRange  float64
}

// HasSplash reports whether hits trigger area damage.
func (s TowerStats) HasSplash() bool {
	return s.SplashDamage > 0 && s.SplashRange > 0
}
