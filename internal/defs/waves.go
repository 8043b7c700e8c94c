// internal/defs/waves.go
package defs

// WaveDefinition описывает расписание волн. Все интервалы: в тиках.
type WaveDefinition struct {
	IntermissionTicks  int `yaml:"intermission_ticks"`
	EnemiesPerWave     int `yaml:"enemies_per_wave"`
	BossInterval       int `yaml:"boss_interval"`
	SpawnIntervalTicks int `yaml:"spawn_interval_ticks"`
}

// IsBossWave reports whether wave spawns a single boss instead of the
// regular batch.
func (w WaveDefinition) IsBossWave(wave int) bool {
	return w.BossInterval > 0 && wave > 0 && wave%w.BossInterval == 0
}

// CountFor returns how many enemies wave spawns.
func (w WaveDefinition) CountFor(wave int) int {
	if w.IsBossWave(wave) {
		return 1
	}
	return w.EnemiesPerWave
}
