// component/game_state.go
package component

// WavePhase: состояние планировщика волн.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveWaitingForClear
	WaveCountdown
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveWaitingForClear:
		return "waiting"
	case WaveCountdown:
		return "countdown"
	}
	return "unknown"
}

// Wave — состояние текущей волны.
type Wave struct {
	Number       int
	Phase        WavePhase
	Countdown    int // тиков до следующей волны
	Spawned      int
	ToSpawn      int
	SpawnCounter int
	IsBossWave   bool
	Alive        int // врагов этой волны ещё на поле
}

// Active reports whether the wave is still spawning.
func (w *Wave) Active() bool {
	return w.Phase == WaveSpawning
}
