// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator: кружок с цветом фазы волны. Пульсирует при смене фазы.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	phase      component.WavePhase
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.WavePhase) {
	if phase != i.phase {
		i.phase = phase
		i.LastChange = time.Now()
	}
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// PhaseColor: цвет индикатора для фазы волны.
func PhaseColor(phase component.WavePhase) color.RGBA {
	switch phase {
	case component.WaveSpawning:
		return config.SpawningColor
	case component.WaveWaitingForClear:
		return config.ClearingColor
	case component.WaveCountdown:
		return config.CountdownColor
	}
	return config.IdleColor
}
