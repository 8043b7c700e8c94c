// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton: двойной треугольник «перемотки», цвет зависит от скорости.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	Speed          int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Speed:       1,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := b.stateColor()
	height := size * 1.2
	width := size
	offset := width * 0.8

	// Левый треугольник
	FillPath(screen, Triangle(b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2), clr)
	StrokeTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, color.White)
	// Правый треугольник
	FillPath(screen, Triangle(b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2), clr)
	StrokeTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, color.White)

	label := fmt.Sprintf("%dx", b.Speed)
	DrawText(screen, label, int(b.X+offset+4), int(b.Y)-Face.Metrics().Height.Ceil()/2, clr)
}

// stateColor: цвет для текущей скорости; всё выше таблицы берёт последний.
func (b *SpeedButton) stateColor() color.RGBA {
	i := b.Speed - 1
	if i < 0 {
		i = 0
	}
	if i >= len(b.StateColors) {
		i = len(b.StateColors) - 1
	}
	return b.StateColors[i]
}

// IsClicked использует круг, так как форма сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetSpeed отражает скорость игры и запускает анимацию.
func (b *SpeedButton) SetSpeed(speed int) {
	if speed != b.Speed {
		b.LastClickTime = time.Now()
	}
	b.Speed = speed
	b.LastToggleTime = time.Now()
}

// Ready: прошло ли достаточно времени с прошлого переключения.
func (b *SpeedButton) Ready(cooldown time.Duration) bool {
	return time.Since(b.LastToggleTime) >= cooldown
}
