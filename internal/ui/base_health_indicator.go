// internal/ui/base_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCells       = 20
	HealthCellWidth   = 6.0
	HealthCellHeight  = 10.0
	HealthCellSpacing = 2.0
)

// BaseHealthIndicator отображает здоровье базы полосой из ячеек.
type BaseHealthIndicator struct {
	X, Y float32
}

func NewBaseHealthIndicator(x, y float32) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y}
}

// FilledCells: сколько ячеек закрашено. Любой ненулевой остаток
// здоровья даёт хотя бы одну ячейку.
func FilledCells(health, maxHealth int) int {
	if health <= 0 || maxHealth <= 0 {
		return 0
	}
	if health >= maxHealth {
		return HealthCells
	}
	n := health * HealthCells / maxHealth
	if n == 0 {
		n = 1
	}
	return n
}

// Draw рисует полосу; на последней четверти ячейки краснеют.
func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	filled := FilledCells(health, maxHealth)
	fill := config.BaseColor
	if filled <= HealthCells/4 {
		fill = config.BaseDamagedColor
	}
	for j := 0; j < HealthCells; j++ {
		x := i.X + float32(j)*(HealthCellWidth+HealthCellSpacing)
		var c color.RGBA
		if j < filled {
			c = fill
		} else {
			// Пустые ячейки - тёмные
			c = config.HealthBackColor
		}
		vector.DrawFilledRect(screen, x, i.Y, HealthCellWidth, HealthCellHeight, c, false)
	}
	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	right := i.X + HealthCells*(HealthCellWidth+HealthCellSpacing)
	DrawText(screen, label, int(right)+4, int(i.Y)-2, config.TextLightColor)
}
