// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране. Босс-волны красные.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, bossWave bool) {
	if waveNumber <= 0 {
		return
	}
	textColor := i.Color
	if bossWave {
		textColor = config.BossWaveTextColor
	}
	DrawOutlinedText(screen, toRoman(waveNumber), i.X, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}
