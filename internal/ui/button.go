// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
	}
}

// Contains reports whether the point is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked — клик пришёлся на активную кнопку.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку. Курсор берётся у ebiten.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	fg := b.TextColor
	switch {
	case b.Disabled:
		bg = config.ButtonOffColor
		fg = config.TextMutedColor
	case b.Contains(ebiten.CursorPosition()):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.PanelBorderColor, true)

	textY := b.Rect.Min.Y + (b.Rect.Dy()-Face.Metrics().Height.Ceil())/2
	DrawCenteredText(screen, b.Text, b.Rect.Min.X+b.Rect.Dx()/2, textY, fg)
}
