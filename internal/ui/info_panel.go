// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"math"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelMargin    = 5
	animationSpeed = 20.0
	panelHeaderH   = 52
)

// InfoPanel: выезжающая справа панель выбранной башни с кнопками улучшений.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	currentX     float64
	targetX      float64
	buttons      []*Button
	stats        []defs.UpgradeStat
}

// NewInfoPanel creates a hidden panel.
func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		currentX: config.ScreenWidth,
		targetX:  config.ScreenWidth,
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetEntity = id
	p.IsVisible = true
	p.targetX = config.ScreenWidth - config.PanelWidth
}

func (p *InfoPanel) Hide() {
	p.targetX = config.ScreenWidth
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentX == p.targetX {
		return
	}
	diff := p.targetX - p.currentX
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentX = p.targetX
	case diff > 0:
		p.currentX += animationSpeed
	default:
		p.currentX -= animationSpeed
	}
	if p.currentX >= config.ScreenWidth {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

// Rect — текущая область панели на экране.
func (p *InfoPanel) Rect() image.Rectangle {
	top := config.HUDHeight + panelMargin
	height := panelHeaderH + len(defs.AllUpgradeStats)*(config.PanelRowHeight+panelMargin) + panelMargin
	return image.Rect(int(p.currentX)+panelMargin, top, int(p.currentX)+config.PanelWidth-panelMargin, top+height)
}

// Contains reports whether a click at (x, y) belongs to the panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.Rect())
}

// SetOptions перестраивает кнопки под варианты улучшений.
func (p *InfoPanel) SetOptions(options []app.UpgradeOption) {
	rect := p.Rect()
	p.buttons = p.buttons[:0]
	p.stats = p.stats[:0]
	for i, opt := range options {
		y := rect.Min.Y + panelHeaderH + i*(config.PanelRowHeight+panelMargin)
		b := NewButton(image.Rect(rect.Min.X+8, y, rect.Max.X-8, y+config.PanelRowHeight), optionLabel(opt))
		b.Disabled = opt.Maxed || !opt.Affordable
		p.buttons = append(p.buttons, b)
		p.stats = append(p.stats, opt.Stat)
	}
}

// Click возвращает улучшение, на кнопку которого пришёлся клик.
func (p *InfoPanel) Click(x, y int) (defs.UpgradeStat, bool) {
	if !p.IsVisible {
		return "", false
	}
	for i, b := range p.buttons {
		if b.IsClicked(x, y) {
			return p.stats[i], true
		}
	}
	return "", false
}

func optionLabel(opt app.UpgradeOption) string {
	if opt.Maxed {
		return fmt.Sprintf("%s L%d %.0f  MAX", opt.Stat, opt.Level, opt.Value)
	}
	return fmt.Sprintf("%s L%d %.0f>%.0f $%d", opt.Stat, opt.Level, opt.Value, opt.NextValue, opt.Cost)
}

// Draw рисует панель; кнопки должны быть подготовлены через SetOptions.
func (p *InfoPanel) Draw(screen *ebiten.Image, tower app.TowerView, name string) {
	if !p.IsVisible {
		return
	}
	rect := p.Rect()
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.PanelColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.PanelBorderColor, true)

	DrawText(screen, name, rect.Min.X+10, rect.Min.Y+8, tower.Color)
	DrawText(screen, fmt.Sprintf("range %.0f", tower.Range), rect.Min.X+10, rect.Min.Y+8+config.LineHeight, config.TextMutedColor)
	for _, b := range p.buttons {
		b.Draw(screen)
	}
}
