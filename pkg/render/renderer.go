package render

import (
	"image/color"
	"math"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws the playfield: a pre-rendered path and base backdrop plus
// the dynamic entities taken from a game snapshot.
type Renderer struct {
	lib          *defs.Library
	colors       *MapColors
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image // Поле для предрендеренной карты
}

func NewRenderer(lib *defs.Library, screenWidth, screenHeight int, colors *MapColors) *Renderer {
	return &Renderer{
		lib:          lib,
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *Renderer) RenderMapImage() {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	}
	r.mapImage.Fill(r.colors.BackgroundColor)

	points := r.lib.PathMap().Points()
	// Сначала широкая кромка, поверх неё сама дорога
	r.strokePath(r.mapImage, points, r.colors.PathWidth+6, r.colors.PathEdgeColor)
	r.strokePath(r.mapImage, points, r.colors.PathWidth, r.colors.PathColor)
}

func (r *Renderer) strokePath(dst *ebiten.Image, points []component.Position, width float32, clr color.RGBA) {
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
	// Скругляем стыки
	for _, p := range points {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), width/2, clr, true)
	}
}

// Draw рисует кадр по снимку состояния.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)

	r.drawBase(screen, snap)
	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		radius := float32(config.ProjectileRadius)
		if p.Splash {
			radius = config.SplashMarkRadius
		}
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), radius, p.Color, true)
	}
}

func (r *Renderer) drawBase(screen *ebiten.Image, snap app.Snapshot) {
	base := r.lib.Base.Position
	dx, dy := ShakeOffset(snap.BaseShake, r.lib.Base.ShakeTicks, snap.Tick)
	x := float32(base.X + dx)
	y := float32(base.Y + dy)

	clr := r.colors.BaseColor
	if snap.BaseShake > 0 {
		clr = r.colors.DamagedColor
	}
	vector.DrawFilledRect(screen, x-config.BaseDrawRadius, y-config.BaseDrawRadius, 2*config.BaseDrawRadius, 2*config.BaseDrawRadius, clr, true)
	vector.StrokeRect(screen, x-config.BaseDrawRadius, y-config.BaseDrawRadius, 2*config.BaseDrawRadius, 2*config.BaseDrawRadius, 2, DarkenColor(clr), true)

	ratio := 0.0
	if snap.MaxBaseHealth > 0 {
		ratio = float64(snap.BaseHealth) / float64(snap.MaxBaseHealth)
	}
	drawHealthBar(screen, x, y-config.BaseDrawRadius-8, 2*config.BaseDrawRadius, ratio)
}

func (r *Renderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	x, y := float32(t.Pos.X), float32(t.Pos.Y)
	if t.Selected {
		vector.DrawFilledCircle(screen, x, y, float32(t.Range), config.RangeColor, true)
		vector.StrokeCircle(screen, x, y, float32(t.Range), 1, config.TowerStrokeColor, true)
	}

	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, DarkenColor(t.Color), true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius*0.6, t.Color, true)
	vector.StrokeCircle(screen, x, y, config.TowerRadius, config.TowerStrokeWidth, config.TowerStrokeColor, true)

	bx := x + float32(math.Cos(t.Rotation))*config.TowerBarrelLen
	by := y + float32(math.Sin(t.Rotation))*config.TowerBarrelLen
	vector.StrokeLine(screen, x, y, bx, by, 4, t.Color, true)

	// Точки уровней улучшений под башней
	levels := 0
	for _, l := range t.Levels {
		levels += l
	}
	for i := 0; i < levels; i++ {
		px := x - config.TowerRadius + float32(i)*4
		vector.DrawFilledCircle(screen, px, y+config.TowerRadius+4, 1.5, config.MoneyColor, false)
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := float32(e.Pos.X), float32(e.Pos.Y)
	radius := EnemyRadius(e)
	clr := EnemyColor(e)

	if e.Kind == component.KindBoss {
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
		// Вращающийся квадрат поверх тела босса
		var corners [4][2]float32
		for i := range corners {
			a := e.Angle + float64(i)*math.Pi/2
			corners[i] = [2]float32{
				x + float32(math.Cos(a))*radius*0.7,
				y + float32(math.Sin(a))*radius*0.7,
			}
		}
		for i := range corners {
			n := corners[(i+1)%4]
			vector.StrokeLine(screen, corners[i][0], corners[i][1], n[0], n[1], 2, DarkenColor(clr), true)
		}
		if e.ShieldActive {
			width := float32(2 + 4*e.ShieldRatio)
			vector.StrokeCircle(screen, x, y, radius+6, width, config.ShieldColor, true)
		}
	} else {
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	}
	drawHealthBar(screen, x, y-radius-config.HealthBarOffset/2, config.HealthBarWidth*radius/config.EnemyRadius, e.HealthRatio)
}

func drawHealthBar(screen *ebiten.Image, cx, y, width float32, ratio float64) {
	left := cx - width/2
	vector.DrawFilledRect(screen, left, y, width, config.HealthBarHeight, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, left, y, width*HealthBarFill(ratio), config.HealthBarHeight, config.HealthColor, false)
}

// DrawPlacementPreview рисует призрак башни под курсором: зелёный, если
// место подходит, иначе красный.
func (r *Renderer) DrawPlacementPreview(screen *ebiten.Image, pos component.Position, def defs.TowerDefinition, ok bool) {
	clr := config.PreviewBadColor
	if ok {
		clr = config.PreviewOKColor
	}
	x, y := float32(pos.X), float32(pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(def.Range), WithAlpha(clr, 40), true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, clr, true)
	vector.StrokeCircle(screen, x, y, config.TowerRadius, 1, WithAlpha(def.Color, 160), true)
}

// ShakeOffset: смещение базы при тряске. Амплитуда затухает вместе
// с таймером; без тряски смещения нет.
func ShakeOffset(shake, shakeTicks int, tick uint64) (float64, float64) {
	if shake <= 0 || shakeTicks <= 0 {
		return 0, 0
	}
	if shake > shakeTicks {
		shake = shakeTicks
	}
	amp := config.BaseShakeOffset * float64(shake) / float64(shakeTicks)
	t := float64(tick)
	return amp * math.Sin(t*1.7), amp * math.Cos(t*2.3)
}

// HealthBarFill clamps a health ratio to [0, 1].
func HealthBarFill(ratio float64) float32 {
	if ratio < 0 || math.IsNaN(ratio) {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return float32(ratio)
}

// EnemyRadius: размер врага на экране.
func EnemyRadius(e app.EnemyView) float32 {
	if e.Kind != component.KindBoss {
		return config.EnemyRadius
	}
	if e.Special {
		return config.BossRadius * 1.4
	}
	return config.BossRadius
}

// EnemyColor: вспышка от попадания перекрывает всё, затем ярость босса.
func EnemyColor(e app.EnemyView) color.RGBA {
	if e.Flashing {
		return config.FlashColor
	}
	if e.Phase == component.PhaseEnraged {
		return config.EnragedColor
	}
	return e.Color
}
