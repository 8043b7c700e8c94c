// internal/config/config.go
package config

import "image/color"

// Константы окна и отрисовки. Игровые правила живут в defs.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Path Defense"
	TPS          = 60

	PathWidth        = 24.0
	BaseDrawRadius   = 30.0
	BaseShakeOffset  = 4.0
	TowerRadius      = 15.0
	TowerBarrelLen   = 22.0
	TowerStrokeWidth = 2.0
	EnemyRadius      = 10.0
	BossRadius       = 22.0
	ShieldRadius     = 28.0
	ProjectileRadius = 4.0
	SplashMarkRadius = 6.0

	HealthBarWidth  = 24.0
	HealthBarHeight = 4.0
	HealthBarOffset = 16.0

	HUDHeight      = 28
	HUDPadding     = 8
	LineHeight     = 16
	PanelWidth     = 230
	PanelRowHeight = 22

	ButtonWidth  = 220
	ButtonHeight = 36

	IndicatorRadius    = 8.0
	SpeedButtonX       = 700
	SpeedButtonY       = 14
	SpeedButtonSize    = 7.0
	PauseButtonX       = 760
	PauseButtonY       = 14
	PauseButtonSize    = 7.0
	WaveIndicatorX     = ScreenWidth / 2
	WaveIndicatorY     = 40
	ClickCooldown      = 150 // мс между переключениями кнопок
	SimDefaultTicks    = 36000
	TelemetryFlushSecs = 5
)

// Цвета с прозрачностью заданы с предумноженной альфой, как требует color.RGBA.
var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	PathColor         = color.RGBA{70, 60, 50, 255}
	PathEdgeColor     = color.RGBA{110, 95, 80, 255}
	BaseColor         = color.RGBA{50, 205, 50, 255}
	BaseDamagedColor  = color.RGBA{220, 60, 60, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	TextMutedColor    = color.RGBA{150, 150, 160, 255}
	MoneyColor        = color.RGBA{255, 215, 0, 255}
	HUDColor          = color.RGBA{15, 15, 25, 220}
	PanelColor        = color.RGBA{25, 35, 45, 230}
	PanelBorderColor  = color.RGBA{70, 130, 180, 255}
	ButtonColor       = color.RGBA{60, 70, 90, 255}
	ButtonHoverColor  = color.RGBA{90, 100, 130, 255}
	ButtonOffColor    = color.RGBA{45, 45, 50, 255}
	TowerStrokeColor  = color.RGBA{255, 255, 255, 255}
	RangeColor        = color.RGBA{60, 60, 60, 60}
	PreviewOKColor    = color.RGBA{18, 90, 18, 90}
	PreviewBadColor   = color.RGBA{90, 18, 18, 90}
	HealthBackColor   = color.RGBA{60, 0, 0, 255}
	HealthColor       = color.RGBA{50, 220, 50, 255}
	FlashColor        = color.RGBA{255, 255, 255, 255}
	ShieldColor       = color.RGBA{44, 88, 140, 140}
	EnragedColor      = color.RGBA{255, 60, 0, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	CountdownColor    = color.RGBA{70, 130, 180, 220}
	SpawningColor     = color.RGBA{220, 60, 60, 220}
	ClearingColor     = color.RGBA{220, 160, 60, 220}
	IdleColor         = color.RGBA{120, 120, 120, 220}
	UIColorBlue       = color.RGBA{100, 160, 255, 255}
	BossWaveTextColor = color.RGBA{255, 60, 60, 255}
	PauseColor        = color.RGBA{220, 220, 220, 255}
	PlayColor         = color.RGBA{50, 205, 50, 255}
	SpeedButtonColors = []color.RGBA{
		{100, 160, 255, 255}, // 1x
		{255, 215, 0, 255},   // 2x
		{255, 80, 80, 255},   // 3x и выше
	}
)
