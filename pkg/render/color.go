// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	PathEdgeColor   color.RGBA
	BaseColor       color.RGBA
	DamagedColor    color.RGBA
	PathWidth       float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor смешивает цвет с белым в доле t из [0, 1].
func LightenColor(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*t)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// WithAlpha returns c at opacity a, keeping the premultiplied form.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	if c.A == 0 {
		return color.RGBA{}
	}
	scale := func(v uint8) uint8 {
		return uint8(uint32(v) * uint32(a) / uint32(c.A))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
