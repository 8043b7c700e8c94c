// internal/ui/draw.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face: единственный шрифт интерфейса, встроенный в x/image.
var Face font.Face = basicfont.Face7x13

var (
	whiteImage *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
)

// FillPath заливает замкнутый контур одним цветом.
func FillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	fillVs, fillIs = path.AppendVerticesAndIndicesForFilling(fillVs[:0], fillIs[:0])
	for i := range fillVs {
		fillVs[i].SrcX = 1
		fillVs[i].SrcY = 1
		fillVs[i].ColorR = float32(clr.R) / 255
		fillVs[i].ColorG = float32(clr.G) / 255
		fillVs[i].ColorB = float32(clr.B) / 255
		fillVs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(fillVs, fillIs, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Triangle builds a closed three-point path.
func Triangle(x1, y1, x2, y2, x3, y3 float32) *vector.Path {
	var p vector.Path
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()
	return &p
}

// StrokeTriangle обводит треугольник линией в 1px.
func StrokeTriangle(dst *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, clr color.Color) {
	vector.StrokeLine(dst, x1, y1, x2, y2, 1, clr, true)
	vector.StrokeLine(dst, x2, y2, x3, y3, 1, clr, true)
	vector.StrokeLine(dst, x3, y3, x1, y1, 1, clr, true)
}

// TextWidth returns the pixel width of s in Face.
func TextWidth(s string) int {
	return text.BoundString(Face, s).Dx()
}

// DrawText рисует строку; y: верхний край строки.
func DrawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, Face, x, y+Face.Metrics().Ascent.Ceil(), clr)
}

// DrawCenteredText centers s horizontally on cx.
func DrawCenteredText(dst *ebiten.Image, s string, cx, y int, clr color.Color) {
	DrawText(dst, s, cx-TextWidth(s)/2, y, clr)
}

// DrawOutlinedText рисует текст с обводкой толщиной thickness.
func DrawOutlinedText(dst *ebiten.Image, s string, cx, y, thickness int, fg, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawCenteredText(dst, s, cx+dx, y+dy, outline)
		}
	}
	DrawCenteredText(dst, s, cx, y, fg)
}
