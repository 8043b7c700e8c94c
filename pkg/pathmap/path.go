// pkg/pathmap/path.go
package pathmap

import (
	"errors"
	"math"
)

// ErrTooFewPoints возвращается, если в пути меньше двух точек.
var ErrTooFewPoints = errors.New("pathmap: path needs at least two waypoints")

// Point: точка на плоскости в пикселях.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistanceToSegment возвращает расстояние от p до отрезка ab.
// Проекция p на прямую ограничивается концами отрезка.
func DistanceToSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := Point{X: a.X + dx*t, Y: a.Y + dy*t}
	return Distance(p, closest)
}

// Path — неизменяемая ломаная из вейпоинтов, общая для всех врагов.
type Path struct {
	points  []Point
	lengths []float64 // накопленная длина до каждой точки
}

// NewPath copies the waypoints and precomputes segment lengths.
func NewPath(points []Point) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	p := &Path{
		points:  append([]Point(nil), points...),
		lengths: make([]float64, len(points)),
	}
	for i := 1; i < len(points); i++ {
		p.lengths[i] = p.lengths[i-1] + Distance(points[i-1], points[i])
	}
	return p, nil
}

// Waypoint возвращает точку с индексом i; false, если индекс вне пути.
func (p *Path) Waypoint(i int) (Point, bool) {
	if i < 0 || i >= len(p.points) {
		return Point{}, false
	}
	return p.points[i], true
}

// Start is the first waypoint, where enemies spawn.
func (p *Path) Start() Point {
	return p.points[0]
}

// End is the last waypoint.
func (p *Path) End() Point {
	return p.points[len(p.points)-1]
}

// LastIndex is the index of the final waypoint.
func (p *Path) LastIndex() int {
	return len(p.points) - 1
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []Point {
	return append([]Point(nil), p.points...)
}

// Length: полная длина пути.
func (p *Path) Length() float64 {
	return p.lengths[len(p.lengths)-1]
}

// DistanceTo возвращает минимальное расстояние от точки до любого сегмента пути.
func (p *Path) DistanceTo(pt Point) float64 {
	best := math.MaxFloat64
	for i := 0; i+1 < len(p.points); i++ {
		if d := DistanceToSegment(pt, p.points[i], p.points[i+1]); d < best {
			best = d
		}
	}
	return best
}

// PointAt интерполирует позицию на расстоянии dist от начала пути.
// Значения вне [0, Length] прижимаются к концам.
func (p *Path) PointAt(dist float64) Point {
	if dist <= 0 {
		return p.points[0]
	}
	if dist >= p.Length() {
		return p.End()
	}
	for i := 1; i < len(p.points); i++ {
		if dist <= p.lengths[i] {
			segLen := p.lengths[i] - p.lengths[i-1]
			if segLen == 0 {
				return p.points[i]
			}
			t := (dist - p.lengths[i-1]) / segLen
			a, b := p.points[i-1], p.points[i]
			return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		}
	}
	return p.End()
}

// Progress returns how far along the path a walker is, given the index of the
// waypoint it last reached and its current position.
func (p *Path) Progress(index int, pos Point) float64 {
	if index < 0 {
		return 0
	}
	if index >= p.LastIndex() {
		return p.Length()
	}
	return p.lengths[index] + Distance(p.points[index], pos)
}

// StepToward сдвигает from к to на step. Если до цели осталось меньше step,
// возвращает саму цель и true.
func StepToward(from, to Point, step float64) (Point, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < step || dist == 0 {
		return to, true
	}
	return Point{X: from.X + dx/dist*step, Y: from.Y + dy/dist*step}, false
}
