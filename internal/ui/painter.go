package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// painter заливает произвольные многоугольники через vector.Path,
// переиспользуя буферы вершин между кадрами.
type painter struct {
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func newPainter() *painter {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &painter{
		whiteImg: img,
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 64),
	}
}

// point — вершина многоугольника в пикселях экрана.
type point struct {
	x, y float64
}

func (p *painter) fill(target *ebiten.Image, pts []point, clr color.RGBA) {
	if len(pts) < 3 || clr.A == 0 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0].x), float32(pts[0].y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.x), float32(pt.y))
	}
	path.Close()

	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	p.paint(clr)
	target.DrawTriangles(p.vs, p.is, p.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func (p *painter) stroke(target *ebiten.Image, pts []point, width float32, clr color.RGBA) {
	if len(pts) < 2 || clr.A == 0 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0].x), float32(pts[0].y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.x), float32(pt.y))
	}
	path.Close()

	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width: width,
	})
	p.paint(clr)
	target.DrawTriangles(p.vs, p.is, p.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func (p *painter) paint(clr color.RGBA) {
	for i := range p.vs {
		p.vs[i].SrcX = 0
		p.vs[i].SrcY = 0
		p.vs[i].ColorR = float32(clr.R) / 255
		p.vs[i].ColorG = float32(clr.G) / 255
		p.vs[i].ColorB = float32(clr.B) / 255
		p.vs[i].ColorA = float32(clr.A) / 255
	}
}

// roundedRect строит вершины прямоугольника со скруглёнными углами.
func roundedRect(x, y, w, h, r float64) []point {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}
	const steps = 4
	corners := [4]point{
		{x + w - r, y + r},
		{x + w - r, y + h - r},
		{x + r, y + h - r},
		{x + r, y + r},
	}
	pts := make([]point, 0, 4*(steps+1))
	for c, center := range corners {
		start := -math.Pi/2 + float64(c)*math.Pi/2
		for i := 0; i <= steps; i++ {
			a := start + float64(i)/steps*math.Pi/2
			pts = append(pts, point{center.x + r*math.Cos(a), center.y + r*math.Sin(a)})
		}
	}
	return pts
}

// rotate поворачивает вершины вокруг (cx, cy) на deg градусов.
func rotate(pts []point, cx, cy, deg float64) []point {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	for i, pt := range pts {
		dx, dy := pt.x-cx, pt.y-cy
		pts[i] = point{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos}
	}
	return pts
}

// turnY имитирует поворот плоской фигуры вокруг вертикальной оси:
// ширина сжимается по косинусу, дальний край чуть уходит в перспективу.
func turnY(pts []point, cx, cy, deg float64) []point {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	for i, pt := range pts {
		dx, dy := pt.x-cx, pt.y-cy
		depth := 1 - dx*sin*0.0015
		pts[i] = point{cx + dx*cos, cy + dy*depth}
	}
	return pts
}

// scale масштабирует вершины относительно (cx, cy).
func scale(pts []point, cx, cy, k float64) []point {
	for i, pt := range pts {
		pts[i] = point{cx + (pt.x-cx)*k, cy + (pt.y-cy)*k}
	}
	return pts
}
