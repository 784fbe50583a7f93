package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton переключает множитель часов заставки: x1, x2, x4.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	Scales        []float64
	CurrentState  int
	painter       *painter
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA, scales []float64) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Scales:      scales,
		painter:     newPainter(),
	}
}

// Scale — текущий множитель.
func (b *SpeedButton) Scale() float64 {
	if len(b.Scales) == 0 {
		return 1
	}
	return b.Scales[b.CurrentState%len(b.Scales)]
}

// SetScale выбирает ближайшее состояние к множителю из настроек.
func (b *SpeedButton) SetScale(scale float64) {
	best := 0
	for i, s := range b.Scales {
		if math.Abs(s-scale) < math.Abs(b.Scales[best]-scale) {
			best = i
		}
	}
	b.CurrentState = best
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	x, y := float64(b.X), float64(b.Y)
	height := float64(size) * 1.2
	width := float64(size)
	offset := width * 0.8

	// Два треугольника «перемотки»
	for _, dx := range []float64{0, offset} {
		tri := []point{
			{x - width + dx, y - height/2},
			{x + dx, y},
			{x - width + dx, y + height/2},
		}
		b.painter.fill(screen, tri, clr)
		b.painter.stroke(screen, tri, 1, color.RGBA{255, 255, 255, 255})
	}
}

// IsClicked — попадание в круг вокруг кнопки, форма у неё сложная.
func (b *SpeedButton) IsClicked(x, y float64) bool {
	dx := x - float64(b.X)
	dy := y - float64(b.Y)
	r := float64(b.Size) * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}
