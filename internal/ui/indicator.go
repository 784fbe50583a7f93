package ui

import (
	"image/color"
	"math"

	"go-coming-soon/internal/config"
	"go-coming-soon/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BetaChip — плашка над заголовком с пульсирующей точкой.
type BetaChip struct {
	X, Y   float32 // центр
	Label  string
	Face   font.Face
	Period float64
}

func NewBetaChip(x, y float32, label string, face font.Face) *BetaChip {
	return &BetaChip{X: x, Y: y, Label: label, Face: face, Period: config.BetaPulsePeriod}
}

// Pulse — фаза пульса в [0,1] для момента now по часам заставки.
func (c *BetaChip) Pulse(now float64) float64 {
	if c.Period <= 0 {
		return 1
	}
	return 0.5 + 0.5*math.Cos(2*math.Pi*now/c.Period)
}

// Draw рисует плашку; opacity приходит от анимации появления.
func (c *BetaChip) Draw(screen *ebiten.Image, now, opacity float64) {
	if c.Face == nil || opacity <= 0 {
		return
	}
	bounds := text.BoundString(c.Face, c.Label)
	w := float32(bounds.Dx()) + 56
	h := float32(34)
	x, y := c.X-w/2, c.Y-h/2

	pulse := c.Pulse(now)
	bg := render.WithAlpha(config.ChipColor, 0.15*opacity)
	border := render.WithAlpha(config.ChipColor, (0.4+0.4*pulse)*opacity)
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1.5, border, true)

	dotR := float32(4 + 2*pulse)
	vector.DrawFilledCircle(screen, x+20, c.Y, dotR, render.WithAlpha(config.ChipColor, (0.5+0.5*pulse)*opacity), true)

	var clr color.Color = render.WithAlpha(config.ChipColor, opacity)
	text.Draw(screen, c.Label, c.Face, int(x+34), int(c.Y)+bounds.Dy()/2-2, clr)
}
