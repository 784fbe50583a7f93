// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Gradient — пара цветов линейного градиента.
type Gradient struct {
	From color.RGBA
	To   color.RGBA
}

// At возвращает цвет градиента в точке t ∈ [0,1].
func (g Gradient) At(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(g.From.R, g.To.R),
		G: mix(g.From.G, g.To.G),
		B: mix(g.From.B, g.To.B),
		A: mix(g.From.A, g.To.A),
	}
}

// ParseHex разбирает цвет вида "#10b981" или "10b981".
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// WithAlpha возвращает цвет с заданной непрозрачностью [0,1].
func WithAlpha(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	// цвета ebiten — premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
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
