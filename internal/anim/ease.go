package anim

import "math"

// EaseFunc отображает нормированное время [0,1] в прогресс анимации.
// Прогресс может выходить за [0,1] (кривые с перелётом).
type EaseFunc func(t float64) float64

// Linear — равномерное движение без кривой.
func Linear(t float64) float64 { return t }

// SineInOut — плавный разгон и торможение по синусу.
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Power2InOut — кубический разгон и торможение.
func Power2InOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Power2Out — кубическое торможение.
func Power2Out(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// BackOut возвращает кривую с перелётом за цель; overshoot задаёт силу перелёта.
func BackOut(overshoot float64) EaseFunc {
	c3 := overshoot + 1
	return func(t float64) float64 {
		u := t - 1
		return 1 + c3*u*u*u + overshoot*u*u
	}
}

var easings = map[string]EaseFunc{
	"none":         Linear,
	"linear":       Linear,
	"sine.inOut":   SineInOut,
	"power2.inOut": Power2InOut,
	"power2.out":   Power2Out,
	"back.out":     BackOut(1.7),
}

// EaseByName ищет кривую по имени ("sine.inOut", "power2.out", ...).
func EaseByName(name string) (EaseFunc, bool) {
	e, ok := easings[name]
	return e, ok
}
