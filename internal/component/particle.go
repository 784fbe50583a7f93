// internal/component/particle.go
package component

// ParticleShape — форма декоративной частицы.
type ParticleShape int

const (
	ShapeCircle ParticleShape = iota
	ShapeRoundedSquare
)

func (s ParticleShape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "rounded-square"
}

// PaletteGroups — число цветовых групп частиц.
const PaletteGroups = 3

// Particle описывает одну частицу поля. Создаётся один раз на монтирование.
type Particle struct {
	Index   int
	Left    float64 // % ширины окна
	Top     float64 // % высоты окна
	Size    float64 // px
	Shape   ParticleShape
	Palette int // Index % PaletteGroups
}
