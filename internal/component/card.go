// internal/component/card.go
package component

// HoverState — состояние карточки под указателем.
type HoverState int

const (
	Idle HoverState = iota
	Hovered
)

func (s HoverState) String() string {
	if s == Hovered {
		return "hovered"
	}
	return "idle"
}

// Card — карточка возможности, реагирующая на наведение.
type Card struct {
	Index int
	State HoverState
}
