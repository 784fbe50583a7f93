// internal/system/pointer.go
package system

import (
	"go-coming-soon/internal/event"
)

// PointerSystem слушает движение указателя над окном и хранит последнюю точку.
// Без сглаживания и пакетирования: каждое событие сразу перезаписывает позицию.
type PointerSystem struct {
	eventDispatcher *event.Dispatcher
	position        event.Point
	moves           int
	subscribed      bool
}

func NewPointerSystem(eventDispatcher *event.Dispatcher) *PointerSystem {
	return &PointerSystem{eventDispatcher: eventDispatcher}
}

func (s *PointerSystem) Start() {
	if s.subscribed {
		return
	}
	s.eventDispatcher.Subscribe(event.PointerMoved, s)
	s.subscribed = true
}

func (s *PointerSystem) Stop() {
	if !s.subscribed {
		return
	}
	s.eventDispatcher.Unsubscribe(event.PointerMoved, s)
	s.subscribed = false
}

// OnEvent принимает event.Point в Data; прочие данные игнорируются.
func (s *PointerSystem) OnEvent(e event.Event) {
	if p, ok := e.Data.(event.Point); ok {
		s.position = p
		s.moves++
	}
}

// Position — последняя известная позиция указателя.
func (s *PointerSystem) Position() event.Point {
	return s.position
}

// Moves — число принятых событий движения.
func (s *PointerSystem) Moves() int {
	return s.moves
}
