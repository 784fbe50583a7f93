// internal/input/router.go
package input

import (
	"sort"

	"go-coming-soon/internal/event"
	"go-coming-soon/internal/types"
)

// Rect — прямоугольник в пикселях окна.
type Rect struct {
	X, Y, W, H float64
}

// Contains проверяет, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(p event.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// PointerRouter — источник событий указателя для хоста: каждое движение
// превращает в PointerMoved и, по прямоугольникам элементов, в PointerEnter/PointerLeave.
type PointerRouter struct {
	eventDispatcher *event.Dispatcher
	targets         map[types.EntityID]Rect
	inside          map[types.EntityID]bool
	last            event.Point
	seen            bool
}

func NewPointerRouter(eventDispatcher *event.Dispatcher) *PointerRouter {
	return &PointerRouter{
		eventDispatcher: eventDispatcher,
		targets:         make(map[types.EntityID]Rect),
		inside:          make(map[types.EntityID]bool),
	}
}

// SetTarget задаёт или обновляет область элемента.
func (r *PointerRouter) SetTarget(id types.EntityID, rect Rect) {
	r.targets[id] = rect
}

// RemoveTarget забывает элемент без события выхода.
func (r *PointerRouter) RemoveTarget(id types.EntityID) {
	delete(r.targets, id)
	delete(r.inside, id)
}

// Clear забывает все элементы.
func (r *PointerRouter) Clear() {
	r.targets = make(map[types.EntityID]Rect)
	r.inside = make(map[types.EntityID]bool)
}

// Move сообщает новую позицию указателя. Одинаковые позиции подряд отбрасываются.
func (r *PointerRouter) Move(p event.Point) {
	if r.seen && p == r.last {
		return
	}
	r.seen = true
	r.last = p
	r.eventDispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: p})

	ids := make([]types.EntityID, 0, len(r.targets))
	for id := range r.targets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// сначала выходы, потом входы: как у браузера при переходе между соседями
	var entered []types.EntityID
	for _, id := range ids {
		in := r.targets[id].Contains(p)
		switch {
		case in && !r.inside[id]:
			entered = append(entered, id)
		case !in && r.inside[id]:
			r.inside[id] = false
			r.eventDispatcher.Dispatch(event.Event{Type: event.PointerLeave, Target: id, Data: p})
		}
	}
	for _, id := range entered {
		r.inside[id] = true
		r.eventDispatcher.Dispatch(event.Event{Type: event.PointerEnter, Target: id, Data: p})
	}
}

// Inside сообщает, находится ли указатель над элементом.
func (r *PointerRouter) Inside(id types.EntityID) bool {
	return r.inside[id]
}

// Last — последняя сообщённая позиция.
func (r *PointerRouter) Last() (event.Point, bool) {
	return r.last, r.seen
}
