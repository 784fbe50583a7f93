// internal/event/event.go
package event

import "go-coming-soon/internal/types"

// EventType — тип события
type EventType string

// Point — координаты указателя в пикселях окна
type Point struct {
	X, Y float64
}

// Event — структура события
type Event struct {
	Type   EventType
	Target types.EntityID // Элемент, к которому относится событие (0 — окно)
	Data   interface{}    // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события. Отписка незарегистрированного слушателя ничего не делает.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) bool {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return false
	}
	for i, l := range listeners {
		if l == listener {
			rest := make([]Listener, 0, len(listeners)-1)
			rest = append(rest, listeners[:i]...)
			rest = append(rest, listeners[i+1:]...)
			if len(rest) == 0 {
				delete(d.listeners, eventType)
			} else {
				d.listeners[eventType] = rest
			}
			return true
		}
	}
	return false
}

// Dispatch — отправка события всем подписчикам.
// Подписки, изменённые внутри обработчика, вступают в силу со следующего события.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// ListenerCount — число подписчиков на тип события
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Len — общее число подписок
func (d *Dispatcher) Len() int {
	n := 0
	for _, l := range d.listeners {
		n += len(l)
	}
	return n
}
