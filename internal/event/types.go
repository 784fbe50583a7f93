// internal/event/types.go
package event

const (
	PointerMoved      EventType = "PointerMoved"      // Указатель сдвинулся над окном
	PointerEnter      EventType = "PointerEnter"      // Указатель вошёл в элемент
	PointerLeave      EventType = "PointerLeave"      // Указатель покинул элемент
	HeadlineChanged   EventType = "HeadlineChanged"   // Начался показ следующей строки заголовка
	ProgressCompleted EventType = "ProgressCompleted" // Прогресс упёрся в потолок
)
