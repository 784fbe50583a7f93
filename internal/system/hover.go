// internal/system/hover.go
package system

import (
	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/component"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"
	"go-coming-soon/internal/types"
)

// HoverSystem вешает на каждую карточку реакцию на вход и выход указателя.
// У карточки два состояния; новое событие перезапускает анимацию к своей цели.
type HoverSystem struct {
	arena           *entity.Arena
	scheduler       *anim.Scheduler
	eventDispatcher *event.Dispatcher
	count           int
	cards           []*cardHover
}

// cardHover — слушатель одной карточки.
type cardHover struct {
	system    *HoverSystem
	id        types.EntityID
	card      *component.Card
	transform *component.Transform
	motion    anim.Handle
}

func NewHoverSystem(arena *entity.Arena, scheduler *anim.Scheduler, eventDispatcher *event.Dispatcher, count int) *HoverSystem {
	return &HoverSystem{
		arena:           arena,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		count:           count,
	}
}

// Start подписывает смонтированные карточки, пропуская отсутствующие.
func (s *HoverSystem) Start() {
	for i := 0; i < s.count; i++ {
		slot := entity.FeatureCard(i)
		id, ok := s.arena.Lookup(slot)
		if !ok {
			continue
		}
		card, _ := s.arena.Card(slot)
		tr, _ := s.arena.Transform(slot)
		h := &cardHover{system: s, id: id, card: card, transform: tr}
		s.eventDispatcher.Subscribe(event.PointerEnter, h)
		s.eventDispatcher.Subscribe(event.PointerLeave, h)
		s.cards = append(s.cards, h)
	}
}

// Stop снимает слушатели, отменяет анимации и возвращает карточки в покой.
func (s *HoverSystem) Stop() {
	for _, h := range s.cards {
		s.eventDispatcher.Unsubscribe(event.PointerEnter, h)
		s.eventDispatcher.Unsubscribe(event.PointerLeave, h)
		s.scheduler.Cancel(h.motion)
		h.card.State = component.Idle
		h.transform.Scale = 1
		h.transform.RotationY = 0
		h.transform.Z = 0
	}
	s.cards = nil
}

// Bound — число карточек с подписками.
func (s *HoverSystem) Bound() int {
	return len(s.cards)
}

func (h *cardHover) OnEvent(e event.Event) {
	if e.Target != h.id {
		return
	}
	switch e.Type {
	case event.PointerEnter:
		h.animate(component.Hovered, config.CardHoverScale, config.CardHoverTilt, config.CardHoverDepth)
	case event.PointerLeave:
		h.animate(component.Idle, 1, 0, 0)
	}
}

func (h *cardHover) animate(state component.HoverState, scale, tilt, depth float64) {
	h.card.State = state
	tw := anim.NewTween(config.CardHoverTime,
		// перелёт кривой оставляем наклону и глубине, масштаб держим в [1, hover]
		anim.To(&h.transform.Scale, scale).Within(1, config.CardHoverScale),
		anim.To(&h.transform.RotationY, tilt),
		anim.To(&h.transform.Z, depth),
	)
	tw.Ease = anim.BackOut(config.CardOvershoot)
	h.motion = h.system.scheduler.Replace(h.motion, tw)
}
