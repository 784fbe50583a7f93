// internal/system/visual_effect.go
package system

import (
	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"
)

// VisualEffectSystem проигрывает одноразовое появление блоков героя:
// прозрачность 0→1 и подъём снизу, с лесенкой задержек.
type VisualEffectSystem struct {
	arena     *entity.Arena
	scheduler *anim.Scheduler
	count     int
	handles   []anim.Handle
}

// NewVisualEffectSystem создает систему появления на count блоков.
func NewVisualEffectSystem(arena *entity.Arena, scheduler *anim.Scheduler, count int) *VisualEffectSystem {
	return &VisualEffectSystem{arena: arena, scheduler: scheduler, count: count}
}

func (s *VisualEffectSystem) Start() {
	for i := 0; i < s.count; i++ {
		tr, ok := s.arena.Transform(entity.HeroItem(i))
		if !ok {
			continue
		}
		tr.Opacity = 0
		tr.Y = config.EntranceOffset
		tw := anim.NewTween(config.EntranceTime, anim.To(&tr.Opacity, 1), anim.To(&tr.Y, 0))
		tw.Delay = config.EntranceDelay + float64(i)*config.EntranceStagger
		tw.Ease = anim.Power2Out
		s.handles = append(s.handles, s.scheduler.Add(tw))
	}
}

// Stop отменяет незавершённые появления.
func (s *VisualEffectSystem) Stop() {
	for _, h := range s.handles {
		s.scheduler.Cancel(h)
	}
	s.handles = nil
}

// Pending — число ещё идущих появлений.
func (s *VisualEffectSystem) Pending() int {
	n := 0
	for _, h := range s.handles {
		if s.scheduler.Active(h) {
			n++
		}
	}
	return n
}
