// internal/system/progress.go
package system

import (
	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"
	"go-coming-soon/internal/utils"
)

// ProgressSystem изображает загрузку: на каждом тике значение растёт на
// случайный шаг, упирается в потолок и больше не меняется.
type ProgressSystem struct {
	arena           *entity.Arena
	scheduler       *anim.Scheduler
	eventDispatcher *event.Dispatcher
	rng             utils.Sampler
	ceiling         float64
	interval        float64

	value float64
	ticks int
	done  bool
	tick  anim.Handle
	fill  anim.Handle
}

// NewProgressSystem создает симулятор с потолком ceiling и периодом interval секунд.
func NewProgressSystem(arena *entity.Arena, scheduler *anim.Scheduler, eventDispatcher *event.Dispatcher, rng utils.Sampler, ceiling, interval float64) *ProgressSystem {
	return &ProgressSystem{
		arena:           arena,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		ceiling:         ceiling,
		interval:        interval,
	}
}

// Start всегда начинает с нуля.
func (s *ProgressSystem) Start() {
	s.value = 0
	s.ticks = 0
	s.done = false
	if bar, ok := s.arena.Bar(entity.ProgressBar()); ok {
		bar.Width = 0
	}
	s.tick = s.scheduler.Every(s.interval, s.step)
}

func (s *ProgressSystem) step() {
	if s.done {
		return
	}
	s.ticks++
	s.value += s.rng.Sample(0, config.ProgressStepMax)
	if s.value >= s.ceiling {
		s.value = s.ceiling
		s.done = true
		s.scheduler.Cancel(s.tick)
		s.tick = 0
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProgressCompleted, Data: s.value})
	}

	bar, ok := s.arena.Bar(entity.ProgressBar())
	if !ok {
		return
	}
	fill := anim.NewTween(config.ProgressFillTime, anim.To(&bar.Width, s.value))
	fill.Ease = anim.Power2Out
	s.fill = s.scheduler.Replace(s.fill, fill)
}

// Stop отменяет тики и анимацию полосы. Возобновления нет: новый Start начнёт с нуля.
func (s *ProgressSystem) Stop() {
	s.scheduler.Cancel(s.tick)
	s.scheduler.Cancel(s.fill)
	s.tick = 0
	s.fill = 0
}

// Value — текущее значение прогресса.
func (s *ProgressSystem) Value() float64 {
	return s.value
}

// Done сообщает, достигнут ли потолок.
func (s *ProgressSystem) Done() bool {
	return s.done
}

// Ticks — число сработавших тиков.
func (s *ProgressSystem) Ticks() int {
	return s.ticks
}

// Ticking сообщает, запланированы ли ещё тики.
func (s *ProgressSystem) Ticking() bool {
	return s.tick != 0 && s.scheduler.Active(s.tick)
}
