// internal/system/headline.go
package system

import (
	"math"

	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"
)

// HeadlineSystem по кругу печатает строки заголовка: печать, затем показ,
// следующая строка начинается через reveal+hold после начала предыдущей.
type HeadlineSystem struct {
	arena           *entity.Arena
	scheduler       *anim.Scheduler
	eventDispatcher *event.Dispatcher
	texts           []string
	timeline        *anim.Timeline
	handle          anim.Handle
	active          int
	started         int
	shown           int
}

// NewHeadlineSystem создает цикл по непустому списку строк.
func NewHeadlineSystem(arena *entity.Arena, scheduler *anim.Scheduler, eventDispatcher *event.Dispatcher, texts []string) *HeadlineSystem {
	return &HeadlineSystem{
		arena:           arena,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		texts:           texts,
		active:          -1,
		started:         -1,
	}
}

// Start запускает цикл. Без смонтированного заголовка цикл пропускается.
func (s *HeadlineSystem) Start() {
	text, ok := s.arena.Text(entity.Headline())
	if !ok || len(s.texts) == 0 {
		return
	}
	id, _ := s.arena.Lookup(entity.Headline())
	s.started = -1
	s.shown = 0

	tl := anim.NewTimeline(anim.RepeatForever)
	for i, line := range s.texts {
		runes := []rune(line)
		reveal := anim.NewTween(config.HeadlineReveal)
		reveal.OnUpdate = func(p float64) {
			// номер показа строки считаем по кругу таймлайна, чтобы
			// единственная строка тоже начинала печать заново
			if run := tl.Iteration()*len(s.texts) + i; run != s.started {
				s.started = run
				s.active = i
				s.shown++
				s.eventDispatcher.Dispatch(event.Event{Type: event.HeadlineChanged, Target: id, Data: i})
			}
			n := int(math.Ceil(p * float64(len(runes))))
			if n < 0 {
				n = 0
			}
			if n > len(runes) {
				n = len(runes)
			}
			text.Value = string(runes[:n])
		}
		tl.Add(reveal).Hold(config.HeadlineHold)
	}
	s.timeline = tl
	s.handle = s.scheduler.Add(tl)
}

// Stop убивает таймлайн.
func (s *HeadlineSystem) Stop() {
	s.scheduler.Cancel(s.handle)
	s.handle = 0
	s.timeline = nil
	s.active = -1
	s.started = -1
}

// Active — индекс строки, которая сейчас печатается или показывается; -1 до первого кадра.
func (s *HeadlineSystem) Active() int {
	return s.active
}

// Shown — сколько раз начиналась печать строки с момента запуска.
func (s *HeadlineSystem) Shown() int {
	return s.shown
}

// Running сообщает, крутится ли цикл.
func (s *HeadlineSystem) Running() bool {
	return s.handle != 0 && s.scheduler.Active(s.handle)
}
