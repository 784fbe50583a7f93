// internal/app/splash.go
package app

import (
	"errors"
	"log"

	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"
	"go-coming-soon/internal/system"
	"go-coming-soon/internal/utils"
)

// effect — общий жизненный цикл всех систем заставки.
type effect interface {
	Start()
	Stop()
}

// Splash — корень композиции анимаций. Два состояния: неактивна и активна.
// Activate создаёт все системы поверх смонтированных элементов,
// Deactivate отменяет всё, что они запланировали и на что подписались.
type Splash struct {
	Settings        config.Settings
	Arena           *entity.Arena
	Scheduler       *anim.Scheduler
	EventDispatcher *event.Dispatcher
	Rng             utils.Sampler

	Particles *system.ParticleSystem
	Headline  *system.HeadlineSystem
	Logo      *system.LogoSystem
	Hover     *system.HoverSystem
	Progress  *system.ProgressSystem
	Pointer   *system.PointerSystem
	Cursor    *system.CursorSystem
	Entrance  *system.VisualEffectSystem

	effects     []effect
	active      bool
	activations int
}

// ErrMissingDependency — NewSplash вызван без арены, часов, диспетчера или ГСЧ.
var ErrMissingDependency = errors.New("splash: arena, scheduler, dispatcher and rng are required")

// NewSplash связывает заставку с часами, ареной и диспетчером хоста.
func NewSplash(settings config.Settings, arena *entity.Arena, scheduler *anim.Scheduler, dispatcher *event.Dispatcher, rng utils.Sampler) (*Splash, error) {
	if arena == nil || scheduler == nil || dispatcher == nil || rng == nil {
		return nil, ErrMissingDependency
	}
	return &Splash{
		Settings:        settings,
		Arena:           arena,
		Scheduler:       scheduler,
		EventDispatcher: dispatcher,
		Rng:             rng,
	}, nil
}

// Activate переводит заставку в активное состояние. Повторный вызов ничего не делает.
func (s *Splash) Activate() bool {
	if s.active {
		return false
	}

	particles := system.NewParticleSystem(s.Arena, s.Scheduler, s.Rng, s.Settings.ParticleCount)
	headline := system.NewHeadlineSystem(s.Arena, s.Scheduler, s.EventDispatcher, s.Settings.HeadlineTexts)
	logo := system.NewLogoSystem(s.Arena, s.Scheduler)
	hover := system.NewHoverSystem(s.Arena, s.Scheduler, s.EventDispatcher, s.Settings.FeatureCardCount)
	progress := system.NewProgressSystem(s.Arena, s.Scheduler, s.EventDispatcher, s.Rng, s.Settings.ProgressCeiling, s.Settings.TickInterval())
	pointer := system.NewPointerSystem(s.EventDispatcher)
	cursor := system.NewCursorSystem(s.Arena, s.Scheduler, pointer)
	entrance := system.NewVisualEffectSystem(s.Arena, s.Scheduler, config.HeroItems)

	effects := []effect{pointer, particles, headline, logo, hover, progress, cursor, entrance}
	for _, e := range effects {
		e.Start()
	}

	s.Particles, s.Headline, s.Logo, s.Hover = particles, headline, logo, hover
	s.Progress, s.Pointer, s.Cursor, s.Entrance = progress, pointer, cursor, entrance
	s.effects = effects
	s.active = true
	s.activations++

	log.Printf("splash: activated (particles=%d headlines=%d cards=%d)", particles.Count(), len(s.Settings.HeadlineTexts), hover.Bound())
	return true
}

// Deactivate останавливает все системы. На неактивной заставке — no-op.
func (s *Splash) Deactivate() bool {
	if !s.active {
		return false
	}
	for i := len(s.effects) - 1; i >= 0; i-- {
		s.effects[i].Stop()
	}
	s.effects = nil
	s.Particles, s.Headline, s.Logo, s.Hover = nil, nil, nil, nil
	s.Progress, s.Pointer, s.Cursor, s.Entrance = nil, nil, nil, nil
	s.active = false

	log.Printf("splash: deactivated (%d tasks left)", s.Scheduler.Len())
	return true
}

// Update продвигает общие часы, пока заставка активна.
func (s *Splash) Update(deltaTime float64) {
	if !s.active {
		return
	}
	s.Scheduler.Advance(deltaTime)
}

// Active сообщает текущее состояние.
func (s *Splash) Active() bool {
	return s.active
}

// Activations — сколько раз заставка активировалась.
func (s *Splash) Activations() int {
	return s.activations
}
