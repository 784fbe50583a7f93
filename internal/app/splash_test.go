package app

import (
	"testing"

	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/component"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"
	"go-coming-soon/internal/utils"

	. "github.com/onsi/gomega"
)

const frame = 1.0 / 60

// maxSampler всегда отдаёт верхнюю границу.
type maxSampler struct{}

func (maxSampler) Sample(_, max float64) float64 { return max }
func (maxSampler) SampleInt(_, max int) int      { return max }
func (maxSampler) Float64() float64              { return 0.99 }

type headlineLog struct {
	indexes []int
}

func (l *headlineLog) OnEvent(e event.Event) {
	l.indexes = append(l.indexes, e.Data.(int))
}

// mountPage монтирует все элементы, которые знает заставка, кроме частиц:
// их создаёт сама система частиц.
func mountPage(arena *entity.Arena, cards int) {
	arena.Attach(entity.Logo())
	arena.Attach(entity.Headline())
	arena.Attach(entity.ProgressBar())
	arena.Attach(entity.Cursor())
	for i := 0; i < cards; i++ {
		arena.Attach(entity.FeatureCard(i))
	}
	for i := 0; i < config.HeroItems; i++ {
		arena.Attach(entity.HeroItem(i))
	}
}

func newTestSplash(settings config.Settings, rng utils.Sampler) *Splash {
	s, err := NewSplash(settings, entity.NewArena(), anim.NewScheduler(), event.NewDispatcher(), rng)
	if err != nil {
		panic(err)
	}
	return s
}

func TestSplashScenario(t *testing.T) {
	g := NewWithT(t)
	settings := config.DefaultSettings()
	settings.HeadlineTexts = []string{"A", "B"}
	settings.ProgressCeiling = 10
	settings.TickIntervalMs = 200
	s := newTestSplash(settings, maxSampler{})
	mountPage(s.Arena, settings.FeatureCardCount)
	log := &headlineLog{}
	s.EventDispatcher.Subscribe(event.HeadlineChanged, log)

	g.Expect(s.Activate()).To(BeTrue())
	for i := 0; i < 60; i++ {
		s.Update(frame)
	}
	g.Expect(s.Scheduler.Now()).To(BeNumerically("~", 1.0, 1e-9))
	g.Expect(s.Progress.Value()).To(Equal(10.0))
	g.Expect(s.Progress.Ticking()).To(BeFalse())

	for i := 60; i < 7*60; i++ {
		s.Update(frame)
	}
	g.Expect(s.Progress.Value()).To(Equal(10.0))
	g.Expect(log.indexes).To(Equal([]int{0, 1, 0}))
	text, _ := s.Arena.Text(entity.Headline())
	g.Expect(text.Value).To(Equal("A"))
	g.Expect(s.Particles.Count()).To(Equal(settings.ParticleCount))
	g.Expect(s.Logo.Running()).To(BeTrue())
}

func TestSplashDeactivateCancelsEverything(t *testing.T) {
	g := NewWithT(t)
	s := newTestSplash(config.DefaultSettings(), utils.NewPRNGService(1))
	mountPage(s.Arena, 4)
	log := &headlineLog{}

	g.Expect(s.Activate()).To(BeTrue())
	g.Expect(s.Activate()).To(BeFalse())
	g.Expect(s.Deactivate()).To(BeTrue())
	g.Expect(s.Deactivate()).To(BeFalse())

	g.Expect(s.Scheduler.Len()).To(BeZero())
	g.Expect(s.EventDispatcher.Len()).To(BeZero())
	g.Expect(s.Arena.Count(entity.KindParticle)).To(BeZero())

	s.EventDispatcher.Subscribe(event.HeadlineChanged, log)
	s.Update(frame)
	s.Scheduler.Step(30, frame)
	g.Expect(log.indexes).To(BeEmpty())
	bar, _ := s.Arena.Bar(entity.ProgressBar())
	g.Expect(bar.Width).To(BeZero())
}

func TestSplashReactivationStartsFresh(t *testing.T) {
	g := NewWithT(t)
	settings := config.DefaultSettings()
	s := newTestSplash(settings, maxSampler{})
	mountPage(s.Arena, 4)

	s.Activate()
	for i := 0; i < 3*60; i++ {
		s.Update(frame)
	}
	g.Expect(s.Progress.Value()).To(BeNumerically(">", 0))
	s.Deactivate()

	s.Activate()
	g.Expect(s.Activations()).To(Equal(2))
	g.Expect(s.Progress.Value()).To(BeZero())
	g.Expect(s.Arena.Count(entity.KindParticle)).To(Equal(settings.ParticleCount))
	g.Expect(s.EventDispatcher.ListenerCount(event.PointerMoved)).To(Equal(1))
	g.Expect(s.EventDispatcher.ListenerCount(event.PointerEnter)).To(Equal(4))
	s.Deactivate()
}

func TestSplashWithoutMountedViewDoesNothing(t *testing.T) {
	g := NewWithT(t)
	settings := config.DefaultSettings()
	settings.ParticleCount = 0
	s := newTestSplash(settings, utils.NewPRNGService(2))

	g.Expect(s.Activate()).To(BeTrue())
	g.Expect(s.Hover.Bound()).To(BeZero())
	g.Expect(s.Headline.Running()).To(BeFalse())
	g.Expect(s.Logo.Running()).To(BeFalse())
	// остаётся только тикер прогресса, ему элемент не нужен
	g.Expect(s.Scheduler.Len()).To(Equal(1))

	s.Scheduler.Step(20, frame)
	g.Expect(s.Progress.Value()).To(BeNumerically(">", 0))
	g.Expect(s.Deactivate()).To(BeTrue())
	g.Expect(s.Scheduler.Len()).To(BeZero())
}

func TestSplashCardsUntouchedWithoutPointer(t *testing.T) {
	g := NewWithT(t)
	s := newTestSplash(config.DefaultSettings(), utils.NewPRNGService(3))
	mountPage(s.Arena, 4)
	s.Activate()
	for i := 0; i < 10*60; i++ {
		s.Update(frame)
	}
	for i := 0; i < 4; i++ {
		tr, _ := s.Arena.Transform(entity.FeatureCard(i))
		g.Expect(*tr).To(Equal(*component.NewTransform()))
	}
	s.Deactivate()
}

func TestSplashUpdateIgnoredWhileInactive(t *testing.T) {
	g := NewWithT(t)
	s := newTestSplash(config.DefaultSettings(), utils.NewPRNGService(4))
	s.Update(1)
	g.Expect(s.Scheduler.Now()).To(BeZero())
	g.Expect(s.Active()).To(BeFalse())
}

func TestNewSplashRequiresDependencies(t *testing.T) {
	g := NewWithT(t)
	s, err := NewSplash(config.DefaultSettings(), nil, anim.NewScheduler(), event.NewDispatcher(), maxSampler{})
	g.Expect(err).To(MatchError(ErrMissingDependency))
	g.Expect(s).To(BeNil())

	_, err = NewSplash(config.DefaultSettings(), entity.NewArena(), anim.NewScheduler(), event.NewDispatcher(), nil)
	g.Expect(err).To(HaveOccurred())
}
