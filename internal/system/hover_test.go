package system

import (
	"math/rand"
	"testing"

	"go-coming-soon/internal/component"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"

	. "github.com/onsi/gomega"
)

func mountCards(f *fixture, indexes ...int) {
	for _, i := range indexes {
		f.arena.Attach(entity.FeatureCard(i))
	}
}

func pointer(f *fixture, kind event.EventType, card int) {
	id, _ := f.arena.Lookup(entity.FeatureCard(card))
	f.dispatcher.Dispatch(event.Event{Type: kind, Target: id})
}

func TestHoverSkipsUnattachedCards(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	mountCards(f, 0, 1, 3)
	s := NewHoverSystem(f.arena, f.scheduler, f.dispatcher, 4)
	s.Start()

	g.Expect(s.Bound()).To(Equal(3))
	g.Expect(f.dispatcher.ListenerCount(event.PointerEnter)).To(Equal(3))
	g.Expect(f.dispatcher.ListenerCount(event.PointerLeave)).To(Equal(3))
}

func TestHoverEnterAndLeave(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	mountCards(f, 0, 1)
	s := NewHoverSystem(f.arena, f.scheduler, f.dispatcher, 2)
	s.Start()

	pointer(f, event.PointerEnter, 0)
	card, _ := f.arena.Card(entity.FeatureCard(0))
	other, _ := f.arena.Card(entity.FeatureCard(1))
	g.Expect(card.State).To(Equal(component.Hovered))
	g.Expect(other.State).To(Equal(component.Idle))

	f.scheduler.Step(0.5, frame)
	tr, _ := f.arena.Transform(entity.FeatureCard(0))
	g.Expect(tr.Scale).To(BeNumerically("~", 1.08, 1e-9))
	g.Expect(tr.RotationY).To(BeNumerically("~", 5, 1e-9))
	g.Expect(tr.Z).To(BeNumerically("~", 50, 1e-9))
	otherTr, _ := f.arena.Transform(entity.FeatureCard(1))
	g.Expect(otherTr.Scale).To(Equal(1.0))

	pointer(f, event.PointerLeave, 0)
	g.Expect(card.State).To(Equal(component.Idle))
	f.scheduler.Step(0.5, frame)
	g.Expect(tr.Scale).To(BeNumerically("~", 1, 1e-9))
	g.Expect(tr.RotationY).To(BeNumerically("~", 0, 1e-9))
	g.Expect(f.scheduler.Len()).To(BeZero())
}

func TestHoverRapidTogglingKeepsScaleInRange(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	mountCards(f, 0)
	s := NewHoverSystem(f.arena, f.scheduler, f.dispatcher, 1)
	s.Start()
	tr, _ := f.arena.Transform(entity.FeatureCard(0))
	card, _ := f.arena.Card(entity.FeatureCard(0))

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		pointer(f, event.PointerEnter, 0)
		f.scheduler.Advance(r.Float64() * 0.1)
		g.Expect(tr.Scale).To(BeNumerically(">=", 1))
		g.Expect(tr.Scale).To(BeNumerically("<=", 1.08))
		pointer(f, event.PointerLeave, 0)
		f.scheduler.Advance(r.Float64() * 0.1)
		g.Expect(tr.Scale).To(BeNumerically(">=", 1))
		g.Expect(tr.Scale).To(BeNumerically("<=", 1.08))
		// в полёте не больше одной анимации на карточку
		g.Expect(f.scheduler.Len()).To(BeNumerically("<=", 1))
	}
	g.Expect(card.State).To(Equal(component.Idle))
}

func TestHoverStopRemovesListeners(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	mountCards(f, 0, 1, 2, 3)
	s := NewHoverSystem(f.arena, f.scheduler, f.dispatcher, 4)
	s.Start()
	pointer(f, event.PointerEnter, 2)
	f.scheduler.Advance(0.1)

	s.Stop()
	g.Expect(f.dispatcher.Len()).To(BeZero())
	g.Expect(f.scheduler.Len()).To(BeZero())
	tr, _ := f.arena.Transform(entity.FeatureCard(2))
	g.Expect(tr.Scale).To(Equal(1.0))

	pointer(f, event.PointerEnter, 2)
	card, _ := f.arena.Card(entity.FeatureCard(2))
	g.Expect(card.State).To(Equal(component.Idle))
}
