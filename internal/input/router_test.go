package input

import (
	"testing"

	"go-coming-soon/internal/event"

	. "github.com/onsi/gomega"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newRouter() (*PointerRouter, *recorder) {
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, t := range []event.EventType{event.PointerMoved, event.PointerEnter, event.PointerLeave} {
		d.Subscribe(t, rec)
	}
	return NewPointerRouter(d), rec
}

func TestMoveEmitsEnterAndLeave(t *testing.T) {
	g := NewWithT(t)
	r, rec := newRouter()
	r.SetTarget(7, Rect{X: 10, Y: 10, W: 100, H: 50})

	r.Move(event.Point{X: 0, Y: 0})
	r.Move(event.Point{X: 20, Y: 20})
	r.Move(event.Point{X: 30, Y: 20})
	r.Move(event.Point{X: 200, Y: 20})

	g.Expect(rec.types()).To(Equal([]event.EventType{
		event.PointerMoved,
		event.PointerMoved, event.PointerEnter,
		event.PointerMoved,
		event.PointerMoved, event.PointerLeave,
	}))
	g.Expect(rec.events[2].Target).To(BeEquivalentTo(7))
	g.Expect(r.Inside(7)).To(BeFalse())
}

func TestMoveBetweenNeighboursLeavesFirst(t *testing.T) {
	g := NewWithT(t)
	r, rec := newRouter()
	r.SetTarget(1, Rect{X: 0, Y: 0, W: 10, H: 10})
	r.SetTarget(2, Rect{X: 10, Y: 0, W: 10, H: 10})

	r.Move(event.Point{X: 5, Y: 5})
	r.Move(event.Point{X: 15, Y: 5})

	g.Expect(rec.types()[2:]).To(Equal([]event.EventType{event.PointerMoved, event.PointerLeave, event.PointerEnter}))
	g.Expect(rec.events[3].Target).To(BeEquivalentTo(1))
	g.Expect(rec.events[4].Target).To(BeEquivalentTo(2))
}

func TestRepeatedPositionIsDropped(t *testing.T) {
	g := NewWithT(t)
	r, rec := newRouter()
	r.Move(event.Point{X: 1, Y: 1})
	r.Move(event.Point{X: 1, Y: 1})
	g.Expect(rec.events).To(HaveLen(1))
	last, ok := r.Last()
	g.Expect(ok).To(BeTrue())
	g.Expect(last).To(Equal(event.Point{X: 1, Y: 1}))
}

func TestRemovedTargetGetsNoEvents(t *testing.T) {
	g := NewWithT(t)
	r, rec := newRouter()
	r.SetTarget(3, Rect{W: 10, H: 10})
	r.Move(event.Point{X: 1, Y: 1})
	r.RemoveTarget(3)
	r.Move(event.Point{X: 50, Y: 50})
	g.Expect(rec.types()).To(Equal([]event.EventType{event.PointerMoved, event.PointerEnter, event.PointerMoved}))
}
