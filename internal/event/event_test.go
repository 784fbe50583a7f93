package event

import (
	"testing"

	. "github.com/onsi/gomega"
)

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func TestDispatchReachesSubscribers(t *testing.T) {
	g := NewWithT(t)
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(PointerMoved, a)
	d.Subscribe(PointerMoved, b)
	d.Subscribe(PointerEnter, b)

	d.Dispatch(Event{Type: PointerMoved, Data: Point{X: 3, Y: 4}})
	g.Expect(a.events).To(HaveLen(1))
	g.Expect(b.events).To(HaveLen(1))
	g.Expect(a.events[0].Data).To(Equal(Point{X: 3, Y: 4}))
	g.Expect(d.Len()).To(Equal(3))
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	g := NewWithT(t)
	d := NewDispatcher()
	a := &recorder{}
	d.Subscribe(PointerMoved, a)

	g.Expect(d.Unsubscribe(PointerMoved, a)).To(BeTrue())
	g.Expect(d.Unsubscribe(PointerMoved, a)).To(BeFalse())
	g.Expect(d.Unsubscribe(PointerLeave, a)).To(BeFalse())
	g.Expect(d.ListenerCount(PointerMoved)).To(BeZero())

	d.Dispatch(Event{Type: PointerMoved})
	g.Expect(a.events).To(BeEmpty())
}

type selfRemover struct {
	d     *Dispatcher
	calls int
}

func (s *selfRemover) OnEvent(Event) {
	s.calls++
	s.d.Unsubscribe(PointerMoved, s)
}

func TestUnsubscribeInsideHandler(t *testing.T) {
	g := NewWithT(t)
	d := NewDispatcher()
	s := &selfRemover{d: d}
	other := &recorder{}
	d.Subscribe(PointerMoved, s)
	d.Subscribe(PointerMoved, other)

	d.Dispatch(Event{Type: PointerMoved})
	d.Dispatch(Event{Type: PointerMoved})
	g.Expect(s.calls).To(Equal(1))
	g.Expect(other.events).To(HaveLen(2))
}
