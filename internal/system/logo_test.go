package system

import (
	"testing"

	"go-coming-soon/internal/entity"

	. "github.com/onsi/gomega"
)

func TestLogoRotatesAndFloats(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	f.arena.Attach(entity.Logo())
	s := NewLogoSystem(f.arena, f.scheduler)
	s.Start()
	tr, _ := f.arena.Transform(entity.Logo())
	g.Expect(tr.Preserve3D).To(BeTrue())

	f.scheduler.Advance(4)
	g.Expect(tr.RotationY).To(BeNumerically("~", 180, 1e-9))
	g.Expect(tr.Y).To(BeNumerically("~", -10, 1e-9))

	f.scheduler.Advance(4)
	g.Expect(tr.RotationY).To(BeNumerically("~", 360, 1e-9))
	g.Expect(tr.Y).To(BeNumerically("~", -20, 1e-9))

	f.scheduler.Advance(7.5)
	g.Expect(tr.RotationY).To(BeNumerically(">", 700))
	g.Expect(tr.Y).To(BeNumerically(">", -1))

	for i := 0; i < 100; i++ {
		f.scheduler.Advance(0.9)
		g.Expect(tr.Y).To(BeNumerically(">=", -20))
		g.Expect(tr.Y).To(BeNumerically("<=", 0))
	}
	g.Expect(s.Running()).To(BeTrue())
}

func TestLogoSkippedWithoutElement(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	s := NewLogoSystem(f.arena, f.scheduler)
	s.Start()
	g.Expect(s.Running()).To(BeFalse())
	g.Expect(f.scheduler.Len()).To(BeZero())
	s.Stop()
	s.Stop()
}
