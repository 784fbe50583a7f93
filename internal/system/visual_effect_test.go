package system

import (
	"testing"

	"go-coming-soon/internal/entity"

	. "github.com/onsi/gomega"
)

func TestEntranceRevealsHeroItems(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	for i := 0; i < 3; i++ {
		f.arena.Attach(entity.HeroItem(i))
	}
	s := NewVisualEffectSystem(f.arena, f.scheduler, 4)
	s.Start()
	g.Expect(s.Pending()).To(Equal(3))

	first, _ := f.arena.Transform(entity.HeroItem(0))
	g.Expect(first.Opacity).To(BeZero())
	g.Expect(first.Y).To(Equal(60.0))

	f.scheduler.Step(2, frame)
	for i := 0; i < 3; i++ {
		tr, _ := f.arena.Transform(entity.HeroItem(i))
		g.Expect(tr.Opacity).To(Equal(1.0))
		g.Expect(tr.Y).To(BeZero())
	}
	g.Expect(s.Pending()).To(BeZero())
	s.Stop()
}
