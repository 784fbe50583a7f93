package system

import (
	"testing"

	"go-coming-soon/internal/component"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"

	. "github.com/onsi/gomega"
)

func TestParticleFieldDescriptors(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	s := NewParticleSystem(f.arena, f.scheduler, f.rng, config.ParticleCount)
	s.Start()

	particles := s.Particles()
	g.Expect(particles).To(HaveLen(25))
	g.Expect(f.arena.Count(entity.KindParticle)).To(Equal(25))
	g.Expect(f.scheduler.Len()).To(Equal(25))

	for i, p := range particles {
		g.Expect(p.Index).To(Equal(i))
		g.Expect(p.Palette).To(Equal(i % 3))
		g.Expect(p.Size).To(BeNumerically(">=", 4))
		g.Expect(p.Size).To(BeNumerically("<=", 16))
		g.Expect(p.Left).To(BeNumerically(">=", 0))
		g.Expect(p.Left).To(BeNumerically("<=", 100))
		g.Expect(p.Shape).To(BeElementOf(component.ShapeCircle, component.ShapeRoundedSquare))

		tr, ok := f.arena.Transform(entity.Particle(i))
		g.Expect(ok).To(BeTrue())
		g.Expect(tr.Scale).To(BeNumerically(">=", 0.5))
		g.Expect(tr.Scale).To(BeNumerically("<=", 1.0))
		g.Expect(tr.Opacity).To(BeNumerically(">=", 0.2))
		g.Expect(tr.Opacity).To(BeNumerically("<=", 1.0))
	}
}

func TestParticleMotionStaysInBounds(t *testing.T) {
	g := NewWithT(t)
	for _, high := range []bool{false, true} {
		f := newFixture()
		s := NewParticleSystem(f.arena, f.scheduler, edgeSampler{high: high}, config.ParticleCount)
		s.Start()

		for step := 0; step < 20*60; step++ {
			f.scheduler.Advance(frame)
			for i := 0; i < config.ParticleCount; i++ {
				tr, _ := f.arena.Transform(entity.Particle(i))
				g.Expect(tr.Y).To(BeNumerically(">=", -200))
				g.Expect(tr.Y).To(BeNumerically("<=", 200))
				g.Expect(tr.X).To(BeNumerically(">=", -100))
				g.Expect(tr.X).To(BeNumerically("<=", 100))
				g.Expect(tr.Rotation).To(BeNumerically(">=", 0))
				g.Expect(tr.Rotation).To(BeNumerically("<=", 720))
				g.Expect(tr.Scale).To(BeNumerically(">=", 0.2))
				g.Expect(tr.Scale).To(BeNumerically("<=", 1.2))
			}
		}
		// бесконечное движение не завершается само
		g.Expect(f.scheduler.Len()).To(Equal(config.ParticleCount))
	}
}

func TestParticleStaggerDelaysMotion(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	s := NewParticleSystem(f.arena, f.scheduler, edgeSampler{high: true}, 3)
	s.Start()

	f.scheduler.Advance(0.15)
	first, _ := f.arena.Transform(entity.Particle(0))
	second, _ := f.arena.Transform(entity.Particle(1))
	third, _ := f.arena.Transform(entity.Particle(2))
	g.Expect(first.Y).NotTo(BeZero())
	g.Expect(second.Y).NotTo(BeZero())
	g.Expect(third.Y).To(BeZero())
}

func TestParticleStopDetachesEverything(t *testing.T) {
	g := NewWithT(t)
	f := newFixture()
	s := NewParticleSystem(f.arena, f.scheduler, f.rng, config.ParticleCount)
	s.Start()
	f.scheduler.Step(2, frame)

	s.Stop()
	g.Expect(f.scheduler.Len()).To(BeZero())
	g.Expect(f.arena.Count(entity.KindParticle)).To(BeZero())
	g.Expect(s.Count()).To(BeZero())
	s.Stop()
}
