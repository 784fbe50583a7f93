// internal/system/particle.go
package system

import (
	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/component"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/utils"
)

// ParticleSystem создаёт декоративное поле частиц и держит бесконечное
// движение каждой из них. Частицы принадлежат только этой системе.
type ParticleSystem struct {
	arena     *entity.Arena
	scheduler *anim.Scheduler
	rng       utils.Sampler
	count     int
	slots     []entity.Slot
	motions   []anim.Handle
}

// NewParticleSystem создает систему на count частиц.
func NewParticleSystem(arena *entity.Arena, scheduler *anim.Scheduler, rng utils.Sampler, count int) *ParticleSystem {
	return &ParticleSystem{
		arena:     arena,
		scheduler: scheduler,
		rng:       rng,
		count:     count,
	}
}

// Start монтирует частицы и запускает их движение.
func (s *ParticleSystem) Start() {
	for i := 0; i < s.count; i++ {
		slot := entity.Particle(i)
		s.arena.Attach(slot)
		p, _ := s.arena.ParticleAt(slot)
		tr, _ := s.arena.Transform(slot)

		p.Left = s.rng.Sample(0, 100)
		p.Top = s.rng.Sample(0, 100)
		p.Size = s.rng.Sample(config.ParticleSizeMin, config.ParticleSizeMax)
		p.Shape = component.ShapeRoundedSquare
		if s.rng.Float64() > 0.5 {
			p.Shape = component.ShapeCircle
		}
		p.Palette = i % component.PaletteGroups

		tr.Scale = s.rng.Sample(config.ParticleScaleMin, config.ParticleScaleMax)
		tr.Opacity = s.rng.Sample(config.ParticleOpacityMin, config.ParticleOpacityMax)

		motion := &anim.Tween{
			Tracks: []anim.Track{
				anim.To(&tr.Y, s.rng.Sample(-config.ParticleDriftY, config.ParticleDriftY)),
				anim.To(&tr.X, s.rng.Sample(-config.ParticleDriftX, config.ParticleDriftX)),
				anim.To(&tr.Rotation, s.rng.Sample(0, config.ParticleSpinMax)),
				anim.To(&tr.Scale, s.rng.Sample(config.ParticleTargetMin, config.ParticleTargetMax)),
			},
			Duration: s.rng.Sample(config.ParticleDurMin, config.ParticleDurMax),
			Delay:    float64(i) * config.ParticleStagger,
			Ease:     anim.SineInOut,
			Repeat:   anim.RepeatForever,
			Yoyo:     true,
		}
		s.slots = append(s.slots, slot)
		s.motions = append(s.motions, s.scheduler.Add(motion))
	}
}

// Stop отменяет движение и размонтирует все частицы.
func (s *ParticleSystem) Stop() {
	for _, h := range s.motions {
		s.scheduler.Cancel(h)
	}
	for _, slot := range s.slots {
		s.arena.Detach(slot)
	}
	s.motions = nil
	s.slots = nil
}

// Count — число частиц текущего поля.
func (s *ParticleSystem) Count() int {
	return len(s.slots)
}

// Particles возвращает описания частиц в порядке создания.
func (s *ParticleSystem) Particles() []component.Particle {
	out := make([]component.Particle, 0, len(s.slots))
	for _, slot := range s.slots {
		if p, ok := s.arena.ParticleAt(slot); ok {
			out = append(out, *p)
		}
	}
	return out
}
