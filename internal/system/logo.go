// internal/system/logo.go
package system

import (
	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"
)

// LogoSystem вращает логотип вокруг вертикальной оси: полный оборот с подъёмом,
// затем ещё оборот с возвратом вниз, и так бесконечно.
type LogoSystem struct {
	arena     *entity.Arena
	scheduler *anim.Scheduler
	handle    anim.Handle
}

func NewLogoSystem(arena *entity.Arena, scheduler *anim.Scheduler) *LogoSystem {
	return &LogoSystem{arena: arena, scheduler: scheduler}
}

// Start запускает вращение, если логотип смонтирован.
func (s *LogoSystem) Start() {
	tr, ok := s.arena.Transform(entity.Logo())
	if !ok {
		return
	}
	tr.Preserve3D = true

	rise := anim.NewTween(config.LogoTurn,
		anim.To(&tr.RotationY, config.LogoRotation),
		anim.To(&tr.Y, -config.LogoRise),
	)
	rise.Ease = anim.Power2InOut
	fall := anim.NewTween(config.LogoTurn,
		anim.To(&tr.RotationY, 2*config.LogoRotation),
		anim.To(&tr.Y, 0),
	)
	fall.Ease = anim.Power2InOut

	s.handle = s.scheduler.Add(anim.NewTimeline(anim.RepeatForever).Add(rise).Add(fall))
}

func (s *LogoSystem) Stop() {
	s.scheduler.Cancel(s.handle)
	s.handle = 0
}

// Running сообщает, крутится ли логотип.
func (s *LogoSystem) Running() bool {
	return s.handle != 0 && s.scheduler.Active(s.handle)
}
