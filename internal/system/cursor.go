// internal/system/cursor.go
package system

import (
	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/component"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/entity"

	"github.com/charmbracelet/harmonica"
)

// cursorSettle — ωt, за которое критически затухающая пружина проходит ~95% пути.
const cursorSettle = 4.7

// CursorSystem тянет кружок-курсор за указателем с коротким запаздыванием.
// Позицию читает у PointerSystem, пишет только в слот курсора.
type CursorSystem struct {
	arena     *entity.Arena
	scheduler *anim.Scheduler
	pointer   *PointerSystem
	handle    anim.Handle

	spring      harmonica.Spring
	springDelta float64
	velX, velY  float64
	transform   *component.Transform
}

func NewCursorSystem(arena *entity.Arena, scheduler *anim.Scheduler, pointer *PointerSystem) *CursorSystem {
	return &CursorSystem{arena: arena, scheduler: scheduler, pointer: pointer}
}

// Start регистрирует покадровое обновление, если курсор смонтирован.
func (s *CursorSystem) Start() {
	tr, ok := s.arena.Transform(entity.Cursor())
	if !ok {
		return
	}
	s.transform = tr
	s.velX, s.velY = 0, 0
	s.handle = s.scheduler.Add(s)
}

func (s *CursorSystem) Stop() {
	s.scheduler.Cancel(s.handle)
	s.handle = 0
	s.transform = nil
}

// Update — один кадр пружины к текущей позиции указателя.
func (s *CursorSystem) Update(dt float64) bool {
	if s.transform == nil {
		return true
	}
	if dt != s.springDelta {
		s.spring = harmonica.NewSpring(dt, cursorSettle/config.CursorTransition, 1.0)
		s.springDelta = dt
	}
	target := s.pointer.Position()
	half := config.CursorSize / 2
	s.transform.X, s.velX = s.spring.Update(s.transform.X, s.velX, target.X-half)
	s.transform.Y, s.velY = s.spring.Update(s.transform.Y, s.velY, target.Y-half)
	return false
}
