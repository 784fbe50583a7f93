package system

import (
	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"
	"go-coming-soon/internal/utils"
)

const frame = 1.0 / 60

// edgeSampler всегда отдаёт одну из границ диапазона.
type edgeSampler struct {
	high bool
}

func (s edgeSampler) Sample(min, max float64) float64 {
	if s.high {
		return max
	}
	return min
}

func (s edgeSampler) SampleInt(min, max int) int {
	if s.high {
		return max
	}
	return min
}

func (s edgeSampler) Float64() float64 {
	if s.high {
		return 0.99
	}
	return 0
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

type fixture struct {
	arena      *entity.Arena
	scheduler  *anim.Scheduler
	dispatcher *event.Dispatcher
	rng        utils.Sampler
}

func newFixture() *fixture {
	return &fixture{
		arena:      entity.NewArena(),
		scheduler:  anim.NewScheduler(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(7),
	}
}
