package anim

// Task — всё, что продвигается общими часами.
type Task interface {
	// Update продвигает задачу на dt секунд; true означает, что задача завершена.
	Update(dt float64) bool
}

type killer interface {
	Kill()
}

// Handle идентифицирует задачу в планировщике. Нулевой Handle ничего не обозначает.
type Handle uint64

type entry struct {
	id   Handle
	task Task
	dead bool
}

// Scheduler — общие часы заставки. Хост вызывает Advance раз в кадр;
// все твины, таймлайны и таймеры живут только внутри него.
// Однопоточный: вызывать только из потока отрисовки.
type Scheduler struct {
	now       float64
	nextID    Handle
	entries   []*entry
	index     map[Handle]*entry
	advancing bool
}

// NewScheduler создаёт пустой планировщик.
func NewScheduler() *Scheduler {
	return &Scheduler{
		index: make(map[Handle]*entry),
	}
}

// Add регистрирует задачу. Задачи, добавленные внутри Advance,
// начинают двигаться со следующего кадра.
func (s *Scheduler) Add(task Task) Handle {
	s.nextID++
	e := &entry{id: s.nextID, task: task}
	s.entries = append(s.entries, e)
	s.index[e.id] = e
	return e.id
}

// Replace отменяет old и регистрирует task: последняя запись побеждает.
func (s *Scheduler) Replace(old Handle, task Task) Handle {
	s.Cancel(old)
	return s.Add(task)
}

// After вызывает fn один раз через delay секунд.
func (s *Scheduler) After(delay float64, fn func()) Handle {
	return s.Add(&Timer{Interval: delay, Fn: fn})
}

// Every вызывает fn каждые interval секунд до отмены.
func (s *Scheduler) Every(interval float64, fn func()) Handle {
	return s.Add(&Timer{Interval: interval, Repeat: true, Fn: fn})
}

// Cancel снимает задачу. Повторная отмена или неизвестный Handle — не ошибка, вернётся false.
func (s *Scheduler) Cancel(h Handle) bool {
	e, ok := s.index[h]
	if !ok {
		return false
	}
	delete(s.index, h)
	e.dead = true
	if k, ok := e.task.(killer); ok {
		k.Kill()
	}
	if !s.advancing {
		s.compact()
	}
	return true
}

// Active сообщает, зарегистрирована ли ещё задача.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.index[h]
	return ok
}

// Len — число живых задач.
func (s *Scheduler) Len() int {
	return len(s.index)
}

// Now — время в секундах, накопленное через Advance.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Advance продвигает все живые задачи на dt секунд в порядке регистрации.
func (s *Scheduler) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	s.now += dt
	s.advancing = true
	n := len(s.entries)
	for i := 0; i < n; i++ {
		e := s.entries[i]
		if e.dead {
			continue
		}
		if e.task.Update(dt) && !e.dead {
			e.dead = true
			delete(s.index, e.id)
		}
	}
	s.advancing = false
	s.compact()
}

// Step продвигает часы на total секунд кадрами по step секунд.
func (s *Scheduler) Step(total, step float64) {
	if step <= 0 {
		s.Advance(total)
		return
	}
	for total > 0 {
		dt := step
		if total < step {
			dt = total
		}
		s.Advance(dt)
		total -= dt
	}
}

func (s *Scheduler) compact() {
	live := s.entries[:0]
	for _, e := range s.entries {
		if !e.dead {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = live
}
