package anim

// Timeline — конечный автомат над упорядоченными сегментами:
// индекс сегмента плюс время внутри него. Сегменты идут строго по очереди,
// после последнего таймлайн возвращается к первому, пока не исчерпан Repeat.
//
// У каждого сегмента Delay — пауза перед ним внутри таймлайна.
// Начальные значения треков снимаются при первом проходе сегмента и
// переиспользуются на повторах.
type Timeline struct {
	Repeat   int
	OnRepeat func(iteration int)

	segments  []*Tween
	index     int
	local     float64
	iteration int
	done      bool
}

// NewTimeline создаёт пустой таймлайн с заданным числом повторов.
func NewTimeline(repeat int) *Timeline {
	return &Timeline{Repeat: repeat}
}

// Add дописывает сегмент в конец таймлайна.
func (tl *Timeline) Add(seg *Tween) *Timeline {
	tl.segments = append(tl.segments, seg)
	return tl
}

// Hold дописывает пустой сегмент длительностью d секунд.
func (tl *Timeline) Hold(d float64) *Timeline {
	return tl.Add(NewTween(d))
}

// Len — число сегментов.
func (tl *Timeline) Len() int { return len(tl.segments) }

// Index — номер текущего сегмента.
func (tl *Timeline) Index() int { return tl.index }

// Iteration — число завершённых полных проходов.
func (tl *Timeline) Iteration() int { return tl.iteration }

// Duration — длительность одного прохода.
func (tl *Timeline) Duration() float64 {
	var total float64
	for _, seg := range tl.segments {
		total += seg.Delay + seg.Duration
	}
	return total
}

// Update продвигает таймлайн на dt секунд. Возвращает true по завершении.
func (tl *Timeline) Update(dt float64) bool {
	if tl.done {
		return true
	}
	if len(tl.segments) == 0 {
		tl.done = true
		return true
	}
	if tl.Duration() <= 0 {
		// вырожденный таймлайн: один проход, иначе бесконечный цикл
		for _, seg := range tl.segments {
			seg.capture()
			seg.render(1)
		}
		tl.done = true
		return true
	}

	tl.local += dt
	for {
		seg := tl.segments[tl.index]
		total := seg.Delay + seg.Duration
		if tl.local+timeEpsilon < total {
			if tl.local >= seg.Delay {
				seg.capture()
				seg.render((tl.local - seg.Delay) / seg.Duration)
			}
			return false
		}

		seg.capture()
		seg.render(1)
		if seg.OnComplete != nil {
			seg.OnComplete()
		}
		tl.local -= total
		tl.index++
		if tl.index < len(tl.segments) {
			continue
		}

		tl.index = 0
		tl.iteration++
		if tl.Repeat >= 0 && tl.iteration > tl.Repeat {
			tl.done = true
			return true
		}
		if tl.OnRepeat != nil {
			tl.OnRepeat(tl.iteration)
		}
	}
}

// Kill останавливает таймлайн и отбрасывает его состояние.
func (tl *Timeline) Kill() {
	tl.done = true
	tl.segments = nil
	tl.index = 0
	tl.local = 0
}

// Done сообщает, завершён ли таймлайн.
func (tl *Timeline) Done() bool { return tl.done }
