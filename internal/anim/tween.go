package anim

import "go-coming-soon/internal/utils"

// RepeatForever — бесконечное повторение твина или таймлайна.
const RepeatForever = -1

// Track — одно анимируемое свойство: указатель на значение и цель.
// Начальное значение снимается в момент старта, а не при создании.
type Track struct {
	Target  *float64
	To      float64
	from    float64
	bounded bool
	lo, hi  float64
}

// To создаёт трек, ведущий *target к значению to.
func To(target *float64, to float64) Track {
	return Track{Target: target, To: to}
}

// Within ограничивает записываемые значения отрезком [lo, hi].
func (t Track) Within(lo, hi float64) Track {
	t.bounded = true
	t.lo, t.hi = lo, hi
	return t
}

// Tween интерполирует набор треков за Duration секунд после Delay.
// Delay действует только перед первой итерацией.
type Tween struct {
	Tracks     []Track
	Duration   float64
	Delay      float64
	Ease       EaseFunc
	Repeat     int // RepeatForever — бесконечно
	Yoyo       bool
	OnStart    func()
	OnUpdate   func(progress float64)
	OnComplete func()

	elapsed  float64
	captured bool
	done     bool
}

// NewTween создаёт однократный твин с линейной кривой.
func NewTween(duration float64, tracks ...Track) *Tween {
	return &Tween{Tracks: tracks, Duration: duration, Ease: Linear}
}

// Update продвигает твин на dt секунд. Возвращает true, когда твин завершён.
func (tw *Tween) Update(dt float64) bool {
	if tw.done {
		return true
	}
	tw.elapsed += dt
	if tw.elapsed < tw.Delay {
		return false
	}
	tw.capture()

	local := tw.elapsed - tw.Delay
	if tw.Duration <= 0 {
		tw.render(1)
		tw.finish()
		return true
	}

	iter := int(local / tw.Duration)
	if tw.Repeat >= 0 && iter > tw.Repeat {
		// последняя итерация yoyo с нечётным номером заканчивается в начале
		if tw.Yoyo && tw.Repeat%2 == 1 {
			tw.render(0)
		} else {
			tw.render(1)
		}
		tw.finish()
		return true
	}

	frac := (local - float64(iter)*tw.Duration) / tw.Duration
	if tw.Yoyo && iter%2 == 1 {
		frac = 1 - frac
	}
	tw.render(frac)
	return false
}

// Kill останавливает твин без финального кадра.
func (tw *Tween) Kill() {
	tw.done = true
}

// Done сообщает, завершён ли (или убит) твин.
func (tw *Tween) Done() bool {
	return tw.done
}

func (tw *Tween) capture() {
	if tw.captured {
		return
	}
	tw.captured = true
	for i := range tw.Tracks {
		if tw.Tracks[i].Target != nil {
			tw.Tracks[i].from = *tw.Tracks[i].Target
		}
	}
	if tw.OnStart != nil {
		tw.OnStart()
	}
}

func (tw *Tween) render(t float64) {
	p := t
	if tw.Ease != nil {
		p = tw.Ease(t)
	}
	for _, tr := range tw.Tracks {
		if tr.Target == nil {
			continue
		}
		v := utils.Lerp(tr.from, tr.To, p)
		if tr.bounded {
			v = utils.Clamp(v, tr.lo, tr.hi)
		}
		*tr.Target = v
	}
	if tw.OnUpdate != nil {
		tw.OnUpdate(p)
	}
}

func (tw *Tween) finish() {
	tw.done = true
	if tw.OnComplete != nil {
		tw.OnComplete()
	}
}
