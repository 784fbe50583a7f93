package anim

// timeEpsilon поглощает ошибку округления при суммировании кадров:
// 60 кадров по 1/60 дают не ровно 1.0, но срабатывание на 1.0 должно случиться.
const timeEpsilon = 1e-9

// Timer вызывает функцию через Interval секунд; с Repeat — каждые Interval секунд.
// Большой dt приводит к нескольким срабатываниям подряд, как у пропущенных кадров.
// Срок n-го срабатывания считается от общего прошедшего времени, поэтому
// ошибка округления не копится от тика к тику.
type Timer struct {
	Interval float64
	Repeat   bool
	Fn       func()

	elapsed float64
	fired   int
	done    bool
}

// Update продвигает таймер. Возвращает true, когда таймер больше не сработает.
func (t *Timer) Update(dt float64) bool {
	if t.done {
		return true
	}
	if t.Interval <= 0 {
		t.fire()
		if !t.Repeat {
			t.done = true
		}
		return t.done
	}
	t.elapsed += dt
	for !t.done && float64(t.fired+1)*t.Interval <= t.elapsed+timeEpsilon {
		t.fired++
		t.fire()
		if !t.Repeat {
			t.done = true
		}
	}
	return t.done
}

// Fired — число срабатываний.
func (t *Timer) Fired() int {
	return t.fired
}

// Kill отменяет все будущие срабатывания, в том числе из самого колбэка.
func (t *Timer) Kill() {
	t.done = true
}

func (t *Timer) fire() {
	if t.Fn != nil {
		t.Fn()
	}
}
