package input

import "go-coming-soon/internal/config"

// CardRow раскладывает count карточек в один ряд по центру логического экрана.
func CardRow(count int) []Rect {
	if count <= 0 {
		return nil
	}
	total := float64(count)*config.CardWidth + float64(count-1)*config.CardGap
	x0 := (config.ScreenWidth - total) / 2
	rects := make([]Rect, count)
	for i := range rects {
		rects[i] = Rect{
			X: x0 + float64(i)*(config.CardWidth+config.CardGap),
			Y: config.CardsY,
			W: config.CardWidth,
			H: config.CardHeight,
		}
	}
	return rects
}
