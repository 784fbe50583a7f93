package term

import (
	"fmt"
	"math"

	"go-coming-soon/internal/component"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/defs"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"
	"go-coming-soon/internal/input"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Строки разметки в долях высоты экрана.
const (
	chipRow     = 0.16
	titleRow    = 0.27
	headlineRow = 0.37
	bodyRow     = 0.44
	progressRow = 0.58
	barCells    = 40
)

var (
	styleBase     = tcell.StyleDefault.Background(tcell.FromImageColor(config.BackgroundTop)).Foreground(tcell.FromImageColor(config.TextBodyColor))
	styleLight    = styleBase.Foreground(tcell.FromImageColor(config.TextLightColor)).Bold(true)
	styleMuted    = styleBase.Foreground(tcell.FromImageColor(config.TextMutedColor))
	styleAccent   = styleBase.Foreground(tcell.FromImageColor(config.AccentColor))
	styleHighLine = styleBase.Foreground(tcell.FromImageColor(config.AccentLightColor)).Bold(true)
	styleChip     = styleBase.Foreground(tcell.FromImageColor(config.ChipColor))
	styleTrack    = styleBase.Foreground(tcell.FromImageColor(config.TextMutedColor)).Dim(true)
	styleCursor   = styleBase.Reverse(true)
)

// logoFrames — поворот логотипа вокруг вертикальной оси по |cos|.
var logoFrames = []rune{'│', '▌', '▋', '█'}

// Renderer рисует ту же страницу в сетке символов терминала.
// Координаты ядра остаются логическими пикселями; экран лишь их масштабирует.
type Renderer struct {
	screen  tcell.Screen
	arena   *entity.Arena
	router  *input.PointerRouter
	content defs.Content

	cards   []entity.Slot
	rects   []input.Rect
	mounted []entity.Slot
}

func NewRenderer(screen tcell.Screen, arena *entity.Arena, router *input.PointerRouter, content defs.Content) *Renderer {
	return &Renderer{screen: screen, arena: arena, router: router, content: content}
}

// Mount подключает элементы страницы так же, как графическая версия.
func (r *Renderer) Mount(cardCount int) {
	r.Unmount()
	slots := []entity.Slot{entity.Logo(), entity.Headline(), entity.ProgressBar(), entity.Cursor()}
	for i := 0; i < config.HeroItems; i++ {
		slots = append(slots, entity.HeroItem(i))
	}
	for _, slot := range slots {
		r.arena.Attach(slot)
	}
	r.mounted = slots

	if cardCount > len(r.content.Features) {
		cardCount = len(r.content.Features)
	}
	for i, rect := range input.CardRow(cardCount) {
		slot := entity.FeatureCard(i)
		id := r.arena.Attach(slot)
		r.router.SetTarget(id, rect)
		r.cards = append(r.cards, slot)
		r.rects = append(r.rects, rect)
		r.mounted = append(r.mounted, slot)
	}
}

func (r *Renderer) Unmount() {
	for _, slot := range r.mounted {
		r.arena.Detach(slot)
	}
	r.router.Clear()
	r.mounted = nil
	r.cards = nil
	r.rects = nil
}

// PointerAt переводит клетку терминала в центр соответствующей области логического экрана.
func (r *Renderer) PointerAt(col, row int) event.Point {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return event.Point{}
	}
	return event.Point{
		X: (float64(col) + 0.5) * config.ScreenWidth / float64(w),
		Y: (float64(row) + 0.5) * config.ScreenHeight / float64(h),
	}
}

// cell переводит логические пиксели в клетку.
func (r *Renderer) cell(x, y float64) (int, int) {
	w, h := r.screen.Size()
	return int(math.Floor(x / config.ScreenWidth * float64(w))), int(math.Floor(y / config.ScreenHeight * float64(h)))
}

// Draw перерисовывает экран целиком. Show вызывает хост.
func (r *Renderer) Draw() {
	r.screen.SetStyle(styleBase)
	r.screen.Clear()
	_, h := r.screen.Size()

	r.drawParticles()
	r.drawLogo()
	if r.visible(0) {
		r.centered(row(h, chipRow), "● "+r.content.Hero.Chip, styleChip)
	}
	if r.visible(1) {
		title := r.content.Hero.Title + " "
		w := runewidth.StringWidth(title) + runewidth.StringWidth(r.content.Hero.Highlight)
		x := r.centerX(w)
		x = r.text(x, row(h, titleRow), title, styleLight)
		r.text(x, row(h, titleRow), r.content.Hero.Highlight, styleHighLine)
		if txt, ok := r.arena.Text(entity.Headline()); ok {
			r.centered(row(h, headlineRow), txt.Value+"▏", styleAccent)
		}
	}
	if r.visible(2) {
		r.centered(row(h, bodyRow), r.content.Hero.Body, styleBase)
	}
	if r.visible(3) {
		r.drawProgress(row(h, progressRow))
	}
	r.drawCards()
	r.drawCursor()
}

// visible — блок героя показывается, когда появление прошло половину пути.
func (r *Renderer) visible(i int) bool {
	tr, ok := r.arena.Transform(entity.HeroItem(i))
	return !ok || tr.Opacity >= 0.5
}

func row(h int, frac float64) int {
	return int(float64(h) * frac)
}

func (r *Renderer) centerX(width int) int {
	w, _ := r.screen.Size()
	x := (w - width) / 2
	if x < 0 {
		return 0
	}
	return x
}

func (r *Renderer) centered(y int, s string, style tcell.Style) {
	r.text(r.centerX(runewidth.StringWidth(s)), y, s, style)
}

// text пишет строку с позиции (x, y) и возвращает колонку после неё.
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (r *Renderer) drawParticles() {
	n := r.arena.Count(entity.KindParticle)
	for i := 0; i < n; i++ {
		slot := entity.Particle(i)
		p, ok := r.arena.ParticleAt(slot)
		if !ok {
			continue
		}
		tr, _ := r.arena.Transform(slot)
		x, y := r.cell(p.Left/100*config.ScreenWidth+tr.X, p.Top/100*config.ScreenHeight+tr.Y)
		glyph := '■'
		if p.Shape == component.ShapeCircle {
			glyph = '●'
		}
		if tr.Opacity*tr.Scale < 0.3 {
			glyph = '·'
		}
		palette := config.ParticlePalettes[p.Palette%len(config.ParticlePalettes)]
		r.screen.SetContent(x, y, glyph, nil, styleBase.Foreground(tcell.FromImageColor(palette[0])))
	}
}

func (r *Renderer) drawLogo() {
	tr, ok := r.arena.Transform(entity.Logo())
	if !ok {
		return
	}
	turn := math.Abs(math.Cos(tr.RotationY * math.Pi / 180))
	frame := logoFrames[int(math.Round(turn*float64(len(logoFrames)-1)))]
	_, y := r.cell(0, 44+tr.Y)
	if y < 1 {
		y = 1
	}
	r.screen.SetContent(2, y, frame, nil, styleAccent)
	r.text(4, 1, r.content.Hero.Brand, styleLight)
}

func (r *Renderer) drawProgress(y int) {
	bar, ok := r.arena.Bar(entity.ProgressBar())
	if !ok {
		return
	}
	x := r.centerX(barCells)
	filled := int(math.Round(bar.Width / 100 * barCells))
	for i := 0; i < barCells; i++ {
		if i < filled {
			r.screen.SetContent(x+i, y, '█', nil, styleAccent)
		} else {
			r.screen.SetContent(x+i, y, '░', nil, styleTrack)
		}
	}
	r.text(x+barCells+2, y, fmt.Sprintf("%.0f%%", bar.Width), styleHighLine)
	r.text(x, y-1, "Launch progress", styleMuted)
}

func (r *Renderer) drawCards() {
	for i, slot := range r.cards {
		tr, ok := r.arena.Transform(slot)
		if !ok {
			continue
		}
		rect := r.rects[i]
		// карточка растёт вместе с масштабом, глубина поднимает её на строку
		grow := (tr.Scale - 1) * rect.W / 2
		x0, y0 := r.cell(rect.X-grow, rect.Y-grow-tr.Z*0.4)
		x1, y1 := r.cell(rect.X+rect.W+grow, rect.Y+rect.H+grow-tr.Z*0.4)

		style := styleMuted
		if card, ok := r.arena.Card(slot); ok && card.State == component.Hovered {
			style = styleHighLine
		}
		r.box(x0, y0, x1-1, y1-1, style)
		def := r.content.Features[i]
		r.text(x0+2, y0+1, "["+def.Badge+"]", styleChip)
		r.text(x0+2, y0+2, clip(def.Title, x1-x0-4), styleLight)
		r.text(x0+2, y0+3, clip(def.Description, x1-x0-4), styleBase)
	}
}

func (r *Renderer) box(x0, y0, x1, y1 int, style tcell.Style) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, style)
		r.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, style)
		r.screen.SetContent(x1, y, '│', nil, style)
	}
	r.screen.SetContent(x0, y0, '╭', nil, style)
	r.screen.SetContent(x1, y0, '╮', nil, style)
	r.screen.SetContent(x0, y1, '╰', nil, style)
	r.screen.SetContent(x1, y1, '╯', nil, style)
}

func (r *Renderer) drawCursor() {
	tr, ok := r.arena.Transform(entity.Cursor())
	if !ok {
		return
	}
	half := config.CursorSize / 2
	x, y := r.cell(tr.X+half, tr.Y+half)
	mainc, _, _, _ := r.screen.GetContent(x, y)
	if mainc == 0 {
		mainc = ' '
	}
	r.screen.SetContent(x, y, mainc, nil, styleCursor)
}

// clip обрезает строку до width колонок.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
