package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"go-coming-soon/internal/assets"
	"go-coming-soon/internal/component"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/defs"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/input"
	"go-coming-soon/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Разметка страницы в пикселях логического экрана.
const (
	logoX       = 60.0
	logoY       = 44.0
	logoSize    = 44.0
	chipY       = 150.0
	titleY      = 250.0
	headlineY   = 340.0
	bodyY       = 400.0
	bodyWidth   = 760.0
	progressY   = 530.0
	ctaY        = 575.0
	cardRadius  = 18.0
	trackHeight = 10.0
)

// cardLayout — карточка и её прямоугольник на экране.
type cardLayout struct {
	slot     entity.Slot
	rect     input.Rect
	def      defs.FeatureDefinition
	gradient render.Gradient
}

// Page — неактивное дерево представления: монтирует элементы в арену,
// регистрирует области карточек для указателя и рисует то, что в арене.
// Само ничего не анимирует.
type Page struct {
	arena   *entity.Arena
	router  *input.PointerRouter
	content defs.Content
	faces   *assets.FaceManager
	painter *painter
	chip    *BetaChip

	cards   []cardLayout
	mounted []entity.Slot
}

func NewPage(arena *entity.Arena, router *input.PointerRouter, content defs.Content, faces *assets.FaceManager) *Page {
	p := &Page{
		arena:   arena,
		router:  router,
		content: content,
		faces:   faces,
		painter: newPainter(),
	}
	p.chip = NewBetaChip(config.ScreenWidth/2, chipY, content.Hero.Chip, faces.Face(assets.Bold, 14))
	return p
}

// Mount подключает элементы страницы. Карточек не больше, чем описано в наполнении.
func (p *Page) Mount(cardCount int) {
	p.Unmount()

	slots := []entity.Slot{entity.Logo(), entity.Headline(), entity.ProgressBar(), entity.Cursor()}
	for i := 0; i < config.HeroItems; i++ {
		slots = append(slots, entity.HeroItem(i))
	}
	for _, slot := range slots {
		p.arena.Attach(slot)
	}
	p.mounted = slots

	if cardCount > len(p.content.Features) {
		cardCount = len(p.content.Features)
	}
	for i, rect := range input.CardRow(cardCount) {
		slot := entity.FeatureCard(i)
		id := p.arena.Attach(slot)
		p.router.SetTarget(id, rect)
		def := p.content.Features[i]
		p.cards = append(p.cards, cardLayout{slot: slot, rect: rect, def: def, gradient: def.ParsedGradient()})
		p.mounted = append(p.mounted, slot)
	}
}

// Unmount отключает всё, что подключил Mount.
func (p *Page) Unmount() {
	for _, slot := range p.mounted {
		p.arena.Detach(slot)
	}
	p.router.Clear()
	p.mounted = nil
	p.cards = nil
}

// Mounted сообщает, подключена ли страница.
func (p *Page) Mounted() bool {
	return len(p.mounted) > 0
}

// Draw рисует кадр; now — время часов заставки, от него пульсирует плашка.
func (p *Page) Draw(screen *ebiten.Image, now float64) {
	p.drawBackground(screen)
	p.drawParticles(screen)
	p.drawLogo(screen)

	p.chip.Draw(screen, now, p.heroOpacity(0))
	p.drawTitle(screen)
	p.drawHeadline(screen)
	p.drawBody(screen)
	p.drawProgress(screen)
	p.drawCards(screen)
	p.drawCursor(screen)
}

func (p *Page) drawBackground(screen *ebiten.Image) {
	bg := render.Gradient{From: config.BackgroundTop, To: config.BackgroundBottom}
	const band = 10
	for y := 0; y < config.ScreenHeight; y += band {
		clr := bg.At(float64(y) / config.ScreenHeight)
		vector.DrawFilledRect(screen, 0, float32(y), config.ScreenWidth, band, clr, false)
	}
}

func (p *Page) drawParticles(screen *ebiten.Image) {
	n := p.arena.Count(entity.KindParticle)
	for i := 0; i < n; i++ {
		slot := entity.Particle(i)
		pt, ok := p.arena.ParticleAt(slot)
		if !ok {
			continue
		}
		tr, _ := p.arena.Transform(slot)
		palette := config.ParticlePalettes[pt.Palette%len(config.ParticlePalettes)]
		clr := render.WithAlpha(render.Gradient{From: palette[0], To: palette[1]}.At(0.5), tr.Opacity*0.6)

		cx := pt.Left/100*config.ScreenWidth + tr.X
		cy := pt.Top/100*config.ScreenHeight + tr.Y
		size := pt.Size * tr.Scale
		if pt.Shape == component.ShapeCircle {
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(size/2), clr, true)
			continue
		}
		sq := roundedRect(cx-size/2, cy-size/2, size, size, size*0.2)
		p.painter.fill(screen, rotate(sq, cx, cy, tr.Rotation), clr)
	}
}

func (p *Page) drawLogo(screen *ebiten.Image) {
	tr, ok := p.arena.Transform(entity.Logo())
	if !ok {
		return
	}
	cx := logoX + logoSize/2
	cy := logoY + logoSize/2 + tr.Y
	shape := roundedRect(cx-logoSize/2, cy-logoSize/2, logoSize, logoSize, 10)
	// обратная сторона темнее лицевой
	face := render.Gradient{From: config.AccentColor, To: config.AccentLightColor}.At(0.5)
	if math.Cos(tr.RotationY*math.Pi/180) < 0 {
		face = render.DarkenColor(face)
	}
	p.painter.fill(screen, turnY(shape, cx, cy, tr.RotationY), face)

	brand := p.faces.Face(assets.Bold, 26)
	text.Draw(screen, p.content.Hero.Brand, brand, int(logoX+logoSize+16), int(logoY+logoSize/2+9), config.TextLightColor)
}

// heroOpacity и heroOffset читают анимацию появления i-го блока героя.
func (p *Page) heroOpacity(i int) float64 {
	if tr, ok := p.arena.Transform(entity.HeroItem(i)); ok {
		return tr.Opacity
	}
	return 1
}

func (p *Page) heroOffset(i int) float64 {
	if tr, ok := p.arena.Transform(entity.HeroItem(i)); ok {
		return tr.Y
	}
	return 0
}

func (p *Page) drawTitle(screen *ebiten.Image) {
	face := p.faces.Face(assets.Bold, 60)
	opacity := p.heroOpacity(1)
	y := titleY + p.heroOffset(1)
	title := p.content.Hero.Title + " "
	tw := measure(face, title)
	hw := measure(face, p.content.Hero.Highlight)
	x := (config.ScreenWidth - tw - hw) / 2
	drawText(screen, title, face, x, y, render.WithAlpha(config.TextLightColor, opacity))
	drawText(screen, p.content.Hero.Highlight, face, x+tw, y, render.WithAlpha(config.AccentLightColor, opacity))
}

func (p *Page) drawHeadline(screen *ebiten.Image) {
	txt, ok := p.arena.Text(entity.Headline())
	if !ok {
		return
	}
	face := p.faces.Face(assets.Regular, 28)
	opacity := p.heroOpacity(1)
	y := headlineY + p.heroOffset(1)
	w := measure(face, txt.Value)
	x := (config.ScreenWidth - w) / 2
	drawText(screen, txt.Value, face, x, y, render.WithAlpha(config.AccentColor, opacity))
	// каретка печатной машинки
	vector.DrawFilledRect(screen, float32(x+w+4), float32(y-24), 3, 30, render.WithAlpha(config.AccentColor, opacity), false)
}

func (p *Page) drawBody(screen *ebiten.Image) {
	face := p.faces.Face(assets.Regular, 19)
	opacity := p.heroOpacity(2)
	y := bodyY + p.heroOffset(2)
	lineHeight := float64(face.Metrics().Height.Ceil()) + 6
	for i, line := range wrap(face, p.content.Hero.Body, bodyWidth) {
		w := measure(face, line)
		drawText(screen, line, face, (config.ScreenWidth-w)/2, y+float64(i)*lineHeight, render.WithAlpha(config.TextBodyColor, opacity))
	}
}

func (p *Page) drawProgress(screen *ebiten.Image) {
	bar, ok := p.arena.Bar(entity.ProgressBar())
	if !ok {
		return
	}
	opacity := p.heroOpacity(3)
	y := progressY + p.heroOffset(3)
	x := (config.ScreenWidth - config.ProgressTrackWidth) / 2

	label := p.faces.Face(assets.Regular, 15)
	drawText(screen, "Launch progress", label, x, y-10, render.WithAlpha(config.TextMutedColor, opacity))
	value := fmt.Sprintf("%.0f%%", bar.Width)
	drawText(screen, value, label, x+config.ProgressTrackWidth-measure(label, value), y-10, render.WithAlpha(config.AccentLightColor, opacity))

	p.painter.fill(screen, roundedRect(x, y, config.ProgressTrackWidth, trackHeight, trackHeight/2), render.WithAlpha(config.TrackColor, opacity))
	if w := bar.Width / 100 * config.ProgressTrackWidth; w > 0 {
		fill := render.Gradient{From: config.AccentColor, To: config.AccentLightColor}.At(bar.Width / 100)
		p.painter.fill(screen, roundedRect(x, y, w, trackHeight, trackHeight/2), render.WithAlpha(fill, opacity))
	}

	cta := p.faces.Face(assets.Bold, 18)
	cw := measure(cta, p.content.Hero.CTA) + 56
	cx := (config.ScreenWidth - cw) / 2
	cy := ctaY + p.heroOffset(3)
	p.painter.fill(screen, roundedRect(cx, cy, cw, 48, 24), render.WithAlpha(config.AccentColor, opacity))
	drawText(screen, p.content.Hero.CTA, cta, cx+28, cy+31, render.WithAlpha(config.TextLightColor, opacity))
}

func (p *Page) drawCards(screen *ebiten.Image) {
	title := p.faces.Face(assets.Bold, 19)
	desc := p.faces.Face(assets.Regular, 14)
	badge := p.faces.Face(assets.Bold, 14)
	for _, c := range p.cards {
		tr, ok := p.arena.Transform(c.slot)
		if !ok {
			continue
		}
		cx := c.rect.X + c.rect.W/2
		cy := c.rect.Y + c.rect.H/2
		// глубина поднимает карточку и отбрасывает тень
		lift := tr.Z * 0.12

		shadow := roundedRect(c.rect.X, c.rect.Y, c.rect.W, c.rect.H, cardRadius)
		shadow = scale(shadow, cx, cy, tr.Scale)
		for i := range shadow {
			shadow[i].y += lift * 0.6
		}
		p.painter.fill(screen, shadow, color.RGBA{0, 0, 0, uint8(math.Max(0, math.Min(120, 40+tr.Z)))})

		body := roundedRect(c.rect.X, c.rect.Y-lift, c.rect.W, c.rect.H, cardRadius)
		body = turnY(scale(body, cx, cy-lift, tr.Scale), cx, cy-lift, tr.RotationY)
		p.painter.fill(screen, body, config.CardColor)
		p.painter.stroke(screen, body, 1, config.CardStrokeColor)

		card, _ := p.arena.Card(c.slot)
		k := tr.Scale
		left := cx - (c.rect.W/2-22)*k*math.Cos(tr.RotationY*math.Pi/180)
		top := cy - lift - (c.rect.H/2-22)*k

		icon := roundedRect(left, top, 44*k, 44*k, 12*k)
		p.painter.fill(screen, icon, c.gradient.At(0.5))
		bw := measure(badge, c.def.Badge)
		drawText(screen, c.def.Badge, badge, left+(44*k-bw)/2, top+28*k, config.TextLightColor)

		titleColor := config.TextLightColor
		if card != nil && card.State == component.Hovered {
			titleColor = config.AccentLightColor
		}
		drawText(screen, c.def.Title, title, left, top+80*k, titleColor)
		for i, line := range wrap(desc, c.def.Description, (c.rect.W-44)*k) {
			drawText(screen, line, desc, left, top+(106+float64(i)*20)*k, config.TextMutedColor)
		}
	}
}

func (p *Page) drawCursor(screen *ebiten.Image) {
	tr, ok := p.arena.Transform(entity.Cursor())
	if !ok {
		return
	}
	r := float32(config.CursorSize / 2)
	x := float32(tr.X) + r
	y := float32(tr.Y) + r
	vector.DrawFilledCircle(screen, x, y, r, render.WithAlpha(config.AccentLightColor, 0.55), true)
	vector.StrokeCircle(screen, x, y, r, 1.5, config.TextLightColor, true)
}

func measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s).Ceil())
}

func drawText(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	text.Draw(screen, s, face, int(x), int(y), clr)
}

// wrap разбивает текст на строки не шире width.
func wrap(face font.Face, s string, width float64) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if line != "" && measure(face, next) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
