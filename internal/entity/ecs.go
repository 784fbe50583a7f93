package entity

import (
	"fmt"
	"go-coming-soon/internal/component"
	"go-coming-soon/internal/types"
)

// SlotKind — логическая роль элемента на странице.
type SlotKind string

const (
	KindLogo        SlotKind = "logo"
	KindHeadline    SlotKind = "headline"
	KindProgressBar SlotKind = "progress-bar"
	KindParticle    SlotKind = "particle"
	KindFeatureCard SlotKind = "feature-card"
	KindHeroItem    SlotKind = "hero-item"
	KindCursor      SlotKind = "cursor"
)

// Slot — именованное место в арене: роль плюс номер для повторяющихся элементов.
type Slot struct {
	Kind  SlotKind
	Index int
}

func (s Slot) String() string {
	return fmt.Sprintf("%s[%d]", s.Kind, s.Index)
}

func Logo() Slot             { return Slot{Kind: KindLogo} }
func Headline() Slot         { return Slot{Kind: KindHeadline} }
func ProgressBar() Slot      { return Slot{Kind: KindProgressBar} }
func Cursor() Slot           { return Slot{Kind: KindCursor} }
func Particle(i int) Slot    { return Slot{Kind: KindParticle, Index: i} }
func FeatureCard(i int) Slot { return Slot{Kind: KindFeatureCard, Index: i} }
func HeroItem(i int) Slot    { return Slot{Kind: KindHeroItem, Index: i} }

// Arena хранит элементы страницы по слотам. Элементы появляются, когда
// дерево представления их монтирует, и исчезают при размонтировании;
// анимации только читают и меняют их компоненты.
type Arena struct {
	NextID     types.EntityID
	Slots      map[Slot]types.EntityID
	Transforms map[types.EntityID]*component.Transform
	Texts      map[types.EntityID]*component.Text
	Bars       map[types.EntityID]*component.Bar
	Particles  map[types.EntityID]*component.Particle
	Cards      map[types.EntityID]*component.Card
}

func NewArena() *Arena {
	return &Arena{
		NextID:     1,
		Slots:      make(map[Slot]types.EntityID),
		Transforms: make(map[types.EntityID]*component.Transform),
		Texts:      make(map[types.EntityID]*component.Text),
		Bars:       make(map[types.EntityID]*component.Bar),
		Particles:  make(map[types.EntityID]*component.Particle),
		Cards:      make(map[types.EntityID]*component.Card),
	}
}

func (a *Arena) newEntity() types.EntityID {
	id := a.NextID
	a.NextID++
	return id
}

// Attach монтирует элемент в слот и создаёт компоненты, положенные его роли.
// Повторный Attach того же слота возвращает уже существующий элемент.
func (a *Arena) Attach(slot Slot) types.EntityID {
	if id, ok := a.Slots[slot]; ok {
		return id
	}
	id := a.newEntity()
	a.Slots[slot] = id
	a.Transforms[id] = component.NewTransform()

	switch slot.Kind {
	case KindHeadline:
		a.Texts[id] = &component.Text{}
	case KindProgressBar:
		a.Bars[id] = &component.Bar{}
	case KindFeatureCard:
		a.Cards[id] = &component.Card{Index: slot.Index}
	case KindParticle:
		a.Particles[id] = &component.Particle{Index: slot.Index}
	}
	return id
}

// Detach размонтирует элемент. Пустой слот — не ошибка.
func (a *Arena) Detach(slot Slot) bool {
	id, ok := a.Slots[slot]
	if !ok {
		return false
	}
	delete(a.Slots, slot)
	delete(a.Transforms, id)
	delete(a.Texts, id)
	delete(a.Bars, id)
	delete(a.Particles, id)
	delete(a.Cards, id)
	return true
}

// Lookup возвращает элемент слота, если он смонтирован.
func (a *Arena) Lookup(slot Slot) (types.EntityID, bool) {
	id, ok := a.Slots[slot]
	return id, ok
}

// Transform возвращает преобразование элемента в слоте.
func (a *Arena) Transform(slot Slot) (*component.Transform, bool) {
	id, ok := a.Slots[slot]
	if !ok {
		return nil, false
	}
	t, ok := a.Transforms[id]
	return t, ok
}

// Text возвращает текстовый компонент элемента в слоте.
func (a *Arena) Text(slot Slot) (*component.Text, bool) {
	id, ok := a.Slots[slot]
	if !ok {
		return nil, false
	}
	t, ok := a.Texts[id]
	return t, ok
}

// Bar возвращает полосу прогресса элемента в слоте.
func (a *Arena) Bar(slot Slot) (*component.Bar, bool) {
	id, ok := a.Slots[slot]
	if !ok {
		return nil, false
	}
	b, ok := a.Bars[id]
	return b, ok
}

// Card возвращает карточку элемента в слоте.
func (a *Arena) Card(slot Slot) (*component.Card, bool) {
	id, ok := a.Slots[slot]
	if !ok {
		return nil, false
	}
	c, ok := a.Cards[id]
	return c, ok
}

// ParticleAt возвращает описание частицы в слоте.
func (a *Arena) ParticleAt(slot Slot) (*component.Particle, bool) {
	id, ok := a.Slots[slot]
	if !ok {
		return nil, false
	}
	p, ok := a.Particles[id]
	return p, ok
}

// Count возвращает число смонтированных элементов данной роли.
func (a *Arena) Count(kind SlotKind) int {
	n := 0
	for slot := range a.Slots {
		if slot.Kind == kind {
			n++
		}
	}
	return n
}

// Len — общее число смонтированных элементов.
func (a *Arena) Len() int {
	return len(a.Slots)
}

// Clear размонтирует всё.
func (a *Arena) Clear() {
	for slot := range a.Slots {
		a.Detach(slot)
	}
}
