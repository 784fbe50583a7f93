// internal/defs/types.go
package defs

// HeroDefinition — статический текст героя страницы.
type HeroDefinition struct {
	Title     string `json:"title"`
	Highlight string `json:"highlight"`
	Body      string `json:"body"`
	Chip      string `json:"chip"`
	CTA       string `json:"cta"`
	Brand     string `json:"brand"`
}

// FeatureDefinition описывает одну карточку возможностей.
type FeatureDefinition struct {
	Badge       string    `json:"badge"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Gradient    [2]string `json:"gradient"`
}

// Content — всё наполнение страницы.
type Content struct {
	Hero      HeroDefinition      `json:"hero"`
	Headlines []string            `json:"headlines"`
	Features  []FeatureDefinition `json:"features"`
}
