// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"go-coming-soon/pkg/render"

	"github.com/hashicorp/go-multierror"
)

// DefaultContent возвращает наполнение исходной страницы.
func DefaultContent() Content {
	return Content{
		Hero: HeroDefinition{
			Title:     "The Future of",
			Highlight: "Commerce",
			Body:      "Experience the next generation of e-commerce with AI-powered personalization, blockchain security, and sustainable delivery solutions. Where tradition meets innovation.",
			Chip:      "Limited Beta Access",
			CTA:       "Get Early Access",
			Brand:     "Bhoovio",
		},
		Headlines: []string{
			"Connecting Rural Roots to Urban Markets",
			"Empowering Village Artisans Globally",
			"Sustainable Commerce Revolution",
			"Authentic Crafts, Modern Platform",
		},
		Features: []FeatureDefinition{
			{Badge: "AI", Title: "AI-Powered Shopping", Description: "Smart recommendations & voice search", Gradient: [2]string{"#667eea", "#764ba2"}},
			{Badge: "ECO", Title: "Eco-Intelligence", Description: "Carbon-neutral delivery & packaging", Gradient: [2]string{"#10b981", "#34d399"}},
			{Badge: "GO", Title: "Instant Delivery", Description: "Drone delivery & real-time tracking", Gradient: [2]string{"#f093fb", "#f5576c"}},
			{Badge: "SEC", Title: "Blockchain Security", Description: "Crypto payments & NFT certificates", Gradient: [2]string{"#4facfe", "#00f2fe"}},
		},
	}
}

// LoadContent читает наполнение страницы из JSON-файла.
// Пустые разделы файла заменяются значениями по умолчанию.
func LoadContent(path string) (Content, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read content file: %w", err)
	}

	var c Content
	if err := json.Unmarshal(file, &c); err != nil {
		return Content{}, fmt.Errorf("failed to unmarshal content: %w", err)
	}

	def := DefaultContent()
	if c.Hero == (HeroDefinition{}) {
		c.Hero = def.Hero
	}
	if len(c.Headlines) == 0 {
		c.Headlines = def.Headlines
	}
	if len(c.Features) == 0 {
		c.Features = def.Features
	}
	if err := c.Validate(); err != nil {
		return Content{}, fmt.Errorf("invalid content in %s: %w", path, err)
	}

	log.Printf("Loaded %d headlines and %d features from %s", len(c.Headlines), len(c.Features), path)
	return c, nil
}

// Validate проверяет наполнение и возвращает все найденные ошибки сразу.
func (c Content) Validate() error {
	var merr *multierror.Error
	if len(c.Headlines) == 0 {
		merr = multierror.Append(merr, errors.New("no headlines"))
	}
	for i, f := range c.Features {
		if f.Title == "" {
			merr = multierror.Append(merr, fmt.Errorf("feature %d: empty title", i))
		}
		for _, hex := range f.Gradient {
			if _, err := render.ParseHex(hex); err != nil {
				merr = multierror.Append(merr, fmt.Errorf("feature %d: %w", i, err))
			}
		}
	}
	return merr.ErrorOrNil()
}

// ParsedGradient возвращает разобранный градиент карточки.
// Ошибки уже отсеяны Validate, поэтому битый цвет даёт нулевой цвет.
func (f FeatureDefinition) ParsedGradient() render.Gradient {
	from, _ := render.ParseHex(f.Gradient[0])
	to, _ := render.ParseHex(f.Gradient[1])
	return render.Gradient{From: from, To: to}
}
