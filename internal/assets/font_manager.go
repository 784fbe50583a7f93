package assets

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle — начертание встроенного шрифта.
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
)

type faceKey struct {
	style FontStyle
	size  float64
}

// FaceManager загружает, кэширует и закрывает шрифты страницы.
type FaceManager struct {
	fonts map[FontStyle]*opentype.Font
	faces map[faceKey]font.Face
}

// NewFaceManager разбирает встроенные TTF. Ошибка здесь означает битые данные шрифта.
func NewFaceManager() (*FaceManager, error) {
	m := &FaceManager{
		fonts: make(map[FontStyle]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
	sources := map[FontStyle][]byte{
		Regular: goregular.TTF,
		Bold:    gobold.TTF,
	}
	for style, data := range sources {
		tt, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %d: %w", style, err)
		}
		m.fonts[style] = tt
	}
	return m, nil
}

// Face возвращает шрифт нужного размера, создавая его при первом запросе.
func (m *FaceManager) Face(style FontStyle, size float64) font.Face {
	key := faceKey{style: style, size: size}
	if face, ok := m.faces[key]; ok {
		return face
	}
	tt, ok := m.fonts[style]
	if !ok {
		tt = m.fonts[Regular]
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: failed to build face %d/%.0f: %v", style, size, err)
		return nil
	}
	m.faces[key] = face
	return face
}

// Len — число закэшированных шрифтов.
func (m *FaceManager) Len() int {
	return len(m.faces)
}

// Cleanup закрывает все созданные шрифты.
func (m *FaceManager) Cleanup() {
	for key, face := range m.faces {
		if err := face.Close(); err != nil {
			log.Printf("WARNING: failed to close face %d/%.0f: %v", key.style, key.size, err)
		}
		delete(m.faces, key)
	}
	log.Println("All font faces closed.")
}
