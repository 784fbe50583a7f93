// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Частицы
	ParticleCount      = 25
	ParticleSizeMin    = 4.0
	ParticleSizeMax    = 16.0
	ParticleScaleMin   = 0.5
	ParticleScaleMax   = 1.0
	ParticleOpacityMin = 0.2
	ParticleOpacityMax = 1.0
	ParticleDriftY     = 200.0 // ±px
	ParticleDriftX     = 100.0 // ±px
	ParticleSpinMax    = 720.0
	ParticleTargetMin  = 0.2 // масштаб в движении
	ParticleTargetMax  = 1.2
	ParticleDurMin     = 5.0 // секунд
	ParticleDurMax     = 15.0
	ParticleStagger    = 0.1

	// Заголовок
	HeadlineReveal = 0.5 // печать строки
	HeadlineHold   = 2.5 // показ после печати

	// Логотип
	LogoTurn     = 8.0 // секунд на пол-цикла
	LogoRise     = 20.0
	LogoRotation = 360.0

	// Карточки
	FeatureCardCount = 4
	CardHoverScale   = 1.08
	CardHoverTilt    = 5.0
	CardHoverDepth   = 50.0
	CardHoverTime    = 0.4
	CardOvershoot    = 1.7
	CardWidth        = 250.0
	CardHeight       = 170.0
	CardGap          = 24.0
	CardsY           = 660.0

	// Прогресс
	ProgressCeiling    = 87.0
	ProgressTickMs     = 200
	ProgressStepMax    = 2.0
	ProgressFillTime   = 0.5
	ProgressTrackWidth = 520.0

	// Курсор
	CursorSize       = 20.0
	CursorTransition = 0.1

	// Появление героя
	HeroItems       = 4
	EntranceTime    = 0.8
	EntranceStagger = 0.15
	EntranceDelay   = 0.3
	EntranceOffset  = 60.0

	BetaPulsePeriod = 2.0

	SpeedButtonOffsetX = 40   // Отступ от правого края
	SpeedButtonY       = 30   // Позиция по Y
	SpeedButtonSize    = 12.0 // Размер кнопки
)

// DefaultHeadlines — строки, которые по очереди печатает заголовок.
var DefaultHeadlines = []string{
	"Connecting Rural Roots to Urban Markets",
	"Empowering Village Artisans Globally",
	"Sustainable Commerce Revolution",
	"Authentic Crafts, Modern Platform",
}

// SpeedScales — множители часов для кнопки скорости.
var SpeedScales = []float64{1, 2, 4}

var (
	BackgroundTop    = color.RGBA{15, 23, 42, 255}
	BackgroundBottom = color.RGBA{51, 65, 85, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	TextMutedColor   = color.RGBA{148, 163, 184, 255}
	TextBodyColor    = color.RGBA{203, 213, 225, 255}
	AccentColor      = color.RGBA{16, 185, 129, 255}
	AccentLightColor = color.RGBA{52, 211, 153, 255}
	TrackColor       = color.RGBA{255, 255, 255, 26}
	ChipColor        = color.RGBA{245, 158, 11, 255}
	CardColor        = color.RGBA{30, 41, 59, 220}
	CardStrokeColor  = color.RGBA{255, 255, 255, 40}

	// Цветовые группы частиц: начало и конец градиента
	ParticlePalettes = [][2]color.RGBA{
		{{16, 185, 129, 255}, {52, 211, 153, 255}},  // зелёная
		{{59, 130, 246, 255}, {96, 165, 250, 255}},  // синяя
		{{139, 92, 246, 255}, {167, 139, 250, 255}}, // фиолетовая
	}

	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)
