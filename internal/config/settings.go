// internal/config/settings.go
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
)

// Settings — настраиваемые параметры заставки. Значения по умолчанию
// берутся из констант пакета, переменные окружения их переопределяют.
type Settings struct {
	HeadlineTexts    []string `env:"SPLASH_HEADLINES" envSeparator:"|"`
	ParticleCount    int      `env:"SPLASH_PARTICLE_COUNT"`
	ProgressCeiling  float64  `env:"SPLASH_PROGRESS_CEILING"`
	TickIntervalMs   int      `env:"SPLASH_TICK_INTERVAL_MS"`
	FeatureCardCount int      `env:"SPLASH_FEATURE_CARDS"`
	Seed             int64    `env:"SPLASH_SEED"`
	ContentFile      string   `env:"SPLASH_CONTENT_FILE"`
	TimeScale        float64  `env:"SPLASH_TIME_SCALE"`
	PprofAddr        string   `env:"SPLASH_PPROF_ADDR"` // пусто — профилировщик выключен
}

// DefaultSettings возвращает параметры исходной страницы.
func DefaultSettings() Settings {
	headlines := make([]string, len(DefaultHeadlines))
	copy(headlines, DefaultHeadlines)
	return Settings{
		HeadlineTexts:    headlines,
		ParticleCount:    ParticleCount,
		ProgressCeiling:  ProgressCeiling,
		TickIntervalMs:   ProgressTickMs,
		FeatureCardCount: FeatureCardCount,
		TimeScale:        1,
	}
}

// LoadSettings читает переменные окружения поверх значений по умолчанию.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Validate проверяет все поля сразу и возвращает все найденные ошибки.
func (s Settings) Validate() error {
	var merr *multierror.Error
	if len(s.HeadlineTexts) == 0 {
		merr = multierror.Append(merr, errors.New("headline texts must not be empty"))
	}
	if s.ParticleCount < 0 {
		merr = multierror.Append(merr, fmt.Errorf("particle count %d is negative", s.ParticleCount))
	}
	if s.ProgressCeiling < 0 || s.ProgressCeiling > 100 {
		merr = multierror.Append(merr, fmt.Errorf("progress ceiling %.2f is outside 0..100", s.ProgressCeiling))
	}
	if s.TickIntervalMs <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("tick interval %dms must be positive", s.TickIntervalMs))
	}
	if s.FeatureCardCount < 0 {
		merr = multierror.Append(merr, fmt.Errorf("feature card count %d is negative", s.FeatureCardCount))
	}
	if s.TimeScale <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("time scale %.2f must be positive", s.TimeScale))
	}
	return merr.ErrorOrNil()
}

// TickInterval — период тика прогресса в секундах.
func (s Settings) TickInterval() float64 {
	return float64(s.TickIntervalMs) / 1000
}
