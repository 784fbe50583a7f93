package state

import (
	"fmt"
	"log"

	"go-coming-soon/internal/app"
	"go-coming-soon/internal/assets"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/event"
	"go-coming-soon/internal/input"
	"go-coming-soon/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*SplashState)(nil)

// SplashState связывает жизненный цикл страницы с заставкой:
// вход монтирует страницу и активирует анимации, выход всё снимает.
type SplashState struct {
	sm       *StateMachine
	splash   *app.Splash
	page     *ui.Page
	router   *input.PointerRouter
	speed    *ui.SpeedButton
	faces    *assets.FaceManager
	settings config.Settings

	suspended bool // выход в паузу без размонтирования
}

func NewSplashState(sm *StateMachine, splash *app.Splash, page *ui.Page, router *input.PointerRouter, faces *assets.FaceManager, settings config.Settings) *SplashState {
	speed := ui.NewSpeedButton(
		float32(config.ScreenWidth-config.SpeedButtonOffsetX),
		float32(config.SpeedButtonY),
		float32(config.SpeedButtonSize),
		config.SpeedButtonColors,
		config.SpeedScales,
	)
	speed.SetScale(settings.TimeScale)
	return &SplashState{
		sm:       sm,
		splash:   splash,
		page:     page,
		router:   router,
		speed:    speed,
		faces:    faces,
		settings: settings,
	}
}

func (s *SplashState) Enter() {
	if s.suspended {
		s.suspended = false
		return
	}
	s.mount()
}

func (s *SplashState) mount() {
	s.page.Mount(s.settings.FeatureCardCount)
	s.splash.Activate()
}

func (s *SplashState) unmount() {
	s.splash.Deactivate()
	s.page.Unmount()
}

func (s *SplashState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	s.router.Move(event.Point{X: float64(x), Y: float64(y)})

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.speed.IsClicked(float64(x), float64(y)) {
		s.speed.ToggleState()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		log.Println("splash: remount")
		s.unmount()
		s.mount()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.suspended = true
		s.sm.SetState(NewPauseState(s.sm, s, s.faces.Face(assets.Bold, 40)))
		return
	}

	s.splash.Update(deltaTime * s.speed.Scale())
}

func (s *SplashState) Draw(screen *ebiten.Image) {
	s.page.Draw(screen, s.splash.Scheduler.Now())
	s.speed.Draw(screen)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  tasks: %d  x%.0f", ebiten.ActualTPS(), s.splash.Scheduler.Len(), s.speed.Scale()), 10, config.ScreenHeight-20)
}

func (s *SplashState) Exit() {
	if s.suspended {
		return
	}
	s.unmount()
}
