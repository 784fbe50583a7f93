// cmd/splash/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/app"
	"go-coming-soon/internal/assets"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/defs"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"
	"go-coming-soon/internal/input"
	"go-coming-soon/internal/state"
	"go-coming-soon/internal/ui"
	"go-coming-soon/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	content := defs.DefaultContent()
	if settings.ContentFile != "" {
		content, err = defs.LoadContent(settings.ContentFile)
		if err != nil {
			log.Fatalf("content: %v", err)
		}
		// строки из файла, если заголовки не заданы окружением явно
		if _, set := os.LookupEnv("SPLASH_HEADLINES"); !set {
			settings.HeadlineTexts = content.Headlines
		}
	}

	faces, err := assets.NewFaceManager()
	if err != nil {
		log.Fatalf("fonts: %v", err)
	}
	defer faces.Cleanup()

	arena := entity.NewArena()
	dispatcher := event.NewDispatcher()
	splash, err := app.NewSplash(settings, arena, anim.NewScheduler(), dispatcher, utils.NewPRNGService(settings.Seed))
	if err != nil {
		log.Fatal(err)
	}
	router := input.NewPointerRouter(dispatcher)
	page := ui.NewPage(arena, router, content, faces)

	sm := state.NewStateMachine()
	sm.SetState(state.NewSplashState(sm, splash, page, router, faces, settings))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(content.Hero.Brand + ": coming soon")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	sm.SetState(nil)
}
