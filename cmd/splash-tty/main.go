package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go-coming-soon/internal/anim"
	"go-coming-soon/internal/app"
	"go-coming-soon/internal/config"
	"go-coming-soon/internal/defs"
	"go-coming-soon/internal/entity"
	"go-coming-soon/internal/event"
	"go-coming-soon/internal/input"
	"go-coming-soon/internal/term"
	"go-coming-soon/internal/utils"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type host struct {
	screen   tcell.Screen
	splash   *app.Splash
	renderer *term.Renderer
	router   *input.PointerRouter
	settings config.Settings
	paused   bool
}

func (h *host) mount() {
	h.renderer.Mount(h.settings.FeatureCardCount)
	h.splash.Activate()
}

func (h *host) unmount() {
	h.splash.Deactivate()
	h.renderer.Unmount()
}

// handleInput возвращает false, когда пора выходить.
func (h *host) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
			h.paused = !h.paused
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			h.unmount()
			h.mount()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.router.Move(h.renderer.PointerAt(x, y))
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *host) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !h.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			if !h.paused {
				h.splash.Update(dt * h.settings.TimeScale)
			}
			h.renderer.Draw()
			h.screen.Show()
		}
	}
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	content := defs.DefaultContent()
	if settings.ContentFile != "" {
		content, err = defs.LoadContent(settings.ContentFile)
		if err != nil {
			log.Fatalf("content: %v", err)
		}
		if _, set := os.LookupEnv("SPLASH_HEADLINES"); !set {
			settings.HeadlineTexts = content.Headlines
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	splash, err := app.NewSplash(settings, entity.NewArena(), anim.NewScheduler(), event.NewDispatcher(), utils.NewPRNGService(settings.Seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create splash: %v\n", err)
		os.Exit(1)
	}

	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	// лог поверх полноэкранного вывода только испортит кадр
	log.SetOutput(io.Discard)

	router := input.NewPointerRouter(splash.EventDispatcher)
	h := &host{
		screen:   screen,
		splash:   splash,
		renderer: term.NewRenderer(screen, splash.Arena, router, content),
		router:   router,
		settings: settings,
	}
	h.mount()
	h.run()
	h.unmount()
	screen.Fini()
}
