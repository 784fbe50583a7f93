package state

import (
	"image/color"

	"go-coming-soon/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает часы: предыдущее состояние рисуется, но не обновляется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		face:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	if s.face == nil {
		return
	}
	pauseText := "PAUSED"
	width := font.MeasureString(s.face, pauseText).Ceil()
	text.Draw(screen, pauseText, s.face, (config.ScreenWidth-width)/2, config.ScreenHeight/2, color.White)
}

// Exit ничего не делает: пауза не владеет ресурсами.
func (s *PauseState) Exit() {}
