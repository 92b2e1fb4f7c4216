// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tank-duel/internal/config"
	"tank-duel/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает матч: тики не идут, предыдущее состояние рисуется под затемнением
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.pause.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	prev := s.previousState
	frame := prev.svc.Input.Poll()
	if frame.Quit {
		s.stateMachine.Quit()
		return
	}
	if frame.Pause || (frame.Click && prev.pause.IsClicked(frame.ClickX, frame.ClickY)) {
		s.stateMachine.SetState(prev)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), render.WithAlpha(render.DarkenColor(config.BackgroundColor), 160), false)

	s.previousState.pause.Draw(screen)

	face := s.previousState.svc.Face
	if face == nil {
		return
	}
	pauseText := "PAUSED"
	w := text.BoundString(face, pauseText).Dx()
	text.Draw(screen, pauseText, face, (b.Dx()-w)/2, b.Dy()/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
