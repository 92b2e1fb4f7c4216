// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"tank-duel/internal/config"
	"tank-duel/internal/input"
)

// MenuState — заставка перед матчем
type MenuState struct {
	sm    *StateMachine
	svc   *Services
	start input.Edge
}

func NewMenuState(sm *StateMachine, svc *Services) *MenuState {
	return &MenuState{sm: sm, svc: svc}
}

func (m *MenuState) Enter() {
	// Кнопка, зажатая при входе, не должна сразу начать матч
	m.start.Next(m.svc.Input.Poll().Shoot)
}

func (m *MenuState) Update(deltaTime float64) {
	frame := m.svc.Input.Poll()
	if frame.Quit {
		m.sm.Quit()
		return
	}
	if m.start.Next(frame.Shoot) {
		m.sm.SetState(NewGameState(m.sm, m.svc))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if m.svc.Face == nil {
		return
	}
	unit := m.svc.Settings.Window.Scale
	x := unit * 4
	y := unit * config.GameHeight / 3
	text.Draw(screen, m.svc.Settings.Window.Title, m.svc.Face, x, y, config.TextLightColor)
	text.Draw(screen, "Press "+m.svc.Settings.Input.Shoot+" to start", m.svc.Face, x, y+unit*3, config.TextLightColor)
	text.Draw(screen, m.svc.Settings.Input.Quit+" to quit", m.svc.Face, x, y+unit*5, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
