// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/pkg/render"
)

// TurnIndicator — кружок цвета текущего хода и подпись рядом
type TurnIndicator struct {
	X, Y    float32
	Radius  float32
	face    font.Face
	current component.TurnState
	elapsed float64 // секунд с последней смены хода
}

func NewTurnIndicator(x, y, radius float32, face font.Face) *TurnIndicator {
	return &TurnIndicator{
		X:       x,
		Y:       y,
		Radius:  radius,
		face:    face,
		current: component.PlayerTurn,
		elapsed: math.Inf(1),
	}
}

// Update запоминает состояние хода и запускает пульс при смене
func (i *TurnIndicator) Update(state component.TurnState, deltaTime float64) {
	if state != i.current {
		i.current = state
		i.elapsed = 0
		return
	}
	i.elapsed += deltaTime
}

// PulseScale — увеличение радиуса, затухающее после смены хода
func (i *TurnIndicator) PulseScale() float64 {
	return 1.0 + 0.3*math.Exp(-i.elapsed*8)
}

// Draw отрисовывает индикатор
func (i *TurnIndicator) Draw(screen *ebiten.Image) {
	c := TurnColor(i.current)
	r := i.Radius * float32(i.PulseScale())

	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, render.DarkenColor(c), true)

	if i.face != nil {
		h := i.face.Metrics().Ascent.Ceil()
		text.Draw(screen, TurnLabel(i.current), i.face, int(i.X+i.Radius*2), int(i.Y)+h/2, config.TextLightColor)
	}
}

// TurnColor — цвет состояния хода
func TurnColor(state component.TurnState) color.RGBA {
	switch state {
	case component.PlayerTurn:
		return config.PlayerTurnColor
	case component.AITurn:
		return config.AITurnColor
	default:
		return config.BulletInFlightColor
	}
}

// TurnLabel — подпись состояния хода
func TurnLabel(state component.TurnState) string {
	switch state {
	case component.PlayerTurn:
		return "YOUR TURN"
	case component.AITurn:
		return "AI TURN - PRESS FIRE"
	default:
		return "SHELL IN FLIGHT"
	}
}
