// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tank-duel/pkg/render"
)

// PauseButton — кнопка паузы в углу: две полосы во время игры, треугольник на паузе
type PauseButton struct {
	X, Y       float32
	Size       float32
	IsPaused   bool
	PauseColor color.RGBA
	PlayColor  color.RGBA
	elapsed    float64 // секунд с последнего переключения
	filler     *render.Filler
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		elapsed:    math.Inf(1),
	}
}

func (b *PauseButton) Update(deltaTime float64) {
	b.elapsed += deltaTime
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	scale := 1.0 + 0.3*math.Exp(-b.elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		if b.filler == nil {
			b.filler = render.NewFiller()
		}
		var path vector.Path
		path.MoveTo(b.X-s, b.Y-s*1.2)
		path.LineTo(b.X-s, b.Y+s*1.2)
		path.LineTo(b.X+s, b.Y)
		path.Close()
		b.filler.Fill(screen, &path, b.PlayColor)
		return
	}

	width := s * 0.6
	height := s * 2.0
	spacing := s * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

// IsClicked проверяет, попал ли клик в кнопку
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.elapsed = 0
	}
	b.IsPaused = paused
}
