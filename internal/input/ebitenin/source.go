// internal/input/ebitenin/source.go
// Package ebitenin reads input.Frame values from ebiten keyboard, gamepad and mouse state.
package ebitenin
import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tank-duel/internal/config"
	"tank-duel/internal/input"
)

// Source снимает ввод с клавиатуры и стандартного геймпада
type Source struct {
	negative ebiten.Key
	positive ebiten.Key
	shoot    ebiten.Key
	pause    ebiten.Key
	quit     ebiten.Key
	gamepads []ebiten.GamepadID
}

// NewSource разбирает имена клавиш из настроек ("Space", "ArrowUp", ...)
func NewSource(b config.Bindings) (*Source, error) {
	s := &Source{}
	bindings := []struct {
		name string
		key  *ebiten.Key
	}{
		{b.GunAngleNegative, &s.negative},
		{b.GunAnglePositive, &s.positive},
		{b.Shoot, &s.shoot},
		{b.Pause, &s.pause},
		{b.Quit, &s.quit},
	}
	for _, binding := range bindings {
		if err := binding.key.UnmarshalText([]byte(binding.name)); err != nil {
			return nil, fmt.Errorf("invalid key binding %q: %w", binding.name, err)
		}
	}
	return s, nil
}

func (s *Source) Poll() input.Frame {
	var f input.Frame

	if ebiten.IsKeyPressed(s.positive) {
		f.Aim += 1
	}
	if ebiten.IsKeyPressed(s.negative) {
		f.Aim -= 1
	}
	f.Shoot = ebiten.IsKeyPressed(s.shoot)
	f.Pause = inpututil.IsKeyJustPressed(s.pause)
	f.Quit = ebiten.IsKeyPressed(s.quit)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Click = true
		f.ClickX, f.ClickY = ebiten.CursorPosition()
	}

	// Ось геймпада важнее клавиатуры, если стик отклонён
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		// Стик вверх даёт отрицательное значение
		v := -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if v > config.GamepadDeadZone || v < -config.GamepadDeadZone {
			f.Aim = v
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			f.Shoot = true
		}
	}
	return f
}


var _ input.Source = (*Source)(nil)
