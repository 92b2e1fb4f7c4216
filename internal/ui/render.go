// internal/ui/render.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tank-duel/internal/assets"
	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/defs"
)

// RenderSystem рисует снимок мира. Мир: y вверх, экран: y вниз.
type RenderSystem struct {
	sheet *assets.SpriteSheet
	unit  float64 // экранных пикселей на единицу мира
}

func NewRenderSystem(sheet *assets.SpriteSheet, unit float64) *RenderSystem {
	return &RenderSystem{sheet: sheet, unit: unit}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, entities []component.Drawable) {
	screen.Fill(config.BackgroundColor)

	groundTop := float32((config.GameHeight - config.GroundHeight) * s.unit)
	vector.DrawFilledRect(screen, 0, groundTop, float32(config.GameWidth*s.unit), float32(config.GroundHeight*s.unit), config.GroundColor, false)

	for _, d := range entities {
		img, def, ok := s.sheet.Sprite(d.Sprite)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM = SpriteGeoM(d.Transform, def, s.unit)
		screen.DrawImage(img, op)
	}
}

// SpriteGeoM переводит мировую трансформацию в матрицу экрана:
// опора в начало, поворот, зеркало, масштаб, перенос с переворотом оси y.
func SpriteGeoM(t component.Transform, def defs.SpriteDefinition, unit float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-def.PivotX*float64(def.Width), -def.PivotY*float64(def.Height))
	g.Rotate(-t.Rotation)
	scaleX := t.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}
	g.Scale(scaleX, 1)
	g.Scale(unit, unit)
	g.Translate(t.X*unit, (config.GameHeight-t.Y)*unit)
	return g
}
