// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"tank-duel/internal/component"
)

// LoadSpriteSheetDefinition reads the sprite sheet metadata file and validates it.
func LoadSpriteSheetDefinition(path string) (*SpriteSheetDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet definition: %w", err)
	}

	var sheet SpriteSheetDefinition
	if err := json.Unmarshal(file, &sheet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sprite sheet definition: %w", err)
	}

	if err := sheet.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sprite sheet %s: %w", path, err)
	}
	return &sheet, nil
}

// DefaultSpriteSheet — встроенное описание листа для процедурной текстуры
func DefaultSpriteSheet() *SpriteSheetDefinition {
	return &SpriteSheetDefinition{
		TextureWidth:  16,
		TextureHeight: 5,
		Sprites: []SpriteDefinition{
			{Index: component.SpriteTank, Name: "tank", X: 0, Y: 0, Width: 7, Height: 5, PivotX: 0.5, PivotY: 0.5},
			{Index: component.SpriteGun, Name: "gun", X: 8, Y: 0, Width: 5, Height: 1, PivotX: 0, PivotY: 0.5},
			{Index: component.SpriteBullet, Name: "bullet", X: 14, Y: 0, Width: 1, Height: 1, PivotX: 0.5, PivotY: 0.5},
		},
	}
}

// Procedural — у листа нет файла текстуры, спрайты рисуются сплошным цветом
func (s *SpriteSheetDefinition) Procedural() bool {
	return s.Texture == ""
}

// Validate checks that every sprite the duel draws is present and fits the texture.
func (s *SpriteSheetDefinition) Validate() error {
	if s.TextureWidth <= 0 || s.TextureHeight <= 0 {
		return fmt.Errorf("texture size %dx%d is not positive", s.TextureWidth, s.TextureHeight)
	}

	seen := make(map[int]bool, len(s.Sprites))
	for _, sp := range s.Sprites {
		if seen[sp.Index] {
			return fmt.Errorf("duplicate sprite index %d", sp.Index)
		}
		seen[sp.Index] = true

		if sp.Width <= 0 || sp.Height <= 0 {
			return fmt.Errorf("sprite %d (%s) has empty size", sp.Index, sp.Name)
		}
		if sp.X < 0 || sp.Y < 0 || sp.X+sp.Width > s.TextureWidth || sp.Y+sp.Height > s.TextureHeight {
			return fmt.Errorf("sprite %d (%s) is outside the texture", sp.Index, sp.Name)
		}
		if sp.PivotX < 0 || sp.PivotX > 1 || sp.PivotY < 0 || sp.PivotY > 1 {
			return fmt.Errorf("sprite %d (%s) pivot is outside [0, 1]", sp.Index, sp.Name)
		}
	}

	for _, idx := range []int{component.SpriteTank, component.SpriteGun, component.SpriteBullet} {
		if !seen[idx] {
			return fmt.Errorf("missing sprite index %d", idx)
		}
	}
	return nil
}

// Sprite возвращает описание спрайта по индексу
func (s *SpriteSheetDefinition) Sprite(index int) (SpriteDefinition, bool) {
	for _, sp := range s.Sprites {
		if sp.Index == index {
			return sp, true
		}
	}
	return SpriteDefinition{}, false
}
