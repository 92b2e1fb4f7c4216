// internal/assets/sprite_sheet.go
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/defs"
)

// SpriteSheet хранит текстуру и нарезанные из неё спрайты.
type SpriteSheet struct {
	def     *defs.SpriteSheetDefinition
	texture *ebiten.Image
	sprites map[int]*ebiten.Image
}

// LoadSpriteSheet загружает описание и текстуру листа. Если что-то не найдено,
// возвращает процедурный лист, чтобы игра запускалась без ассетов.
func LoadSpriteSheet(defPath string, log zerolog.Logger) *SpriteSheet {
	def, err := defs.LoadSpriteSheetDefinition(defPath)
	if err != nil {
		log.Warn().Err(err).Msg("Sprite sheet definition unavailable, using built-in sprites")
		return NewProceduralSpriteSheet(defs.DefaultSpriteSheet())
	}

	if def.Procedural() {
		log.Info().Int("sprites", len(def.Sprites)).Msg("Sprite sheet has no texture, drawing sprites procedurally")
		return NewProceduralSpriteSheet(def)
	}

	texturePath := filepath.Join(filepath.Dir(defPath), def.Texture)
	texture, _, err := ebitenutil.NewImageFromFile(texturePath)
	if err != nil {
		log.Warn().Err(err).Str("texture", texturePath).Msg("Sprite texture unavailable, drawing sprites procedurally")
		return NewProceduralSpriteSheet(def)
	}

	sheet, err := newSpriteSheet(def, texture)
	if err != nil {
		log.Warn().Err(err).Msg("Sprite texture does not match its definition, drawing sprites procedurally")
		return NewProceduralSpriteSheet(def)
	}
	log.Info().Str("texture", texturePath).Int("sprites", len(def.Sprites)).Msg("Sprite sheet loaded")
	return sheet
}

// NewProceduralSpriteSheet рисует прямоугольники спрайтов сплошным цветом.
func NewProceduralSpriteSheet(def *defs.SpriteSheetDefinition) *SpriteSheet {
	texture := ebiten.NewImage(def.TextureWidth, def.TextureHeight)
	for _, sp := range def.Sprites {
		vector.DrawFilledRect(texture, float32(sp.X), float32(sp.Y), float32(sp.Width), float32(sp.Height), spriteColor(sp.Index), false)
	}
	sheet, _ := newSpriteSheet(def, texture)
	return sheet
}

func newSpriteSheet(def *defs.SpriteSheetDefinition, texture *ebiten.Image) (*SpriteSheet, error) {
	bounds := texture.Bounds()
	if bounds.Dx() < def.TextureWidth || bounds.Dy() < def.TextureHeight {
		return nil, fmt.Errorf("texture is %dx%d, definition needs %dx%d",
			bounds.Dx(), bounds.Dy(), def.TextureWidth, def.TextureHeight)
	}

	s := &SpriteSheet{
		def:     def,
		texture: texture,
		sprites: make(map[int]*ebiten.Image, len(def.Sprites)),
	}
	for _, sp := range def.Sprites {
		rect := image.Rect(sp.X, sp.Y, sp.X+sp.Width, sp.Y+sp.Height).Add(bounds.Min)
		s.sprites[sp.Index] = texture.SubImage(rect).(*ebiten.Image)
	}
	return s, nil
}

// Sprite возвращает изображение и описание спрайта по индексу
func (s *SpriteSheet) Sprite(index int) (*ebiten.Image, defs.SpriteDefinition, bool) {
	img, ok := s.sprites[index]
	if !ok {
		return nil, defs.SpriteDefinition{}, false
	}
	def, _ := s.def.Sprite(index)
	return img, def, true
}

func spriteColor(index int) color.Color {
	switch index {
	case component.SpriteTank:
		return config.TankColor
	case component.SpriteGun:
		return config.GunColor
	case component.SpriteBullet:
		return config.BulletColor
	}
	return config.TextLightColor
}
