// internal/defs/types.go
package defs

// SpriteDefinition — прямоугольник спрайта в листе и точка опоры.
// Опора задаётся в долях размера спрайта: (0.5, 0.5) — центр.
type SpriteDefinition struct {
	Index  int     `json:"index"`
	Name   string  `json:"name"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	PivotX float64 `json:"pivot_x"`
	PivotY float64 `json:"pivot_y"`
}

// SpriteSheetDefinition — описание листа спрайтов
type SpriteSheetDefinition struct {
	Texture       string             `json:"texture,omitempty"`
	TextureWidth  int                `json:"texture_width"`
	TextureHeight int                `json:"texture_height"`
	Sprites       []SpriteDefinition `json:"sprites"`
}
