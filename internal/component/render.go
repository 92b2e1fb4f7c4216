// component/render.go
package component

import "tank-duel/internal/types"

// Индексы спрайтов в общем спрайт-листе
const (
	SpriteTank   = 0
	SpriteGun    = 1
	SpriteBullet = 2
)

// Sprite — компонент для отрисовки
type Sprite struct {
	Index int
}

// Transform — мировая трансформация сущности
type Transform struct {
	X, Y     float64
	Rotation float64 // Радианы, против часовой стрелки от горизонтали
	ScaleX   float64 // -1 зеркалит спрайт по горизонтали
}

// Drawable — то, что получает рендерер: трансформация и номер спрайта
type Drawable struct {
	ID        types.EntityID
	Transform Transform
	Sprite    int
}
