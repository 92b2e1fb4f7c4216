// internal/component/tank.go
package component

import "tank-duel/internal/types"

// Side — сторона дуэли
type Side int

const (
	SidePlayer Side = iota
	SideAI
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "unknown"
	}
}

// Tank — танк на земле. Позиция хранится в ECS.Positions и не меняется после спавна.
type Tank struct {
	Side     Side
	GunAngle float64 // Угол возвышения ствола в радианах, всегда в [0, π/2]
	Facing   float64 // +1 — смотрит вправо, -1 — влево (только для отрисовки)
	Gun      types.EntityID
}

// Gun — ствол танка. Своей позиции нет, он всегда привязан к владельцу.
type Gun struct {
	Owner    types.EntityID
	Rotation float64 // Всегда равен Tank.GunAngle владельца
}
