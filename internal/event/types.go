// internal/event/types.go
package event

import (
	"tank-duel/internal/component"
	"tank-duel/internal/types"
)

const (
	ShotFired      EventType = "ShotFired"      // Снаряд вылетел из ствола
	BulletGrounded EventType = "BulletGrounded" // Снаряд коснулся земли
	TurnChanged    EventType = "TurnChanged"    // Сменилось состояние хода
)

// ShotFiredData — данные события ShotFired
type ShotFiredData struct {
	Bullet types.EntityID
	Tank   types.EntityID
	Angle  float64
	X, Y   float64
	VX, VY float64
}

// BulletGroundedData — данные события BulletGrounded
type BulletGroundedData struct {
	Bullet types.EntityID
	X      float64
}

// TurnChangedData — данные события TurnChanged
type TurnChangedData struct {
	From, To component.TurnState
}
