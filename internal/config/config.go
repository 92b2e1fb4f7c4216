// internal/config/config.go
package config

import "image/color"

const (
	// Игровое поле в логических пикселях (разрешение дисплея Nokia 5110)
	GameWidth  = 84
	GameHeight = 48

	GroundHeight = 5.0 // Высота земли от нижнего края поля
	TankHeight   = 5.0 // Спрайт танка центрирован, поэтому нужна его высота
	TankOffsetX  = 30.0

	PlayerGunAngleDeg = 45.0
	AIGunAngleDeg     = 45.0

	Gravity        = -9.81 // единиц/с²
	MuzzleOffset   = 5.0   // от центра танка до конца ствола
	MuzzleSpeed    = 10.0  // единиц/с
	AimSpeedFactor = 0.02  // радиан за тик при полном отклонении оси

	MaxDeltaTime = 0.06
	WindowScale  = 10

	GamepadDeadZone = 0.15
)

// Политики удаления упавших снарядов
const (
	DespawnNextFire = "next_fire"
	DespawnRetain   = "retain"
)

var (
	BackgroundColor     = color.RGBA{87, 92, 133, 255}
	GroundColor         = color.RGBA{60, 52, 40, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	PlayerTurnColor     = color.RGBA{70, 130, 180, 220}
	AITurnColor         = color.RGBA{220, 60, 60, 220}
	BulletInFlightColor = color.RGBA{194, 178, 128, 255}
	TankColor           = color.RGBA{50, 120, 50, 255}
	GunColor            = color.RGBA{30, 30, 30, 255}
	BulletColor         = color.RGBA{255, 215, 0, 255}
)
