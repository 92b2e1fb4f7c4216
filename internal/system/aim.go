package system

import (
	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/entity"
	"tank-duel/internal/types"
	"tank-duel/internal/utils"
)

// AimSystem меняет угол ствола по оси ввода и считает параметры выстрела
type AimSystem struct {
	ecs     *entity.ECS
	physics config.PhysicsSettings
}

func NewAimSystem(ecs *entity.ECS, physics config.PhysicsSettings) *AimSystem {
	return &AimSystem{ecs: ecs, physics: physics}
}

// Aim добавляет axis*AimSpeedFactor к углу танка и пишет результат в танк и его ствол.
// Позиция ствола не трогается, она всегда берётся у танка.
func (s *AimSystem) Aim(tankID types.EntityID, axis float64) error {
	tank, err := s.ecs.Tank(tankID)
	if err != nil {
		return err
	}
	gun, err := s.ecs.Gun(tank.Gun)
	if err != nil {
		return err
	}
	if axis == 0 {
		return nil
	}

	angle := utils.ClampAngle(tank.GunAngle + axis*s.physics.AimSpeedFactor)
	tank.GunAngle = angle
	gun.Rotation = angle
	return nil
}

// Muzzle возвращает точку вылета и начальную скорость снаряда для текущего угла танка
func (s *AimSystem) Muzzle(tankID types.EntityID) (component.Position, component.Velocity, error) {
	tank, err := s.ecs.Tank(tankID)
	if err != nil {
		return component.Position{}, component.Velocity{}, err
	}
	pos, err := s.ecs.Position(tankID)
	if err != nil {
		return component.Position{}, component.Velocity{}, err
	}

	ox, oy := utils.Decompose(tank.GunAngle, s.physics.MuzzleOffset)
	vx, vy := utils.Decompose(tank.GunAngle, s.physics.MuzzleSpeed)

	return component.Position{X: pos.X + ox, Y: pos.Y + oy}, component.Velocity{X: vx, Y: vy}, nil
}
