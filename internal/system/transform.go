package system

import (
	"fmt"
	"math"

	"tank-duel/internal/component"
	"tank-duel/internal/entity"
	"tank-duel/internal/types"
)

// WorldTransform считает мировую трансформацию сущности на лету.
// Ствол: трансформация танка-владельца ∘ собственный поворот ствола.
func WorldTransform(ecs *entity.ECS, id types.EntityID) (component.Transform, error) {
	if tank, ok := ecs.Tanks[id]; ok {
		pos, err := ecs.Position(id)
		if err != nil {
			return component.Transform{}, err
		}
		return component.Transform{X: pos.X, Y: pos.Y, ScaleX: facing(tank.Facing)}, nil
	}

	if gun, ok := ecs.Guns[id]; ok {
		parent, err := WorldTransform(ecs, gun.Owner)
		if err != nil {
			return component.Transform{}, fmt.Errorf("gun %d owner: %w", id, err)
		}
		return compose(parent, component.Transform{Rotation: gun.Rotation, ScaleX: 1}), nil
	}

	if bullet, ok := ecs.Bullets[id]; ok {
		pos, err := ecs.Position(id)
		if err != nil {
			return component.Transform{}, err
		}
		t := component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1}
		if vel, ok := ecs.Velocities[id]; ok && bullet.State == component.BulletFlying {
			t.Rotation = math.Atan2(vel.Y, vel.X)
		}
		return t, nil
	}

	return component.Transform{}, fmt.Errorf("%w: no transform for %d", entity.ErrNotFound, id)
}

// compose применяет локальную трансформацию ребёнка внутри родителя.
// Поворот ребёнка не зеркалится: отражение по ScaleX делает рендерер.
func compose(parent, local component.Transform) component.Transform {
	lx := local.X * parent.ScaleX
	cos, sin := math.Cos(parent.Rotation), math.Sin(parent.Rotation)
	return component.Transform{
		X:        parent.X + lx*cos - local.Y*sin,
		Y:        parent.Y + lx*sin + local.Y*cos,
		Rotation: parent.Rotation + local.Rotation,
		ScaleX:   parent.ScaleX * local.ScaleX,
	}
}

func facing(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
