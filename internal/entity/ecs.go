// internal/entity/ecs.go
package entity

import (
	"errors"
	"fmt"
	"sort"

	"tank-duel/internal/component"
	"tank-duel/internal/types"
	"tank-duel/internal/utils"
)

// ErrNotFound — сущность никогда не создавалась или уже удалена
var ErrNotFound = errors.New("entity not found")

// ECS — хранилище компонентов: id -> запись
type ECS struct {
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Tanks      map[types.EntityID]*component.Tank
	Guns       map[types.EntityID]*component.Gun
	Bullets    map[types.EntityID]*component.Bullet
	Sprites    map[types.EntityID]*component.Sprite
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Tanks:      make(map[types.EntityID]*component.Tank),
		Guns:       make(map[types.EntityID]*component.Gun),
		Bullets:    make(map[types.EntityID]*component.Bullet),
		Sprites:    make(map[types.EntityID]*component.Sprite),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// CreateTank создаёт танк и его ствол. Угол ствола сразу ограничивается.
// Y танка — центр спрайта, поэтому он стоит на земле.
func (ecs *ECS) CreateTank(side component.Side, x, y, gunAngle, facing float64) (types.EntityID, types.EntityID) {
	angle := utils.ClampAngle(gunAngle)

	tankID := ecs.NewEntity()
	gunID := ecs.NewEntity()

	ecs.Positions[tankID] = &component.Position{X: x, Y: y}
	ecs.Tanks[tankID] = &component.Tank{
		Side:     side,
		GunAngle: angle,
		Facing:   facing,
		Gun:      gunID,
	}
	ecs.Sprites[tankID] = &component.Sprite{Index: component.SpriteTank}

	ecs.Guns[gunID] = &component.Gun{Owner: tankID, Rotation: angle}
	ecs.Sprites[gunID] = &component.Sprite{Index: component.SpriteGun}

	return tankID, gunID
}

// CreateBullet создаёт летящий снаряд
func (ecs *ECS) CreateBullet(pos component.Position, vel component.Velocity) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &pos
	ecs.Velocities[id] = &vel
	ecs.Bullets[id] = &component.Bullet{State: component.BulletFlying}
	ecs.Sprites[id] = &component.Sprite{Index: component.SpriteBullet}
	return id
}

// RemoveBullet явно удаляет снаряд. Сам по себе реестр ничего не удаляет.
func (ecs *ECS) RemoveBullet(id types.EntityID) error {
	if _, ok := ecs.Bullets[id]; !ok {
		return fmt.Errorf("%w: bullet %d", ErrNotFound, id)
	}
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Bullets, id)
	delete(ecs.Sprites, id)
	return nil
}

func (ecs *ECS) Tank(id types.EntityID) (*component.Tank, error) {
	tank, ok := ecs.Tanks[id]
	if !ok {
		return nil, fmt.Errorf("%w: tank %d", ErrNotFound, id)
	}
	return tank, nil
}

func (ecs *ECS) Gun(id types.EntityID) (*component.Gun, error) {
	gun, ok := ecs.Guns[id]
	if !ok {
		return nil, fmt.Errorf("%w: gun %d", ErrNotFound, id)
	}
	return gun, nil
}

func (ecs *ECS) Bullet(id types.EntityID) (*component.Bullet, error) {
	bullet, ok := ecs.Bullets[id]
	if !ok {
		return nil, fmt.Errorf("%w: bullet %d", ErrNotFound, id)
	}
	return bullet, nil
}

func (ecs *ECS) Position(id types.EntityID) (*component.Position, error) {
	pos, ok := ecs.Positions[id]
	if !ok {
		return nil, fmt.Errorf("%w: position of %d", ErrNotFound, id)
	}
	return pos, nil
}

func (ecs *ECS) Velocity(id types.EntityID) (*component.Velocity, error) {
	vel, ok := ecs.Velocities[id]
	if !ok {
		return nil, fmt.Errorf("%w: velocity of %d", ErrNotFound, id)
	}
	return vel, nil
}

// FlyingBullets возвращает id летящих снарядов по возрастанию
func (ecs *ECS) FlyingBullets() []types.EntityID {
	var ids []types.EntityID
	for id, b := range ecs.Bullets {
		if b.State == component.BulletFlying {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)
	return ids
}

// GroundedBullets возвращает id упавших снарядов по возрастанию
func (ecs *ECS) GroundedBullets() []types.EntityID {
	var ids []types.EntityID
	for id, b := range ecs.Bullets {
		if b.State == component.BulletGrounded {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)
	return ids
}

// SpriteIDs — все сущности со спрайтом, по возрастанию id (порядок отрисовки)
func (ecs *ECS) SpriteIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Sprites))
	for id := range ecs.Sprites {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []types.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
