// internal/system/projectile.go
package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/entity"
	"tank-duel/internal/event"
	"tank-duel/internal/types"
)

const (
	// Шаг и предел итераций для мгновенной досадки снаряда на землю
	resolveStep     = 1.0 / 60.0
	maxResolveSteps = 1_000_000
)

// BallisticSystem двигает летящие снаряды под действием гравитации и сажает их на землю
type BallisticSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	physics         config.PhysicsSettings
	log             zerolog.Logger
}

func NewBallisticSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, physics config.PhysicsSettings, log zerolog.Logger) *BallisticSystem {
	return &BallisticSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		physics:         physics,
		log:             log.With().Str("system", "ballistics").Logger(),
	}
}

// Spawn создаёт летящий снаряд
func (s *BallisticSystem) Spawn(pos component.Position, vel component.Velocity) types.EntityID {
	return s.ecs.CreateBullet(pos, vel)
}

// Update интегрирует все летящие снаряды на deltaTime секунд
func (s *BallisticSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.FlyingBullets() {
		s.step(id, deltaTime)
	}
}

// step — полунеявный Эйлер: сначала скорость, потом позиция
func (s *BallisticSystem) step(id types.EntityID, deltaTime float64) bool {
	bullet := s.ecs.Bullets[id]
	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]
	if bullet == nil || pos == nil || vel == nil {
		return false
	}
	if bullet.State == component.BulletGrounded {
		return true
	}

	vel.Y += s.physics.Gravity * deltaTime
	pos.X += vel.X * deltaTime
	pos.Y += vel.Y * deltaTime

	if pos.Y <= s.physics.GroundHeight {
		pos.Y = s.physics.GroundHeight
		vel.X, vel.Y = 0, 0
		bullet.State = component.BulletGrounded

		s.log.Debug().Uint64("bullet", uint64(id)).Float64("x", pos.X).Msg("Bullet grounded")
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BulletGrounded,
			Data: event.BulletGroundedData{Bullet: id, X: pos.X},
		})
		return true
	}
	return false
}

// Resolve досаживает снаряд на землю немедленно, шагами по resolveStep.
// Упавший снаряд не трогается.
func (s *BallisticSystem) Resolve(id types.EntityID) error {
	if _, err := s.ecs.Bullet(id); err != nil {
		return err
	}
	for i := 0; i < maxResolveSteps; i++ {
		if s.step(id, resolveStep) {
			return nil
		}
	}
	return fmt.Errorf("bullet %d did not reach the ground after %d steps", id, maxResolveSteps)
}
