package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/event"
)

const dt = 1.0 / 60.0

func TestBallistics_SemiImplicitEulerStep(t *testing.T) {
	w := newWorld(config.Default())
	id := w.ballistics.Spawn(component.Position{X: 10, Y: 20}, component.Velocity{X: 3, Y: 4})

	w.ballistics.Update(0.5)

	vel := w.ecs.Velocities[id]
	pos := w.ecs.Positions[id]
	assert.InDelta(t, 4-9.81*0.5, vel.Y, 1e-12)
	assert.Equal(t, 3.0, vel.X)
	assert.InDelta(t, 10+3*0.5, pos.X, 1e-12)
	assert.InDelta(t, 20+(4-9.81*0.5)*0.5, pos.Y, 1e-12, "position uses the updated velocity")
}

func TestBallistics_NeverBelowGroundAndGroundedIsTerminal(t *testing.T) {
	w := newWorld(config.Default())
	id := w.ballistics.Spawn(component.Position{X: 15, Y: 11}, component.Velocity{X: 7, Y: 7})

	groundedAt := -1
	for tick := 0; tick < 600; tick++ {
		w.ballistics.Update(dt)
		pos := w.ecs.Positions[id]
		require.GreaterOrEqual(t, pos.Y, config.GroundHeight, "tick %d", tick)

		if w.ecs.Bullets[id].State == component.BulletGrounded && groundedAt < 0 {
			groundedAt = tick
		}
		if groundedAt >= 0 {
			assert.Equal(t, component.Velocity{}, *w.ecs.Velocities[id], "tick %d", tick)
			assert.Equal(t, config.GroundHeight, pos.Y)
		}
	}
	require.GreaterOrEqual(t, groundedAt, 0, "bullet must land")

	landedX := w.ecs.Positions[id].X
	w.ballistics.Update(dt)
	assert.Equal(t, landedX, w.ecs.Positions[id].X)
	assert.Equal(t, 1, w.events.count(event.BulletGrounded), "grounding is reported once")
}

func TestBallistics_NoHorizontalBound(t *testing.T) {
	w := newWorld(config.Default())
	id := w.ballistics.Spawn(component.Position{X: 80, Y: 40}, component.Velocity{X: 50, Y: 0})

	for i := 0; i < 600 && w.ecs.Bullets[id].State == component.BulletFlying; i++ {
		w.ballistics.Update(dt)
	}
	assert.Greater(t, w.ecs.Positions[id].X, float64(config.GameWidth))
}

func TestBallistics_Resolve(t *testing.T) {
	w := newWorld(config.Default())
	id := w.ballistics.Spawn(component.Position{X: 15, Y: 11}, component.Velocity{X: 7, Y: 7})

	require.NoError(t, w.ballistics.Resolve(id))
	assert.Equal(t, component.BulletGrounded, w.ecs.Bullets[id].State)
	assert.Equal(t, config.GroundHeight, w.ecs.Positions[id].Y)

	require.NoError(t, w.ballistics.Resolve(id), "resolving a grounded bullet is a no-op")
	assert.Equal(t, 1, w.events.count(event.BulletGrounded))

	assert.ErrorContains(t, w.ballistics.Resolve(999), "not found")
}
