package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/entity"
)

func TestWorldTransform_GunFollowsOwner(t *testing.T) {
	w := newWorld(config.Default())
	tank := w.ecs.Tanks[w.player]

	require.NoError(t, w.aim.Aim(w.player, 1))

	tankT, err := WorldTransform(w.ecs, w.player)
	require.NoError(t, err)
	gunT, err := WorldTransform(w.ecs, tank.Gun)
	require.NoError(t, err)

	assert.Equal(t, tankT.X, gunT.X)
	assert.Equal(t, tankT.Y, gunT.Y)
	assert.Equal(t, tank.GunAngle, gunT.Rotation)
	assert.Equal(t, 1.0, gunT.ScaleX)
}

func TestWorldTransform_AIFacesLeft(t *testing.T) {
	w := newWorld(config.Default())
	gunID := w.ecs.Tanks[w.ai].Gun

	gunT, err := WorldTransform(w.ecs, gunID)
	require.NoError(t, err)
	assert.Equal(t, -1.0, gunT.ScaleX)
	assert.Equal(t, w.ecs.Tanks[w.ai].GunAngle, gunT.Rotation)
}

func TestWorldTransform_Bullet(t *testing.T) {
	w := newWorld(config.Default())
	id := w.ballistics.Spawn(component.Position{X: 3, Y: 9}, component.Velocity{X: 1, Y: 1})

	bt, err := WorldTransform(w.ecs, id)
	require.NoError(t, err)
	assert.Equal(t, 3.0, bt.X)
	assert.Equal(t, 9.0, bt.Y)
	assert.InDelta(t, 0.785398, bt.Rotation, 1e-6)
}

func TestWorldTransform_NotFound(t *testing.T) {
	w := newWorld(config.Default())
	_, err := WorldTransform(w.ecs, 999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
