package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tank-duel/internal/component"
	"tank-duel/internal/types"
)

func TestCreateTank_ClampsAngleAndLinksGun(t *testing.T) {
	ecs := NewECS()

	tankID, gunID := ecs.CreateTank(component.SidePlayer, 12, 7.5, 3.0, 1)

	tank, err := ecs.Tank(tankID)
	require.NoError(t, err)
	assert.Equal(t, math.Pi/2, tank.GunAngle)
	assert.Equal(t, gunID, tank.Gun)
	assert.Equal(t, component.SidePlayer, tank.Side)

	gun, err := ecs.Gun(gunID)
	require.NoError(t, err)
	assert.Equal(t, tankID, gun.Owner)
	assert.Equal(t, tank.GunAngle, gun.Rotation)

	_, err = ecs.Position(gunID)
	assert.ErrorIs(t, err, ErrNotFound, "gun has no position of its own")

	assert.Equal(t, component.SpriteTank, ecs.Sprites[tankID].Index)
	assert.Equal(t, component.SpriteGun, ecs.Sprites[gunID].Index)
}

func TestCreateBullet_IsFlying(t *testing.T) {
	ecs := NewECS()

	id := ecs.CreateBullet(component.Position{X: 1, Y: 2}, component.Velocity{X: 3, Y: 4})

	b, err := ecs.Bullet(id)
	require.NoError(t, err)
	assert.Equal(t, component.BulletFlying, b.State)
	assert.Equal(t, []types.EntityID{id}, ecs.FlyingBullets())

	pos, err := ecs.Position(id)
	require.NoError(t, err)
	assert.Equal(t, component.Position{X: 1, Y: 2}, *pos)
	vel, err := ecs.Velocity(id)
	require.NoError(t, err)
	assert.Equal(t, component.Velocity{X: 3, Y: 4}, *vel)
}

func TestLookups_NotFound(t *testing.T) {
	ecs := NewECS()

	_, err := ecs.Tank(42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = ecs.Gun(42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = ecs.Bullet(42)
	assert.ErrorIs(t, err, ErrNotFound)

	id := ecs.CreateBullet(component.Position{}, component.Velocity{})
	require.NoError(t, ecs.RemoveBullet(id))

	_, err = ecs.Bullet(id)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = ecs.Position(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, ecs.RemoveBullet(id), ErrNotFound)
	assert.NotContains(t, ecs.SpriteIDs(), id)
}

func TestIDsAreNeverReused(t *testing.T) {
	ecs := NewECS()
	first := ecs.CreateBullet(component.Position{}, component.Velocity{})
	require.NoError(t, ecs.RemoveBullet(first))
	second := ecs.CreateBullet(component.Position{}, component.Velocity{})
	assert.Greater(t, second, first)
}

func TestCreateTank_NaNAngleFallsToZero(t *testing.T) {
	ecs := NewECS()
	tankID, gunID := ecs.CreateTank(component.SideAI, 0, 0, math.NaN(), -1)

	tank, err := ecs.Tank(tankID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tank.GunAngle)
	assert.Equal(t, 0.0, ecs.Guns[gunID].Rotation)
}
