// internal/component/projectile.go
package component

// BulletState — жизненный цикл снаряда
type BulletState int

const (
	BulletFlying BulletState = iota
	BulletGrounded
)

func (s BulletState) String() string {
	if s == BulletGrounded {
		return "grounded"
	}
	return "flying"
}

// Bullet — снаряд. Позиция и скорость лежат в ECS.Positions / ECS.Velocities.
type Bullet struct {
	State BulletState
}
