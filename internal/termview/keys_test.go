package termview

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestKeyStateAimHoldsThenReleases(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	k := NewKeyState(clock.now)

	k.OnKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, 1.0, k.Poll().Aim)

	clock.t = clock.t.Add(HoldWindow / 2)
	assert.Equal(t, 1.0, k.Poll().Aim)

	clock.t = clock.t.Add(HoldWindow)
	assert.Equal(t, 0.0, k.Poll().Aim)

	k.OnKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Equal(t, -1.0, k.Poll().Aim)
}

func TestKeyStateShootIsOneFrame(t *testing.T) {
	k := NewKeyState(nil)
	k.OnKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	assert.True(t, k.Poll().Shoot)
	assert.False(t, k.Poll().Shoot)
}

func TestKeyStatePauseAndQuit(t *testing.T) {
	k := NewKeyState(nil)
	k.OnKey(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	f := k.Poll()
	assert.True(t, f.Pause)
	assert.False(t, f.Quit)
	assert.False(t, k.Poll().Pause)

	k.OnKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, k.Poll().Quit)
	assert.True(t, k.Poll().Quit)
}
