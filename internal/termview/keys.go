// internal/termview/keys.go
package termview

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"tank-duel/internal/input"
)

// HoldWindow — сколько после последнего нажатия стрелки ось считается отклонённой.
// Терминал не присылает отпускания клавиш, только автоповтор.
const HoldWindow = 120 * time.Millisecond

// KeyState собирает события tcell в input.Frame
type KeyState struct {
	mu       sync.Mutex
	now      func() time.Time
	aim      float64
	aimUntil time.Time
	shoot    bool
	pause    bool
	quit     bool
}

func NewKeyState(now func() time.Time) *KeyState {
	if now == nil {
		now = time.Now
	}
	return &KeyState{now: now}
}

// OnKey — обработка нажатия. Вверх/вправо поднимают ствол, вниз/влево опускают.
func (k *KeyState) OnKey(ev *tcell.EventKey) {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyRight:
		k.hold(1)
	case tcell.KeyDown, tcell.KeyLeft:
		k.hold(-1)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			k.shoot = true
		case 'p', 'P':
			k.pause = true
		case 'q', 'Q':
			k.quit = true
		}
	}
}

func (k *KeyState) hold(dir float64) {
	k.aim = dir
	k.aimUntil = k.now().Add(HoldWindow)
}

// Poll реализует input.Source. Нажатие пробела даёт Shoot ровно на одном кадре.
func (k *KeyState) Poll() input.Frame {
	k.mu.Lock()
	defer k.mu.Unlock()

	f := input.Frame{Shoot: k.shoot, Pause: k.pause, Quit: k.quit}
	if k.now().Before(k.aimUntil) {
		f.Aim = k.aim
	}
	k.shoot = false
	k.pause = false
	return f
}
