// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"tank-duel/internal/assets"
	"tank-duel/internal/config"
	"tank-duel/internal/event"
	"tank-duel/internal/input"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Listener — подписчик, который состояние игры подключает к диспетчеру матча
type Listener interface {
	Attach(d *event.Dispatcher)
	Detach(d *event.Dispatcher)
}

// Services — общие зависимости состояний
type Services struct {
	Settings  config.Settings
	Log       zerolog.Logger
	Input     input.Source
	Sheet     *assets.SpriteSheet
	Face      font.Face
	Listeners []Listener
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает текущее состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Quit просит приложение завершиться после текущего кадра
func (sm *StateMachine) Quit() {
	if sm.current != nil {
		sm.current.Exit()
		sm.current = nil
	}
	sm.quit = true
}

// Done — была ли запрошена остановка
func (sm *StateMachine) Done() bool {
	return sm.quit
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
