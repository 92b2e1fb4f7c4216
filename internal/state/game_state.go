// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	game "tank-duel/internal/app"
	"tank-duel/internal/config"
	"tank-duel/internal/ui"
)

// GameState — состояние матча
type GameState struct {
	sm        *StateMachine
	svc       *Services
	game      *game.Game
	renderer  *ui.RenderSystem
	indicator *ui.TurnIndicator
	pause     *ui.PauseButton
}

func NewGameState(sm *StateMachine, svc *Services) *GameState {
	unit := float64(svc.Settings.Window.Scale)
	r := float32(unit * 1.5)
	return &GameState{
		sm:        sm,
		svc:       svc,
		game:      game.NewGame(svc.Settings, svc.Log),
		renderer:  ui.NewRenderSystem(svc.Sheet, unit),
		indicator: ui.NewTurnIndicator(r*2, r*2, r, svc.Face),
		pause:     ui.NewPauseButton(float32(unit*config.GameWidth)-r*2, r*2, r, config.TextLightColor, config.PlayerTurnColor),
	}
}

// Game возвращает логику матча
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pause.SetPaused(false)
	g.game.PrimeShoot(g.svc.Input.Poll().Shoot)
	for _, l := range g.svc.Listeners {
		l.Attach(g.game.EventDispatcher)
	}
}

func (g *GameState) Update(deltaTime float64) {
	frame := g.svc.Input.Poll()
	if frame.Quit {
		g.sm.Quit()
		return
	}
	if frame.Pause || (frame.Click && g.pause.IsClicked(frame.ClickX, frame.ClickY)) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Tick(frame, deltaTime)
	g.indicator.Update(g.game.Snapshot().Turn, deltaTime)
	g.pause.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap.Entities)
	g.indicator.Draw(screen)
	g.pause.Draw(screen)
}

func (g *GameState) Exit() {
	for _, l := range g.svc.Listeners {
		l.Detach(g.game.EventDispatcher)
	}
}
