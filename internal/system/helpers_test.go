package system

import (
	"github.com/rs/zerolog"

	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/entity"
	"tank-duel/internal/event"
	"tank-duel/internal/types"
	"tank-duel/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	events     *recorder
	turn       component.TurnState
	player     types.EntityID
	ai         types.EntityID
	aim        *AimSystem
	ballistics *BallisticSystem
	turns      *TurnSystem
}

func newWorld(settings config.Settings) *world {
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		events:     &recorder{},
	}
	w.dispatcher.SubscribeAll(w.events, event.ShotFired, event.BulletGrounded, event.TurnChanged)

	tankY := settings.Physics.GroundHeight + config.TankHeight/2
	w.player, _ = w.ecs.CreateTank(component.SidePlayer, config.GameWidth/2-config.TankOffsetX, tankY, utils.DegToRad(45), 1)
	w.ai, _ = w.ecs.CreateTank(component.SideAI, config.GameWidth/2+config.TankOffsetX, tankY, utils.DegToRad(45), -1)

	w.aim = NewAimSystem(w.ecs, settings.Physics)
	w.ballistics = NewBallisticSystem(w.ecs, w.dispatcher, settings.Physics, zerolog.Nop())
	w.turns = NewTurnSystem(w.ecs, &w.turn, w.player, w.aim, w.ballistics, w.dispatcher, settings.Turn, settings.Bullets, zerolog.Nop())
	return w
}
