// internal/app/game.go
package app

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/entity"
	"tank-duel/internal/event"
	"tank-duel/internal/input"
	"tank-duel/internal/system"
	"tank-duel/internal/types"
	"tank-duel/internal/utils"
)

// Snapshot — то, что видит рендерер после тика. Это копия, а не ссылки на ECS.
type Snapshot struct {
	Tick        uint64
	Turn        component.TurnState
	PlayerAngle float64
	Entities    []component.Drawable
}

// Game holds the duel state and runs the fixed per-tick order.
type Game struct {
	MatchID         uuid.UUID
	ECS             *entity.ECS
	Turn            component.TurnState
	PlayerID        types.EntityID
	AIID            types.EntityID
	AimSystem       *system.AimSystem
	BallisticSystem *system.BallisticSystem
	TurnSystem      *system.TurnSystem
	EventDispatcher *event.Dispatcher

	settings config.Settings
	shoot    input.Edge
	tick     uint64
	snapshot Snapshot
	log      zerolog.Logger
	trace    zerolog.Logger
}

// NewGame spawns both tanks and wires the systems. The turn starts with the player.
func NewGame(settings config.Settings, log zerolog.Logger) *Game {
	matchID := uuid.New()
	log = log.With().Str("match", matchID.String()).Logger()

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		MatchID:         matchID,
		ECS:             ecs,
		Turn:            component.PlayerTurn,
		EventDispatcher: eventDispatcher,
		settings:        settings,
		log:             log,
		trace:           sampled(log),
	}

	tankY := settings.Physics.GroundHeight + config.TankHeight/2
	g.PlayerID, _ = ecs.CreateTank(component.SidePlayer, config.GameWidth/2-config.TankOffsetX, tankY, utils.DegToRad(config.PlayerGunAngleDeg), 1)
	g.AIID, _ = ecs.CreateTank(component.SideAI, config.GameWidth/2+config.TankOffsetX, tankY, utils.DegToRad(config.AIGunAngleDeg), -1)

	g.AimSystem = system.NewAimSystem(ecs, settings.Physics)
	g.BallisticSystem = system.NewBallisticSystem(ecs, eventDispatcher, settings.Physics, log)
	g.TurnSystem = system.NewTurnSystem(ecs, &g.Turn, g.PlayerID, g.AimSystem, g.BallisticSystem, eventDispatcher, settings.Turn, settings.Bullets, log)

	eventDispatcher.SubscribeAll(&eventLogger{log: log}, event.ShotFired, event.BulletGrounded)

	g.publish()
	log.Info().
		Float64("playerX", ecs.Positions[g.PlayerID].X).
		Float64("aiX", ecs.Positions[g.AIID].X).
		Bool("confirmSkipsFlight", settings.Turn.ConfirmSkipsFlight).
		Str("despawn", settings.Bullets.Despawn).
		Msg("Duel started")
	return g
}

// Tick runs one simulation step: aim, ballistics, turn transition, snapshot.
func (g *Game) Tick(frame input.Frame, deltaTime float64) {
	g.tick++
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > g.settings.Physics.MaxDeltaTime {
		deltaTime = g.settings.Physics.MaxDeltaTime
	}
	action := g.shoot.Next(frame.Shoot)

	// 1. Прицеливание только в ход игрока
	if g.Turn == component.PlayerTurn {
		if err := g.AimSystem.Aim(g.PlayerID, utils.SanitizeAxis(frame.Aim)); err != nil {
			g.log.Error().Err(err).Msg("Aim failed")
		}
	}

	// 2. Баллистика
	if deltaTime > 0 {
		g.BallisticSystem.Update(deltaTime)
	}

	// 3. Не больше одного перехода хода
	g.TurnSystem.Update(action)

	// 4. Снимок для рендерера
	g.publish()

	g.trace.Trace().
		Uint64("tick", g.tick).
		Stringer("turn", g.Turn).
		Float64("dt", deltaTime).
		Msg("Tick")
}

// PrimeShoot запоминает, зажата ли кнопка выстрела сейчас, чтобы нажатие,
// начатое до матча, не считалось выстрелом.
func (g *Game) PrimeShoot(down bool) {
	g.shoot.Next(down)
}

// Snapshot returns the state published at the end of the last tick.
func (g *Game) Snapshot() Snapshot {
	return g.snapshot
}

func (g *Game) publish() {
	ids := g.ECS.SpriteIDs()
	entities := make([]component.Drawable, 0, len(ids))
	for _, id := range ids {
		t, err := system.WorldTransform(g.ECS, id)
		if err != nil {
			g.log.Warn().Err(err).Uint64("entity", uint64(id)).Msg("Skipping entity without transform")
			continue
		}
		entities = append(entities, component.Drawable{
			ID:        id,
			Transform: t,
			Sprite:    g.ECS.Sprites[id].Index,
		})
	}

	var angle float64
	if tank, err := g.ECS.Tank(g.PlayerID); err == nil {
		angle = tank.GunAngle
	}

	g.snapshot = Snapshot{
		Tick:        g.tick,
		Turn:        g.Turn,
		PlayerAngle: angle,
		Entities:    entities,
	}
}
