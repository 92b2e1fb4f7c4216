// internal/system/state.go
package system

import (
	"github.com/rs/zerolog"

	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/entity"
	"tank-duel/internal/event"
	"tank-duel/internal/types"
)

// TurnSystem — машина состояний хода: PlayerTurn -> BulletInFlight -> AITurn -> PlayerTurn.
// Действие в неподходящем состоянии молча игнорируется.
type TurnSystem struct {
	ecs             *entity.ECS
	turn            *component.TurnState // Владелец — app.Game
	player          types.EntityID
	aim             *AimSystem
	ballistics      *BallisticSystem
	eventDispatcher *event.Dispatcher
	policy          config.TurnSettings
	despawn         string
	inFlight        types.EntityID
	log             zerolog.Logger
}

func NewTurnSystem(
	ecs *entity.ECS,
	turn *component.TurnState,
	player types.EntityID,
	aim *AimSystem,
	ballistics *BallisticSystem,
	eventDispatcher *event.Dispatcher,
	policy config.TurnSettings,
	bullets config.BulletSettings,
	log zerolog.Logger,
) *TurnSystem {
	return &TurnSystem{
		ecs:             ecs,
		turn:            turn,
		player:          player,
		aim:             aim,
		ballistics:      ballistics,
		eventDispatcher: eventDispatcher,
		policy:          policy,
		despawn:         bullets.Despawn,
		log:             log.With().Str("system", "turn").Logger(),
	}
}

func (s *TurnSystem) Current() component.TurnState {
	return *s.turn
}

// InFlight возвращает снаряд текущего выстрела, пока идёт BulletInFlight
func (s *TurnSystem) InFlight() (types.EntityID, bool) {
	if *s.turn != component.BulletInFlight {
		return 0, false
	}
	return s.inFlight, true
}

// Update проверяет условия переходов и применяет не больше одного.
// action — срабатывание кнопки shoot/confirm на этом тике.
func (s *TurnSystem) Update(action bool) bool {
	switch *s.turn {
	case component.PlayerTurn:
		if action {
			return s.Fire()
		}
	case component.BulletInFlight:
		if s.Grounded() {
			return true
		}
		if action {
			return s.Confirm()
		}
	case component.AITurn:
		if action {
			return s.Confirm()
		}
	}
	return false
}

// Fire — выстрел игрока. Работает только в PlayerTurn.
func (s *TurnSystem) Fire() bool {
	if *s.turn != component.PlayerTurn {
		s.ignored("fire")
		return false
	}

	tank, err := s.ecs.Tank(s.player)
	if err != nil {
		s.log.Error().Err(err).Msg("Player tank not found")
		return false
	}
	pos, vel, err := s.aim.Muzzle(s.player)
	if err != nil {
		s.log.Error().Err(err).Msg("Cannot compute muzzle for player tank")
		return false
	}

	if s.despawn == config.DespawnNextFire {
		for _, id := range s.ecs.GroundedBullets() {
			if err := s.ecs.RemoveBullet(id); err != nil {
				s.log.Warn().Err(err).Msg("Failed to despawn grounded bullet")
			}
		}
	}

	id := s.ballistics.Spawn(pos, vel)
	s.inFlight = id

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotFiredData{
			Bullet: id,
			Tank:   s.player,
			Angle:  tank.GunAngle,
			X:      pos.X,
			Y:      pos.Y,
			VX:     vel.X,
			VY:     vel.Y,
		},
	})
	s.switchTo(component.BulletInFlight)
	return true
}

// Grounded переводит BulletInFlight -> AITurn, когда снаряд выстрела упал
func (s *TurnSystem) Grounded() bool {
	if *s.turn != component.BulletInFlight {
		return false
	}
	bullet, err := s.ecs.Bullet(s.inFlight)
	if err != nil {
		// Снаряд удалили снаружи, ждать больше нечего
		s.log.Warn().Err(err).Msg("In-flight bullet is gone, ending flight")
	} else if bullet.State != component.BulletGrounded {
		return false
	}
	s.switchTo(component.AITurn)
	return true
}

// Confirm — подтверждение: AITurn -> PlayerTurn. При turn.confirmSkipsFlight
// в BulletInFlight снаряд досаживается на землю и ход уходит к AI.
func (s *TurnSystem) Confirm() bool {
	switch *s.turn {
	case component.AITurn:
		s.switchTo(component.PlayerTurn)
		return true
	case component.BulletInFlight:
		if !s.policy.ConfirmSkipsFlight {
			break
		}
		if err := s.ballistics.Resolve(s.inFlight); err != nil {
			s.log.Warn().Err(err).Msg("Could not land bullet on confirm")
		}
		s.switchTo(component.AITurn)
		return true
	}
	s.ignored("confirm")
	return false
}

func (s *TurnSystem) switchTo(to component.TurnState) {
	from := *s.turn
	*s.turn = to
	s.log.Info().Stringer("from", from).Stringer("to", to).Msg("Turn changed")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TurnChanged,
		Data: event.TurnChangedData{From: from, To: to},
	})
}

func (s *TurnSystem) ignored(action string) {
	s.log.Debug().Str("action", action).Stringer("state", *s.turn).Msg("Action ignored in current state")
}
