package app

import (
	"time"

	"github.com/rs/zerolog"

	"tank-duel/internal/event"
	"tank-duel/internal/utils"
)

// eventLogger пишет игровые события в лог
type eventLogger struct {
	log zerolog.Logger
}

func (l *eventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ShotFiredData:
		l.log.Info().
			Uint64("bullet", uint64(data.Bullet)).
			Float64("angleDeg", utils.RadToDeg(data.Angle)).
			Float64("vx", data.VX).
			Float64("vy", data.VY).
			Msg("Shot fired")
	case event.BulletGroundedData:
		l.log.Info().
			Uint64("bullet", uint64(data.Bullet)).
			Float64("x", data.X).
			Msg("Bullet landed")
	}
}

// sampled — логгер для потиковых сообщений: 5 записей в секунду, дальше каждая сотая
func sampled(log zerolog.Logger) zerolog.Logger {
	return log.Sample(&zerolog.BurstSampler{
		Burst:       5,
		Period:      time.Second,
		NextSampler: &zerolog.BasicSampler{N: 100},
	})
}
