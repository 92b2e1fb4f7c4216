// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"tank-duel/internal/config"
	"tank-duel/internal/event"
	"tank-duel/internal/utils"
)

const (
	sampleRate = beep.SampleRate(44100)

	shotFrequency  = 660.0
	shotDuration   = 80 * time.Millisecond
	impactDuration = 180 * time.Millisecond
)

// speakerLock — микшер читается потоком динамика, менять его можно только под speaker.Lock
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// SoundManager — звуковые сигналы выстрела и падения снаряда
type SoundManager struct {
	mu          sync.Mutex
	speaker     sync.Locker
	mixer       *beep.Mixer
	noise       *utils.PRNGService
	volume      float64
	enabled     bool
	initialized bool
	log         zerolog.Logger
}

// NewSoundManager — создаёт менеджер звука. Динамик не открывается до Initialize.
func NewSoundManager(cfg config.AudioSettings, log zerolog.Logger) *SoundManager {
	return &SoundManager{
		speaker: speakerLock{},
		mixer:   &beep.Mixer{},
		noise:   utils.NewPRNGService(0),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		log:     log.With().Str("component", "audio").Logger(),
	}
}

// Initialize — открывает динамик. Ошибка не фатальна: игра работает без звука.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Attach — подписывает менеджер на события выстрела и падения
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.ShotFired, event.BulletGrounded)
}

// Detach — отписывает менеджер
func (sm *SoundManager) Detach(d *event.Dispatcher) {
	d.Unsubscribe(event.ShotFired, sm)
	d.Unsubscribe(event.BulletGrounded, sm)
}

// OnEvent — реализация event.Listener
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		sm.play(sm.shotSound())
	case event.BulletGrounded:
		sm.play(sm.impactSound())
	}
}

// Cleanup — останавливает все звуки
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.speaker.Lock()
	sm.mixer.Clear()
	sm.speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	if s == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.speaker.Lock()
	sm.mixer.Add(s)
	sm.speaker.Unlock()
}

// shotSound — короткий синусоидальный сигнал
func (sm *SoundManager) shotSound() beep.Streamer {
	sine, err := generators.SineTone(sampleRate, shotFrequency)
	if err != nil {
		sm.log.Warn().Err(err).Msg("Failed to build shot tone")
		return nil
	}
	return withVolume(beep.Take(sampleRate.N(shotDuration), sine), sm.volume)
}

// impactSound — затухающий шум
func (sm *SoundManager) impactSound() beep.Streamer {
	return withVolume(newImpactGenerator(sampleRate, impactDuration, sm.noise), sm.volume)
}

// withVolume — громкость в логарифмической шкале по основанию 2, 0 — без изменений
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: vol}
}

// impactGenerator — белый шум с линейным затуханием
type impactGenerator struct {
	total int
	pos   int
	noise *utils.PRNGService
}

func newImpactGenerator(sr beep.SampleRate, d time.Duration, noise *utils.PRNGService) *impactGenerator {
	return &impactGenerator{total: sr.N(d), noise: noise}
}

func (g *impactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		env := 1 - float64(g.pos)/float64(g.total)
		v := g.noise.Signed() * env * 0.5
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *impactGenerator) Err() error {
	return nil
}
