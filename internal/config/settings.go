package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName — имя файла настроек без расширения
const ConfigName = "tank-duel"

// EnvPrefix — префикс переменных окружения (TANKDUEL_PHYSICS_GRAVITY и т.п.)
const EnvPrefix = "TANKDUEL"

// PhysicsSettings holds the ballistic and aiming tuning.
type PhysicsSettings struct {
	Gravity        float64 `mapstructure:"gravity"`
	GroundHeight   float64 `mapstructure:"groundHeight"`
	MuzzleOffset   float64 `mapstructure:"muzzleOffset"`
	MuzzleSpeed    float64 `mapstructure:"muzzleSpeed"`
	AimSpeedFactor float64 `mapstructure:"aimSpeedFactor"`
	MaxDeltaTime   float64 `mapstructure:"maxDeltaTime"`
}

// TurnSettings holds the turn controller policy.
type TurnSettings struct {
	// ConfirmSkipsFlight lets a confirm during BulletInFlight land the bullet at once
	// instead of waiting for it to reach the ground.
	ConfirmSkipsFlight bool `mapstructure:"confirmSkipsFlight"`
}

// BulletSettings holds the despawn policy for grounded bullets.
type BulletSettings struct {
	Despawn string `mapstructure:"despawn"`
}

// Bindings maps logical controls to key names.
type Bindings struct {
	GunAngleNegative string `mapstructure:"gunAngleNegative"`
	GunAnglePositive string `mapstructure:"gunAnglePositive"`
	Shoot            string `mapstructure:"shoot"`
	Pause            string `mapstructure:"pause"`
	Quit             string `mapstructure:"quit"`
}

// GraylogSettings configures the optional GELF sink.
type GraylogSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// LogSettings configures zerolog.
type LogSettings struct {
	Level   string          `mapstructure:"level"`
	File    string          `mapstructure:"file"`
	Graylog GraylogSettings `mapstructure:"graylog"`
}

// AudioSettings configures the sound cues.
type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"` // логарифмическая, 0 — без изменений
}

// WindowSettings configures the ebiten window.
type WindowSettings struct {
	Scale         int    `mapstructure:"scale"`
	Title         string `mapstructure:"title"`
	StartFromMenu bool   `mapstructure:"startFromMenu"`
}

// DebugSettings holds developer switches.
type DebugSettings struct {
	PprofAddr string `mapstructure:"pprofAddr"`
}

// Settings is the full runtime configuration.
type Settings struct {
	Physics PhysicsSettings `mapstructure:"physics"`
	Turn    TurnSettings    `mapstructure:"turn"`
	Bullets BulletSettings  `mapstructure:"bullets"`
	Input   Bindings        `mapstructure:"input"`
	Log     LogSettings     `mapstructure:"log"`
	Audio   AudioSettings   `mapstructure:"audio"`
	Window  WindowSettings  `mapstructure:"window"`
	Debug   DebugSettings   `mapstructure:"debug"`
}

// Default returns the settings used when no file or environment overrides exist.
func Default() Settings {
	return Settings{
		Physics: PhysicsSettings{
			Gravity:        Gravity,
			GroundHeight:   GroundHeight,
			MuzzleOffset:   MuzzleOffset,
			MuzzleSpeed:    MuzzleSpeed,
			AimSpeedFactor: AimSpeedFactor,
			MaxDeltaTime:   MaxDeltaTime,
		},
		Turn:    TurnSettings{ConfirmSkipsFlight: false},
		Bullets: BulletSettings{Despawn: DespawnNextFire},
		Input: Bindings{
			GunAngleNegative: "ArrowDown",
			GunAnglePositive: "ArrowUp",
			Shoot:            "Space",
			Pause:            "P",
			Quit:             "Escape",
		},
		Log: LogSettings{
			Level:   "info",
			Graylog: GraylogSettings{Enabled: false, Address: "localhost:12201"},
		},
		Audio:  AudioSettings{Enabled: true},
		Window: WindowSettings{Scale: WindowScale, Title: "Tank Duel", StartFromMenu: true},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("physics.gravity", d.Physics.Gravity)
	v.SetDefault("physics.groundHeight", d.Physics.GroundHeight)
	v.SetDefault("physics.muzzleOffset", d.Physics.MuzzleOffset)
	v.SetDefault("physics.muzzleSpeed", d.Physics.MuzzleSpeed)
	v.SetDefault("physics.aimSpeedFactor", d.Physics.AimSpeedFactor)
	v.SetDefault("physics.maxDeltaTime", d.Physics.MaxDeltaTime)

	v.SetDefault("turn.confirmSkipsFlight", d.Turn.ConfirmSkipsFlight)
	v.SetDefault("bullets.despawn", d.Bullets.Despawn)

	v.SetDefault("input.gunAngleNegative", d.Input.GunAngleNegative)
	v.SetDefault("input.gunAnglePositive", d.Input.GunAnglePositive)
	v.SetDefault("input.shoot", d.Input.Shoot)
	v.SetDefault("input.pause", d.Input.Pause)
	v.SetDefault("input.quit", d.Input.Quit)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.graylog.enabled", d.Log.Graylog.Enabled)
	v.SetDefault("log.graylog.address", d.Log.Graylog.Address)

	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.volume", d.Audio.Volume)

	v.SetDefault("window.scale", d.Window.Scale)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.startFromMenu", d.Window.StartFromMenu)

	v.SetDefault("debug.pprofAddr", d.Debug.PprofAddr)
}

// Load reads tank-duel.json from configDir (if present) on top of the defaults,
// then applies TANKDUEL_* environment overrides.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	switch s.Bullets.Despawn {
	case DespawnNextFire, DespawnRetain:
	default:
		return fmt.Errorf("unknown bullets.despawn policy %q", s.Bullets.Despawn)
	}
	physics := []struct {
		name  string
		value float64
	}{
		{"physics.gravity", s.Physics.Gravity},
		{"physics.groundHeight", s.Physics.GroundHeight},
		{"physics.muzzleOffset", s.Physics.MuzzleOffset},
		{"physics.muzzleSpeed", s.Physics.MuzzleSpeed},
		{"physics.aimSpeedFactor", s.Physics.AimSpeedFactor},
		{"physics.maxDeltaTime", s.Physics.MaxDeltaTime},
	}
	for _, p := range physics {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", p.name, p.value)
		}
	}
	// Без гравитации вниз снаряд, выпущенный вверх, никогда не упадёт
	if s.Physics.Gravity >= 0 {
		return fmt.Errorf("physics.gravity must be negative, got %v", s.Physics.Gravity)
	}
	if s.Physics.MuzzleSpeed < 0 || s.Physics.MuzzleOffset < 0 {
		return fmt.Errorf("physics.muzzleSpeed and physics.muzzleOffset must not be negative")
	}
	if s.Physics.MaxDeltaTime <= 0 {
		return fmt.Errorf("physics.maxDeltaTime must be positive, got %v", s.Physics.MaxDeltaTime)
	}
	if s.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %d", s.Window.Scale)
	}
	return nil
}
