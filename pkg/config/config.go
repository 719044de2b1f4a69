package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/cbodonnell/circledodge/pkg/game/constants"
	"gopkg.in/yaml.v3"
)

// PathEnvVar names the environment variable the binaries read the config
// file path from when no flag is given.
const PathEnvVar = "CIRCLEDODGE_CONFIG"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunables of a game session.
//
// Values not present in a loaded file keep their defaults, so a file only
// needs to name what it changes.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Avatar    AvatarConfig    `yaml:"avatar"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Collision CollisionConfig `yaml:"collision"`
	Assets    AssetConfig     `yaml:"assets"`
}

type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AvatarConfig struct {
	Diameter        float64 `yaml:"diameter"`
	GrowStep        float64 `yaml:"growStep"`
	ShrinkStep      float64 `yaml:"shrinkStep"`
	GrowCap         float64 `yaml:"growCap"`
	ShrinkThreshold float64 `yaml:"shrinkThreshold"`
	ShrinkFloor     float64 `yaml:"shrinkFloor"`
	// RotationPeriod is in seconds. Zero disables rotation.
	RotationPeriod float64 `yaml:"rotationPeriod"`
}

type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// SpawnInterval is in seconds.
	SpawnInterval float64 `yaml:"spawnInterval"`
	// TravelDuration is in seconds.
	TravelDuration float64 `yaml:"travelDuration"`
	VerticalMargin float64 `yaml:"verticalMargin"`
}

type CollisionConfig struct {
	MaxCollisions    int     `yaml:"maxCollisions"`
	ToleranceDivisor float64 `yaml:"toleranceDivisor"`
}

// AssetConfig names optional image files. Empty paths fall back to the
// built-in drawing.
type AssetConfig struct {
	Background string `yaml:"background"`
	Avatar     string `yaml:"avatar"`
}

// Default returns the stock game tuning.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  constants.ScreenWidth,
			Height: constants.ScreenHeight,
		},
		Avatar: AvatarConfig{
			Diameter:        constants.AvatarDiameter,
			GrowStep:        constants.AvatarGrowStep,
			ShrinkStep:      constants.AvatarShrinkStep,
			GrowCap:         constants.AvatarGrowCap,
			ShrinkThreshold: constants.AvatarShrinkThreshold,
			ShrinkFloor:     constants.AvatarShrinkFloor,
			RotationPeriod:  constants.AvatarRotationPeriod,
		},
		Obstacles: ObstacleConfig{
			Width:          constants.ObstacleWidth,
			Height:         constants.ObstacleHeight,
			SpawnInterval:  constants.ObstacleSpawnInterval,
			TravelDuration: constants.ObstacleTravelDuration,
			VerticalMargin: constants.ObstacleVerticalMargin,
		},
		Collision: CollisionConfig{
			MaxCollisions:    constants.MaxCollisions,
			ToleranceDivisor: constants.CollisionToleranceDivisor,
		},
	}
}

// Load reads a YAML config file on top of the defaults and validates it.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks that the values describe a playable game.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %vx%v", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}

	a := c.Avatar
	if a.Diameter <= 0 {
		return fmt.Errorf("%w: avatar diameter must be positive", ErrInvalidConfig)
	}
	if a.GrowStep <= 0 || a.ShrinkStep <= 0 {
		return fmt.Errorf("%w: avatar grow and shrink steps must be positive", ErrInvalidConfig)
	}
	if a.ShrinkFloor <= 0 || a.ShrinkThreshold <= 0 {
		return fmt.Errorf("%w: avatar shrink threshold and floor must be positive", ErrInvalidConfig)
	}
	if a.GrowCap < a.ShrinkFloor {
		return fmt.Errorf("%w: avatar grow cap %v is below shrink floor %v", ErrInvalidConfig, a.GrowCap, a.ShrinkFloor)
	}
	if a.RotationPeriod < 0 {
		return fmt.Errorf("%w: avatar rotation period must not be negative", ErrInvalidConfig)
	}

	o := c.Obstacles
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: obstacle size must be positive", ErrInvalidConfig)
	}
	if o.SpawnInterval <= 0 {
		return fmt.Errorf("%w: obstacle spawn interval must be positive", ErrInvalidConfig)
	}
	if o.TravelDuration <= 0 {
		return fmt.Errorf("%w: obstacle travel duration must be positive", ErrInvalidConfig)
	}
	if o.VerticalMargin < 0 || 2*o.VerticalMargin > c.Screen.Height {
		return fmt.Errorf("%w: obstacle vertical margin %v does not fit screen height %v", ErrInvalidConfig, o.VerticalMargin, c.Screen.Height)
	}

	if c.Collision.MaxCollisions <= 0 {
		return fmt.Errorf("%w: max collisions must be positive", ErrInvalidConfig)
	}
	if c.Collision.ToleranceDivisor <= 0 {
		return fmt.Errorf("%w: collision tolerance divisor must be positive", ErrInvalidConfig)
	}

	return nil
}

// ObstacleSpeed is the horizontal speed that carries an obstacle from the
// right edge to fully past the left edge in TravelDuration.
func (c *Config) ObstacleSpeed() float64 {
	return (c.Screen.Width + c.Obstacles.Width) / c.Obstacles.TravelDuration
}

// CollisionTolerance is the slack added to the avatar radius in the
// collision test.
func (c *Config) CollisionTolerance() float64 {
	return (c.Obstacles.Width / 2) / c.Collision.ToleranceDivisor
}
