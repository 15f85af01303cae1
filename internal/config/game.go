package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvConfigPath = "GAME_CONFIG"
	EnvSeed       = "GAME_SEED"
)

// Game is the full set of tunable simulation parameters.
//
// Loaded from YAML; any field missing from the file keeps its Default value.
type Game struct {
	Timing   Timing   `yaml:"timing"`
	Field    Field    `yaml:"field"`
	Scoring  Scoring  `yaml:"scoring"`
	Ship     Ship     `yaml:"ship"`
	Bullet   Bullet   `yaml:"bullet"`
	Asteroid Asteroid `yaml:"asteroid"`

	// Seed for the asteroid RNG. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// Timing controls the loop cadences.
type Timing struct {
	FPS             float64       `yaml:"fps"`             // Update cadence
	CollisionFactor float64       `yaml:"collisionFactor"` // Collision interval in frames
	RenderFactor    float64       `yaml:"renderFactor"`    // Render interval in frames
	LevelWait       time.Duration `yaml:"levelWait"`       // Pause between levels
	PollInterval    time.Duration `yaml:"pollInterval"`    // Sleep between loop iterations
}

// FrameInterval is the update cadence.
func (t Timing) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / t.FPS)
}

// CollisionInterval is the collision cadence.
func (t Timing) CollisionInterval() time.Duration {
	return time.Duration(float64(t.FrameInterval()) * t.CollisionFactor)
}

// RenderInterval is the render cadence.
func (t Timing) RenderInterval() time.Duration {
	return time.Duration(float64(t.FrameInterval()) * t.RenderFactor)
}

// Field describes the play area and level population.
type Field struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	SafeRadius        float64 `yaml:"safeRadius"`        // No asteroid spawns this close to the ship
	AsteroidsPerLevel int     `yaml:"asteroidsPerLevel"` // Level N starts with N * AsteroidsPerLevel
}

// Scoring holds point awards and the multiplier progression.
type Scoring struct {
	Asteroid          int64   `yaml:"asteroid"`
	LevelClear        int64   `yaml:"levelClear"`
	InitialMultiplier float64 `yaml:"initialMultiplier"`
	MultiplierStep    float64 `yaml:"multiplierStep"`
	FluidRate         float64 `yaml:"fluidRate"` // Display score step per update, scaled by the multiplier
}

// Ship tunes the player ship.
type Ship struct {
	ThrustPower   float64       `yaml:"thrustPower"`
	RotationSpeed float64       `yaml:"rotationSpeed"`
	MaxSpeed      float64       `yaml:"maxSpeed"`
	Drag          float64       `yaml:"drag"`
	Size          float64       `yaml:"size"`
	FireCooldown  time.Duration `yaml:"fireCooldown"`
}

// Bullet tunes bullets.
type Bullet struct {
	Speed float64 `yaml:"speed"`
	Range float64 `yaml:"range"` // Distance travelled before expiry
	Size  float64 `yaml:"size"`
}

// Lifetime is the travel time that covers Range at Speed.
func (b Bullet) Lifetime() time.Duration {
	if b.Speed <= 0 {
		return 0
	}
	return time.Duration(b.Range / b.Speed * float64(time.Second))
}

// Asteroid tunes asteroid motion.
type Asteroid struct {
	MinSpeed      float64 `yaml:"minSpeed"`
	SpeedVariance float64 `yaml:"speedVariance"`
}

// Default returns the stock tuning.
func Default() Game {
	return Game{
		Timing: Timing{
			FPS:             45,
			CollisionFactor: 2,
			RenderFactor:    1.5,
			LevelWait:       750 * time.Millisecond,
			PollInterval:    2 * time.Millisecond,
		},
		Field: Field{
			Width:             800,
			Height:            600,
			SafeRadius:        100,
			AsteroidsPerLevel: 2,
		},
		Scoring: Scoring{
			Asteroid:          1000,
			LevelClear:        2000,
			InitialMultiplier: 1,
			MultiplierStep:    0.5,
			FluidRate:         2,
		},
		Ship: Ship{
			ThrustPower:   220,
			RotationSpeed: 4,
			MaxSpeed:      260,
			Drag:          0.5,
			Size:          12,
			FireCooldown:  250 * time.Millisecond,
		},
		Bullet: Bullet{
			Speed: 350,
			Range: 450,
			Size:  2,
		},
		Asteroid: Asteroid{
			MinSpeed:      30,
			SpeedVariance: 0.3,
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Game, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read game config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// FromEnv loads the file named by GAME_CONFIG (Default when unset) and
// applies the GAME_SEED override.
func FromEnv() (Game, error) {
	cfg := Default()
	if path := GetEnv(EnvConfigPath, ""); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.Seed = GetEnvInt64(EnvSeed, cfg.Seed)
	return cfg, nil
}

// Validate checks that the parameters describe a playable game.
func (g Game) Validate() error {
	var errs []error

	if g.Timing.FPS <= 0 {
		errs = append(errs, errors.New("timing.fps must be positive"))
	}
	if g.Timing.CollisionFactor <= 0 || g.Timing.RenderFactor <= 0 {
		errs = append(errs, errors.New("timing factors must be positive"))
	}
	if g.Timing.LevelWait < 0 || g.Timing.PollInterval < 0 {
		errs = append(errs, errors.New("timing durations must not be negative"))
	}
	if g.Field.Width <= 0 || g.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size %vx%v must be positive", g.Field.Width, g.Field.Height))
	}
	if g.Field.SafeRadius < 0 || g.Field.SafeRadius >= math.Min(g.Field.Width, g.Field.Height)/2 {
		errs = append(errs, fmt.Errorf("field.safeRadius %v must be in [0, %v)", g.Field.SafeRadius, math.Min(g.Field.Width, g.Field.Height)/2))
	}
	if g.Field.AsteroidsPerLevel <= 0 {
		errs = append(errs, errors.New("field.asteroidsPerLevel must be positive"))
	}
	if g.Scoring.Asteroid < 0 || g.Scoring.LevelClear < 0 {
		errs = append(errs, errors.New("scoring awards must not be negative"))
	}
	if g.Scoring.InitialMultiplier <= 0 || g.Scoring.MultiplierStep < 0 {
		errs = append(errs, errors.New("multiplier must start positive and never decrease"))
	}
	if g.Scoring.FluidRate <= 0 {
		errs = append(errs, errors.New("scoring.fluidRate must be positive"))
	}
	if g.Bullet.Speed <= 0 || g.Bullet.Range <= 0 {
		errs = append(errs, errors.New("bullet speed and range must be positive"))
	}
	if g.Asteroid.MinSpeed <= 0 {
		errs = append(errs, errors.New("asteroid.minSpeed must be positive"))
	}
	if g.Asteroid.SpeedVariance < 0 {
		errs = append(errs, errors.New("asteroid.speedVariance must not be negative"))
	}

	return errors.Join(errs...)
}
