// Package config loads the YAML document that tunes a strider run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/plus3/strider/camera"
	"github.com/plus3/strider/locomotion"
	"github.com/plus3/strider/logger"
	"github.com/plus3/strider/vecmath"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging    logger.Config     `yaml:"logging"`
	Simulation SimulationConfig  `yaml:"simulation"`
	Physics    PhysicsConfig     `yaml:"physics"`
	Camera     CameraConfig      `yaml:"camera"`
	Animation  AnimationConfig   `yaml:"animation"`
	Input      InputConfig       `yaml:"input"`
	Player     locomotion.Config `yaml:"player"`
}

type SimulationConfig struct {
	TickRate int `yaml:"tick_rate"`
}

type PhysicsConfig struct {
	Gravity vecmath.Vec3 `yaml:"gravity"`
	Mass    float64      `yaml:"mass"`
	Drag    float64      `yaml:"drag"`
	Radius  float64      `yaml:"radius"`
}

type CameraConfig struct {
	Initial         string  `yaml:"initial"`
	ThirdPersonFOV  float64 `yaml:"third_person_fov"`
	FirstPersonFOV  float64 `yaml:"first_person_fov"`
	LookSensitivity float64 `yaml:"look_sensitivity"`
	MinPitch        float64 `yaml:"min_pitch"`
	MaxPitch        float64 `yaml:"max_pitch"`
}

// AnimationConfig places the punch clip's markers, in seconds from the
// trigger.
type AnimationConfig struct {
	PunchImpact float64 `yaml:"punch_impact"`
	PunchEnd    float64 `yaml:"punch_end"`
}

// InputConfig overrides control bindings by action name, e.g.
// jump: [Space].
type InputConfig struct {
	Bindings map[string][]string `yaml:"bindings"`
}

func Default() Config {
	return Config{
		Logging:    logger.Config{Level: "info", Format: "console"},
		Simulation: SimulationConfig{TickRate: 60},
		Physics: PhysicsConfig{
			Gravity: vecmath.Vec3{Y: -9.81},
			Mass:    1,
			Drag:    2,
			Radius:  0.3,
		},
		Camera: CameraConfig{
			Initial:         camera.ThirdPerson.String(),
			ThirdPersonFOV:  60,
			FirstPersonFOV:  60,
			LookSensitivity: 90,
			MinPitch:        -60,
			MaxPitch:        60,
		},
		Animation: AnimationConfig{PunchImpact: 0.2, PunchEnd: 0.45},
		Player:    locomotion.DefaultConfig(),
	}
}

// Load reads path and overlays it on the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays a YAML document on the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// InitialCamera returns the configured starting perspective.
func (c Config) InitialCamera() (camera.State, error) {
	switch c.Camera.Initial {
	case camera.ThirdPerson.String():
		return camera.ThirdPerson, nil
	case camera.FirstPerson.String():
		return camera.FirstPerson, nil
	default:
		return camera.ThirdPerson, fmt.Errorf("camera.initial %q is not %q or %q",
			c.Camera.Initial, camera.ThirdPerson, camera.FirstPerson)
	}
}

// TickInterval is the duration of one simulation tick in seconds.
func (c Config) TickInterval() float64 {
	return 1 / float64(c.Simulation.TickRate)
}

func (c Config) Validate() error {
	var errs []error
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_rate must be positive, got %d", c.Simulation.TickRate))
	}
	if c.Physics.Mass <= 0 {
		errs = append(errs, fmt.Errorf("physics.mass must be positive, got %v", c.Physics.Mass))
	}
	if c.Physics.Drag < 0 {
		errs = append(errs, fmt.Errorf("physics.drag must not be negative, got %v", c.Physics.Drag))
	}
	if c.Physics.Radius <= 0 {
		errs = append(errs, fmt.Errorf("physics.radius must be positive, got %v", c.Physics.Radius))
	}
	if _, err := c.InitialCamera(); err != nil {
		errs = append(errs, err)
	}
	if c.Camera.MinPitch > c.Camera.MaxPitch {
		errs = append(errs, fmt.Errorf("camera.min_pitch %v exceeds camera.max_pitch %v", c.Camera.MinPitch, c.Camera.MaxPitch))
	}
	if c.Animation.PunchImpact < 0 || c.Animation.PunchEnd < c.Animation.PunchImpact {
		errs = append(errs, fmt.Errorf("animation markers must satisfy 0 <= punch_impact <= punch_end, got %v and %v",
			c.Animation.PunchImpact, c.Animation.PunchEnd))
	}
	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	return errors.Join(errs...)
}
