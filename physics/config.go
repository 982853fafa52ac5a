// Copyright © 2024 Galvanized Logic Inc.

package physics

// config.go reduces the simulation construction API footprint using
// functional options, following the same pattern the rest of the engine
// uses for its own Config/Attr (see the top level config.go).
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gazed/ftphysics/math/lin"
)

// Config holds the tunable constants a simulation world is built with.
type Config struct {
	gravity            lin.V3
	maxContacts        int
	velocityIterations int
	positionIterations int
	sleepEpsilon       float64
}

// configDefaults provides reasonable defaults so a world runs even if no
// configuration attributes are set.
var configDefaults = Config{
	gravity:            lin.V3{X: 0, Y: -9.81, Z: 0},
	maxContacts:        256,
	velocityIterations: 0, // 0 means "derive from contact count", see World.RunPhysics.
	positionIterations: 32,
	sleepEpsilon:       0.5,
}

// Attr defines optional attributes used to configure a simulation world.
//
//	w, err := physics.NewWorldConfig(
//	   physics.Gravity(0, -9.81, 0),
//	   physics.MaxContacts(512),
//	)
type Attr func(*Config)

// Gravity sets the world's default gravitational acceleration.
func Gravity(x, y, z float64) Attr {
	return func(c *Config) { c.gravity = lin.V3{X: x, Y: y, Z: z} }
}

// MaxContacts bounds how many contacts a single frame can generate.
func MaxContacts(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.maxContacts = n
		}
	}
}

// PositionIterations sets the contact resolver's position correction
// iteration cap.
func PositionIterations(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.positionIterations = n
		}
	}
}

// SleepEpsilon overrides the default motion threshold used to decide when
// an awake body is put to sleep.
func SleepEpsilon(epsilon float64) Attr {
	return func(c *Config) {
		if epsilon > 0 {
			c.sleepEpsilon = epsilon
		}
	}
}

// NewWorldConfig creates a rigid-body World configured by attrs, with a
// Gravity generator already registered against every body later added via
// World.AddBody — callers still need to call Registry.Add themselves,
// since the registry has no way to know about bodies added afterward.
func NewWorldConfig(attrs ...Attr) (*World, *Gravity) {
	cfg := configDefaults
	for _, attr := range attrs {
		attr(&cfg)
	}

	w := NewWorld(cfg.maxContacts)
	w.Resolver = NewContactResolver(cfg.velocityIterations, cfg.positionIterations)
	gravity := NewGravity(lin.NewV3S(cfg.gravity.X, cfg.gravity.Y, cfg.gravity.Z))
	return w, gravity
}

// yamlWorldConfig mirrors Config's fields in a form gopkg.in/yaml.v3 can
// unmarshal directly, since Config's fields are unexported (matching the
// engine's config.go) and yaml.v3 cannot populate unexported fields.
type yamlWorldConfig struct {
	Gravity            [3]float64 `yaml:"gravity"`
	MaxContacts        int        `yaml:"max_contacts"`
	VelocityIterations int        `yaml:"velocity_iterations"`
	PositionIterations int        `yaml:"position_iterations"`
	SleepEpsilon       float64    `yaml:"sleep_epsilon"`
}

// LoadConfig reads a yaml-encoded world configuration from path and
// returns the equivalent Attr overrides, ready to pass to NewWorldConfig.
func LoadConfig(path string) ([]Attr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("physics: read config %q: %w", path, err)
	}

	var raw yamlWorldConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("physics: parse config %q: %w", path, err)
	}

	var attrs []Attr
	if raw.Gravity != [3]float64{} {
		attrs = append(attrs, Gravity(raw.Gravity[0], raw.Gravity[1], raw.Gravity[2]))
	}
	if raw.MaxContacts > 0 {
		attrs = append(attrs, MaxContacts(raw.MaxContacts))
	}
	if raw.PositionIterations > 0 {
		attrs = append(attrs, PositionIterations(raw.PositionIterations))
	}
	if raw.SleepEpsilon > 0 {
		attrs = append(attrs, SleepEpsilon(raw.SleepEpsilon))
	}
	return attrs, nil
}
