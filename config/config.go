package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/engine"
)

// Environment variable names
const (
	EnvConfigPath       = "BOUNCE_CONFIG"
	EnvDebug            = "BOUNCE_DEBUG"
	EnvMute             = "BOUNCE_MUTE"
	EnvBalls            = "BOUNCE_BALLS"
	EnvGravity          = "BOUNCE_GRAVITY"
	EnvPixelScale       = "BOUNCE_PIXEL_SCALE"
	EnvBouncePixelScale = "BOUNCE_BOUNCE_PIXEL_SCALE"
	EnvDamping          = "BOUNCE_DAMPING"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = "bounce.toml"

// File is the on-disk configuration
type File struct {
	Debug   bool           `toml:"debug"`
	Physics PhysicsSection `toml:"physics"`
	Spawn   SpawnSection   `toml:"spawn"`
	Audio   AudioSection   `toml:"audio"`
}

// PhysicsSection holds integration and contact tunables
type PhysicsSection struct {
	Gravity          float64 `toml:"gravity"`
	PixelScale       float64 `toml:"pixel_scale"`
	BouncePixelScale float64 `toml:"bounce_pixel_scale"`
	Damping          float64 `toml:"damping"`
	RestVelocity     float64 `toml:"rest_velocity"`
	RollingFriction  float64 `toml:"rolling_friction"`
	StopVelocity     float64 `toml:"stop_velocity"`
	ImpulseCoeff     float64 `toml:"impulse_coeff"`
}

// SpawnSection holds ball creation parameters
type SpawnSection struct {
	Initial    int     `toml:"initial"`
	BallRadius float64 `toml:"ball_radius"`
	VelX       float64 `toml:"vel_x"`
	VelYMax    float64 `toml:"vel_y_max"`
	Extent     float64 `toml:"extent"`
}

// AudioSection holds sound settings
type AudioSection struct {
	Muted bool `toml:"muted"`
}

// Default returns the configuration built from package constants
func Default() *File {
	return &File{
		Physics: PhysicsSection{
			Gravity:          constants.Gravity,
			PixelScale:       constants.PixelScale,
			BouncePixelScale: constants.BouncePixelScale,
			Damping:          constants.Damping,
			RestVelocity:     constants.RestVelocity,
			RollingFriction:  constants.RollingFriction,
			StopVelocity:     constants.StopVelocity,
			ImpulseCoeff:     constants.ImpulseCoeff,
		},
		Spawn: SpawnSection{
			Initial:    1,
			BallRadius: constants.BallRadius,
			VelX:       constants.SpawnVelX,
			VelYMax:    constants.SpawnVelYMax,
			Extent:     constants.SpawnExtent,
		},
	}
}

// LoadDotEnv loads .env files into the process environment; missing files are ignored
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads defaults, then the TOML file at path, then environment overrides, then validates
// A missing file is not an error; unknown keys are
func Load(path string) (*File, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := Decode(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode merges TOML data over cfg, rejecting unknown keys
func Decode(data []byte, cfg *File) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return err
	}
	return nil
}

// Encode renders cfg as TOML
func Encode(cfg *File) ([]byte, error) {
	return toml.Marshal(cfg)
}

// applyEnv overrides fields from environment variables
func (f *File) applyEnv(lookup func(string) (string, bool)) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvGravity, &f.Physics.Gravity},
		{EnvPixelScale, &f.Physics.PixelScale},
		{EnvBouncePixelScale, &f.Physics.BouncePixelScale},
		{EnvDamping, &f.Physics.Damping},
	}
	for _, fl := range floats {
		if v, ok := lookup(fl.key); ok && v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", fl.key, err)
			}
			*fl.dst = n
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvDebug, &f.Debug},
		{EnvMute, &f.Audio.Muted},
	}
	for _, b := range bools {
		if v, ok := lookup(b.key); ok && v != "" {
			n, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", b.key, err)
			}
			*b.dst = n
		}
	}

	if v, ok := lookup(EnvBalls); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBalls, err)
		}
		f.Spawn.Initial = n
	}
	return nil
}

// Validate rejects values that break simulation invariants
func (f *File) Validate() error {
	p := f.Physics
	var errs []error
	if p.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be negative, got %v", p.Gravity))
	}
	if p.PixelScale <= 0 || p.BouncePixelScale <= 0 {
		errs = append(errs, errors.New("physics pixel scales must be positive"))
	}
	if p.Damping <= 0 || p.Damping > 1 {
		errs = append(errs, fmt.Errorf("physics.damping must be in (0, 1], got %v", p.Damping))
	}
	if p.RollingFriction <= 0 || p.RollingFriction > 1 {
		errs = append(errs, fmt.Errorf("physics.rolling_friction must be in (0, 1], got %v", p.RollingFriction))
	}
	if p.RestVelocity < 0 || p.StopVelocity < 0 {
		errs = append(errs, errors.New("physics rest and stop velocities must not be negative"))
	}
	if f.Spawn.BallRadius <= 0 {
		errs = append(errs, fmt.Errorf("spawn.ball_radius must be positive, got %v", f.Spawn.BallRadius))
	}
	if f.Spawn.Initial < 0 {
		errs = append(errs, fmt.Errorf("spawn.initial must not be negative, got %d", f.Spawn.Initial))
	}
	return errors.Join(errs...)
}

// Simulation returns the initial SimulationConfig
func (f *File) Simulation() *engine.SimulationConfig {
	sim := engine.NewSimulationConfig()
	sim.Gravity = f.Physics.Gravity
	sim.PixelScale = f.Physics.PixelScale
	return sim
}

// Tunables returns the read-only contact and spawn parameters
func (f *File) Tunables() *engine.Tunables {
	return &engine.Tunables{
		BouncePixelScale: f.Physics.BouncePixelScale,
		Damping:          f.Physics.Damping,
		RestVelocity:     f.Physics.RestVelocity,
		RollingFriction:  f.Physics.RollingFriction,
		StopVelocity:     f.Physics.StopVelocity,
		ImpulseCoeff:     f.Physics.ImpulseCoeff,
		BallRadius:       f.Spawn.BallRadius,
		SpawnVelX:        f.Spawn.VelX,
		SpawnVelYMax:     f.Spawn.VelYMax,
		SpawnExtent:      f.Spawn.Extent,
	}
}
