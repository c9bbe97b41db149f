package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Presentation defaults for the particle background.
const (
	SurfaceID = "bg-canvas"

	ParticleCount  = 700
	ParticleSpread = 20.0 // coordinates fall in [-Spread/2, Spread/2]

	PointSize    = 0.02
	PointColor   = 0x3B82F6
	PointOpacity = 0.8

	LightColor     = 0xFFFFFF
	LightIntensity = 0.1

	CameraFOV      = 75.0 // vertical, degrees
	CameraNear     = 0.1
	CameraFar      = 1000.0
	CameraDistance = 5.0

	PointerScale = 0.001
	Smoothing    = 0.05
	AmbientDrift = 0.0005

	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Backdrop"
	TPS          = 60

	ShimmerAmplitude = 0.0
	ShimmerSpeed     = 0.6
)

// Config holds every tunable of the backdrop.
type Config struct {
	SurfaceID string

	Particles ParticleConfig
	Material  MaterialConfig
	Light     LightConfig
	Camera    CameraConfig
	Motion    MotionConfig
	Window    WindowConfig
	Shimmer   ShimmerConfig
}

// ParticleConfig controls cloud generation.
type ParticleConfig struct {
	Count  int
	Spread float64
}

// MaterialConfig holds the point material constants.
type MaterialConfig struct {
	Size     float64
	Color    uint32 // 0xRRGGBB
	Opacity  float64
	Additive bool
}

// LightConfig describes the single point light in the scene.
type LightConfig struct {
	Color     uint32
	Intensity float64
	X, Y, Z   float64
}

// CameraConfig describes the perspective camera.
type CameraConfig struct {
	FOV      float64
	Near     float64
	Far      float64
	Distance float64
}

// MotionConfig drives the per-tick orientation update.
type MotionConfig struct {
	PointerScale float64 // pointer offset (px) to target angle (rad)
	Smoothing    float64 // fraction of the remaining distance closed per tick
	AmbientDrift float64 // yaw added every tick
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// ShimmerConfig modulates per-point opacity with Perlin noise.
// An amplitude of zero keeps the material opacity untouched.
type ShimmerConfig struct {
	Amplitude float64
	Speed     float64
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		SurfaceID: SurfaceID,
		Particles: ParticleConfig{
			Count:  ParticleCount,
			Spread: ParticleSpread,
		},
		Material: MaterialConfig{
			Size:     PointSize,
			Color:    PointColor,
			Opacity:  PointOpacity,
			Additive: true,
		},
		Light: LightConfig{
			Color:     LightColor,
			Intensity: LightIntensity,
			X:         2,
			Y:         3,
			Z:         4,
		},
		Camera: CameraConfig{
			FOV:      CameraFOV,
			Near:     CameraNear,
			Far:      CameraFar,
			Distance: CameraDistance,
		},
		Motion: MotionConfig{
			PointerScale: PointerScale,
			Smoothing:    Smoothing,
			AmbientDrift: AmbientDrift,
		},
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
			TPS:    TPS,
		},
		Shimmer: ShimmerConfig{
			Amplitude: ShimmerAmplitude,
			Speed:     ShimmerSpeed,
		},
	}
}

// Validate reports the first setting that cannot produce a working field.
func (c Config) Validate() error {
	switch {
	case c.Particles.Count <= 0:
		return fmt.Errorf("particle count must be positive, got %d", c.Particles.Count)
	case c.Particles.Spread <= 0:
		return fmt.Errorf("particle spread must be positive, got %g", c.Particles.Spread)
	case c.Motion.Smoothing <= 0 || c.Motion.Smoothing >= 1:
		return fmt.Errorf("smoothing must be in (0,1), got %g", c.Motion.Smoothing)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("camera distance must be positive, got %g", c.Camera.Distance)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("camera clip planes invalid: near=%g far=%g", c.Camera.Near, c.Camera.Far)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("camera fov must be in (0,180), got %g", c.Camera.FOV)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.Window.TPS)
	case c.Shimmer.Amplitude < 0 || c.Shimmer.Amplitude > 1:
		return fmt.Errorf("shimmer amplitude must be in [0,1], got %g", c.Shimmer.Amplitude)
	}
	return nil
}

// Overrides is the on-disk form of a Config. Nil fields keep their default.
type Overrides struct {
	SurfaceID *string `json:"surface_id,omitempty"`

	ParticleCount  *int     `json:"particle_count,omitempty"`
	ParticleSpread *float64 `json:"particle_spread,omitempty"`

	PointSize     *float64 `json:"point_size,omitempty"`
	PointColor    *uint32  `json:"point_color,omitempty"`
	PointOpacity  *float64 `json:"point_opacity,omitempty"`
	PointAdditive *bool    `json:"point_additive,omitempty"`

	CameraFOV      *float64 `json:"camera_fov,omitempty"`
	CameraNear     *float64 `json:"camera_near,omitempty"`
	CameraFar      *float64 `json:"camera_far,omitempty"`
	CameraDistance *float64 `json:"camera_distance,omitempty"`

	PointerScale *float64 `json:"pointer_scale,omitempty"`
	Smoothing    *float64 `json:"smoothing,omitempty"`
	AmbientDrift *float64 `json:"ambient_drift,omitempty"`

	WindowWidth  *int    `json:"window_width,omitempty"`
	WindowHeight *int    `json:"window_height,omitempty"`
	WindowTitle  *string `json:"window_title,omitempty"`
	TPS          *int    `json:"tps,omitempty"`

	ShimmerAmplitude *float64 `json:"shimmer_amplitude,omitempty"`
	ShimmerSpeed     *float64 `json:"shimmer_speed,omitempty"`
}

// Apply copies every non-nil override onto c.
func (o *Overrides) Apply(c *Config) {
	setString(&c.SurfaceID, o.SurfaceID)

	setInt(&c.Particles.Count, o.ParticleCount)
	setFloat(&c.Particles.Spread, o.ParticleSpread)

	setFloat(&c.Material.Size, o.PointSize)
	if o.PointColor != nil {
		c.Material.Color = *o.PointColor
	}
	setFloat(&c.Material.Opacity, o.PointOpacity)
	if o.PointAdditive != nil {
		c.Material.Additive = *o.PointAdditive
	}

	setFloat(&c.Camera.FOV, o.CameraFOV)
	setFloat(&c.Camera.Near, o.CameraNear)
	setFloat(&c.Camera.Far, o.CameraFar)
	setFloat(&c.Camera.Distance, o.CameraDistance)

	setFloat(&c.Motion.PointerScale, o.PointerScale)
	setFloat(&c.Motion.Smoothing, o.Smoothing)
	setFloat(&c.Motion.AmbientDrift, o.AmbientDrift)

	setInt(&c.Window.Width, o.WindowWidth)
	setInt(&c.Window.Height, o.WindowHeight)
	setString(&c.Window.Title, o.WindowTitle)
	setInt(&c.Window.TPS, o.TPS)

	setFloat(&c.Shimmer.Amplitude, o.ShimmerAmplitude)
	setFloat(&c.Shimmer.Speed, o.ShimmerSpeed)
}

// Load reads JSON overrides from path, merges them over Default and validates
// the result. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var o Overrides
	if err := json.Unmarshal(data, &o); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	o.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Join(ErrInvalid, err)
	}
	return cfg, nil
}

// ErrInvalid marks a configuration rejected by Validate.
var ErrInvalid = errors.New("invalid config")

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
