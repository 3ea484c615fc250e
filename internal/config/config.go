package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexanderramin/fathom/internal/deco"
	"github.com/alexanderramin/fathom/internal/domain"
)

// Config holds planner defaults. Every value can be overridden per request.
type Config struct {
	Units         domain.Units
	SurfacePolicy domain.SurfaceIntervalPolicy
	LogCalls      bool

	GFLow      float64
	GFHigh     float64
	AscentRate float64 // metres per minute

	StopCapMinutes        int
	MinShallowStopMinutes int

	SACRate     float64 // litres per minute at the surface
	TankLiters  float64
	StartBars   float64
	ReserveBars float64
}

// DefaultConfig returns a Config with conservative recreational defaults.
func DefaultConfig() Config {
	return Config{
		Units:                 domain.UnitsMetric,
		SurfacePolicy:         domain.SurfacePolicyThreshold,
		GFLow:                 30,
		GFHigh:                70,
		AscentRate:            9,
		StopCapMinutes:        60,
		MinShallowStopMinutes: 1,
		SACRate:               20,
		TankLiters:            12,
		StartBars:             200,
		ReserveBars:           50,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FATHOM_UNITS"); domain.ValidUnits[v] {
		cfg.Units = domain.Units(v)
	}
	if v := os.Getenv("FATHOM_SURFACE_POLICY"); domain.ValidSurfacePolicies[v] {
		cfg.SurfacePolicy = domain.SurfaceIntervalPolicy(v)
	}
	if v := os.Getenv("FATHOM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyFloatEnv(&cfg.GFLow, "FATHOM_GF_LOW")
	applyFloatEnv(&cfg.GFHigh, "FATHOM_GF_HIGH")
	applyFloatEnv(&cfg.AscentRate, "FATHOM_ASCENT_RATE")
	applyFloatEnv(&cfg.SACRate, "FATHOM_SAC_RATE")
	applyFloatEnv(&cfg.TankLiters, "FATHOM_TANK_LITERS")
	applyFloatEnv(&cfg.StartBars, "FATHOM_START_BARS")
	applyFloatEnv(&cfg.ReserveBars, "FATHOM_RESERVE_BARS")

	if v := os.Getenv("FATHOM_STOP_CAP_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.StopCapMinutes = n
		}
	}
	if v := os.Getenv("FATHOM_MIN_SHALLOW_STOP_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MinShallowStopMinutes = n
		}
	}

	return cfg
}

// Validate rejects settings no plan could honour.
func (c Config) Validate() error {
	if c.GFLow <= 0 || c.GFLow > 100 || c.GFHigh <= 0 || c.GFHigh > 100 {
		return fmt.Errorf("gradient factors must be in (0, 100], got %v/%v", c.GFLow, c.GFHigh)
	}
	if c.GFLow > c.GFHigh {
		return fmt.Errorf("gf low %v is greater than gf high %v", c.GFLow, c.GFHigh)
	}
	if c.AscentRate <= 0 {
		return fmt.Errorf("ascent rate must be positive, got %v", c.AscentRate)
	}
	if c.StopCapMinutes <= 0 {
		return fmt.Errorf("stop cap must be positive, got %d", c.StopCapMinutes)
	}
	return nil
}

// DecoOptions returns scheduler options carrying the configured limits.
func (c Config) DecoOptions() deco.Options {
	opts := deco.DefaultOptions()
	opts.StopCapMinutes = c.StopCapMinutes
	opts.MinShallowStopMinutes = c.MinShallowStopMinutes
	return opts
}

func applyFloatEnv(dst *float64, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return
	}
	*dst = f
}
