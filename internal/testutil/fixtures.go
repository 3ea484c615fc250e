// Package testutil builds planner requests and configs for tests.
package testutil

import (
	"github.com/alexanderramin/fathom/internal/config"
	"github.com/alexanderramin/fathom/internal/contract"
	"github.com/alexanderramin/fathom/internal/domain"
)

// Technical request options
type TechOption func(*contract.TechnicalRequest)

func WithGas(id string) TechOption {
	return func(r *contract.TechnicalRequest) {
		r.BottomGas = id
	}
}

func WithDecoGases(p domain.DecoGasPolicy) TechOption {
	return func(r *contract.TechnicalRequest) {
		r.DecoGases = p
	}
}

func WithGF(low, high float64) TechOption {
	return func(r *contract.TechnicalRequest) {
		r.GFLow, r.GFHigh = low, high
	}
}

func WithAscentRate(rate float64) TechOption {
	return func(r *contract.TechnicalRequest) {
		r.AscentRate = rate
	}
}

// NewTestTechnicalRequest returns an air dive to depth for bottomTime with
// no deco gases. Gradient factors and ascent rate defer to config unless set.
func NewTestTechnicalRequest(depth, bottomTime float64, opts ...TechOption) contract.TechnicalRequest {
	r := contract.NewTechnicalRequest()
	r.MaxDepth = depth
	r.BottomTime = bottomTime
	for _, o := range opts {
		o(&r)
	}
	return r
}

// Config options
type ConfigOption func(*config.Config)

func WithUnits(u domain.Units) ConfigOption {
	return func(c *config.Config) {
		c.Units = u
	}
}

func WithSurfacePolicy(p domain.SurfaceIntervalPolicy) ConfigOption {
	return func(c *config.Config) {
		c.SurfacePolicy = p
	}
}

func WithStopCap(minutes int) ConfigOption {
	return func(c *config.Config) {
		c.StopCapMinutes = minutes
	}
}

func WithDefaultGF(low, high float64) ConfigOption {
	return func(c *config.Config) {
		c.GFLow, c.GFHigh = low, high
	}
}

// NewTestConfig returns DefaultConfig with opts applied. The environment is
// never read, so tests are unaffected by FATHOM_* variables.
func NewTestConfig(opts ...ConfigOption) config.Config {
	cfg := config.DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
