package contract

import (
	"testing"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/stretchr/testify/assert"
)

// --- TechnicalRequest constructor defaults ---

func TestNewTechnicalRequest_SetsDefaults(t *testing.T) {
	req := NewTechnicalRequest()

	assert.Equal(t, domain.GasAir, req.BottomGas)
	assert.Equal(t, domain.DecoGasNone, req.DecoGases)
	assert.Zero(t, req.GFLow, "zero defers to the configured gradient factors")
	assert.Zero(t, req.GFHigh)
	assert.Zero(t, req.AscentRate)
}

// --- Recreational and surface requests ---

func TestNewRecreationalRequest_DefersUnits(t *testing.T) {
	req := NewRecreationalRequest()
	assert.Empty(t, req.Units)
	assert.Zero(t, req.Depth)
}

func TestNewSurfaceIntervalRequest_DefersPolicy(t *testing.T) {
	req := NewSurfaceIntervalRequest()
	assert.Empty(t, req.Policy)
}

func TestNewAirRequest_ZeroPreserved(t *testing.T) {
	// Zero is preserved in the DTO; the service layer fills configured defaults.
	req := NewAirRequest()
	assert.Zero(t, req.TankLiters)
	assert.Zero(t, req.SACRate)
}
