package app

import "github.com/alexanderramin/fathom/internal/domain"

type TechnicalRequest struct {
	MaxDepth   float64
	BottomTime float64
	// BottomGas is a catalog id. Empty means air.
	BottomGas string
	DecoGases domain.DecoGasPolicy
	// Zero values below fall back to the configured defaults.
	GFLow      float64
	GFHigh     float64
	AscentRate float64
}

func NewTechnicalRequest() TechnicalRequest {
	return TechnicalRequest{
		BottomGas: domain.GasAir,
		DecoGases: domain.DecoGasNone,
	}
}

type TechnicalResponse struct {
	PlanID        string
	MaxDepth      float64
	BottomTime    float64
	BottomGas     domain.GasMix
	DecoGases     domain.DecoGasPolicy
	Settings      Settings
	FirstStop     float64
	Profile       []domain.Segment
	DecoStops     []domain.DecoStop
	TotalRuntime  float64
	TotalDecoTime float64
	Warnings      []domain.Advisory
	// Resolved is false when a stop hit the cap; Profile then ends at that stop.
	Resolved      bool
	FailureReason string
}
