package app

import "github.com/alexanderramin/fathom/internal/domain"

type RecreationalRequest struct {
	Depth      float64
	BottomTime float64
	// Units selects the table. Empty uses the configured default.
	Units domain.Units
}

func NewRecreationalRequest() RecreationalRequest {
	return RecreationalRequest{}
}

type RecreationalResponse struct {
	PlanID        string
	Units         domain.Units
	Depth         float64
	BottomTime    float64
	BandDepth     float64
	NDL           float64
	PressureGroup domain.PressureGroup
	TimeRemaining float64
	WithinLimits  bool
	OutOfTable    bool
	OverLimit     bool
	Advisories    []domain.Advisory
}

type SurfaceIntervalRequest struct {
	Group   string
	Minutes float64
	// Policy selects the credit table shape. Empty uses the configured default.
	Policy domain.SurfaceIntervalPolicy
}

func NewSurfaceIntervalRequest() SurfaceIntervalRequest {
	return SurfaceIntervalRequest{}
}

type SurfaceIntervalResponse struct {
	PlanID  string
	Start   domain.PressureGroup
	Minutes float64
	Group   domain.PressureGroup
	Policy  domain.SurfaceIntervalPolicy
	// FullDesaturationMin is the surface time after which Start reaches A.
	FullDesaturationMin float64
	Advisories          []domain.Advisory
}

type AirRequest struct {
	Depth       float64
	Minutes     float64
	TankLiters  float64
	SACRate     float64
	StartBars   float64
	ReserveBars float64
}

func NewAirRequest() AirRequest {
	return AirRequest{}
}

type AirResponse struct {
	PlanID        string
	Depth         float64
	Minutes       float64
	TankLiters    float64
	SACRate       float64
	Liters        float64
	Bars          float64
	StartBars     float64
	RemainingBars float64
	Sufficient    bool
	Advisories    []domain.Advisory
}
