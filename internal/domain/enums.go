package domain

type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// ValidUnits is the canonical set of accepted unit system strings.
var ValidUnits = map[string]bool{
	"metric": true, "imperial": true,
}

type SurfaceIntervalPolicy string

const (
	// SurfacePolicyThreshold picks the credit for the largest elapsed-minutes
	// threshold not exceeding the surface interval.
	SurfacePolicyThreshold SurfaceIntervalPolicy = "threshold"
	// SurfacePolicyStepwise repeatedly spends the time needed to drop one
	// group while enough minutes remain.
	SurfacePolicyStepwise SurfaceIntervalPolicy = "stepwise"
)

// ValidSurfacePolicies is the canonical set of accepted surface policy strings.
var ValidSurfacePolicies = map[string]bool{
	"threshold": true, "stepwise": true,
}

type DecoGasPolicy string

const (
	DecoGasNone       DecoGasPolicy = "none"
	DecoGasEAN50      DecoGasPolicy = "ean50"
	DecoGasOxygen     DecoGasPolicy = "oxygen"
	DecoGasEAN50AndO2 DecoGasPolicy = "ean50+oxygen"
)

// ValidDecoGasPolicies is the canonical set of accepted deco gas policy strings.
var ValidDecoGasPolicies = map[string]bool{
	"none": true, "ean50": true, "oxygen": true, "ean50+oxygen": true,
}

type Phase string

const (
	PhaseBottom    Phase = "bottom"
	PhaseAscent    Phase = "ascent"
	PhaseGasSwitch Phase = "gas_switch"
	PhaseDecoStop  Phase = "deco_stop"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityCaution Severity = "caution"
	SeverityDanger  Severity = "danger"
)
