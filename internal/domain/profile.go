package domain

// Segment is one emitted leg of a planned dive. Segments are append-only.
type Segment struct {
	Phase    Phase
	Depth    float64
	Duration float64
	Runtime  float64
	Gas      string
}

// DecoStop summarises a Deco Stop segment.
type DecoStop struct {
	Depth    float64
	Duration float64
	// Leading is the 1-based compartment that controlled the stop.
	Leading int
}

// Advisory is a structured, non-fatal note attached to a plan result.
type Advisory struct {
	Code     AdvisoryCode
	Severity Severity
	Message  string
}

type AdvisoryCode string

const (
	AdviceOutOfTable        AdvisoryCode = "OUT_OF_TABLE_RANGE"
	AdviceExceedsNDL        AdvisoryCode = "EXCEEDS_NDL"
	AdviceOverTableLimit    AdvisoryCode = "OVER_TABLE_LIMIT"
	AdviceExceedsMOD        AdvisoryCode = "EXCEEDS_MOD"
	AdviceNearNDL           AdvisoryCode = "NEAR_NDL"
	AdviceDepthBeginner     AdvisoryCode = "DEPTH_BEGINNER"
	AdviceDepthIntermediate AdvisoryCode = "DEPTH_INTERMEDIATE"
	AdviceDepthAdvanced     AdvisoryCode = "DEPTH_ADVANCED"
	AdviceDepthUnsafe       AdvisoryCode = "DEPTH_BEYOND_RECREATIONAL"
	AdviceSafetyStop        AdvisoryCode = "SAFETY_STOP"
	AdviceAscentRate        AdvisoryCode = "ASCENT_RATE"
	AdviceDiveComputer      AdvisoryCode = "DIVE_COMPUTER"
	AdviceLongInterval      AdvisoryCode = "LONG_SURFACE_INTERVAL"
	AdviceNoImprovement     AdvisoryCode = "NO_IMPROVEMENT"
	AdviceResidualNitrogen  AdvisoryCode = "RESIDUAL_NITROGEN"
	AdviceMinimalNitrogen   AdvisoryCode = "MINIMAL_NITROGEN"
	AdviceGasInsufficient   AdvisoryCode = "GAS_INSUFFICIENT"
)

// HasAdvisory reports whether code is present in list.
func HasAdvisory(list []Advisory, code AdvisoryCode) bool {
	for _, a := range list {
		if a.Code == code {
			return true
		}
	}
	return false
}
