package scoring

// Each type axis is driven by one dimension score. Axes are evaluated in
// this order; the winning letters concatenate into the four-character code.
type typeAxis struct {
	dim  Dimension
	high byte
	low  byte
}

var typeAxes = []typeAxis{
	{DimExtraversion, 'E', 'I'},
	{DimOpenness, 'N', 'S'},
	{DimAgreeableness, 'F', 'T'},
	{DimConscientiousness, 'J', 'P'},
}

const (
	axisHighBand   = 3.75
	axisLowBand    = 3.25
	axisMidline    = 3.5
	axisSpread     = 1.5
	confidenceFloor = 0.35
)

// axisHigh applies the three-band threshold: a clear high band, a clear low
// band, and a midline tiebreak for scores between them. The bands are part
// of the scoring contract and must not collapse into a single comparison.
func axisHigh(score float64) bool {
	switch {
	case score >= axisHighBand:
		return true
	case score <= axisLowBand:
		return false
	default:
		return score >= axisMidline
	}
}

// deriveType maps the four driving dimensions onto their axes and reports a
// confidence equal to the average distance from the midline, normalized by
// the band spread and floored at 0.35.
func deriveType(scores DimensionScores) TypeResult {
	code := make([]byte, 0, len(typeAxes))
	totalDistance := 0.0

	for _, ax := range typeAxes {
		s := scores.Get(ax.dim)
		if axisHigh(s) {
			code = append(code, ax.high)
			totalDistance += max0(s-axisMidline) / axisSpread
		} else {
			code = append(code, ax.low)
			totalDistance += max0(axisMidline-s) / axisSpread
		}
	}

	// The low poles can sit further than one spread from the midline, so the
	// average is capped to keep confidence inside its published [0.35, 1.0]
	// range.
	confidence := totalDistance / float64(len(typeAxes))
	if confidence < confidenceFloor {
		confidence = confidenceFloor
	}
	if confidence > 1 {
		confidence = 1
	}

	return TypeResult{Code: string(code), Confidence: round2(confidence)}
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
