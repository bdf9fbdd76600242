package scoring

import (
	"errors"
	"math"
)

// Input is one completed questionnaire. Answers maps item id to a raw value
// in [-5, 5]; missing items are treated as neutral 0 and unknown ids are
// ignored. The slider is passed explicitly: SliderValue wins when set,
// otherwise ConditionPreference is mapped through conditionSliders,
// otherwise 0.
type Input struct {
	Answers             map[string]int `json:"answers"`
	SliderValue         *int           `json:"slider_value,omitempty"`
	ConditionPreference string         `json:"condition_preference,omitempty"`
}

// DimensionScores holds the five trait scores, two-decimal precision.
type DimensionScores struct {
	O float64 `json:"O"`
	C float64 `json:"C"`
	E float64 `json:"E"`
	A float64 `json:"A"`
	N float64 `json:"N"`
}

// Get returns the score for a dimension.
func (s DimensionScores) Get(d Dimension) float64 {
	switch d {
	case DimOpenness:
		return s.O
	case DimConscientiousness:
		return s.C
	case DimExtraversion:
		return s.E
	case DimAgreeableness:
		return s.A
	default:
		return s.N
	}
}

// TypeResult is the four-letter type code plus how far the axes sat from
// their decision boundaries, floored at 0.35.
type TypeResult struct {
	Code       string  `json:"code"`
	Confidence float64 `json:"confidence"`
}

// Result is everything the engine derives from one Input.
type Result struct {
	Scores          DimensionScores `json:"scores"`
	Inconsistencies []string        `json:"inconsistencies"`
	Type            TypeResult      `json:"type"`
	Archetype       Archetype       `json:"archetype"`
}

// conditionSliders maps a categorical condition preference to a slider
// reading. Anything not listed maps to 0.
var conditionSliders = map[string]int{
	"new":       4,
	"light":     1,
	"value_add": -3,
}

const (
	neutralScore      = 3.0
	sliderDivisor     = 12.5
	consistencyBound  = 6
	scaleFloor        = 1.0
	scaleCeil         = 5.0
)

var ErrNoCatalog = errors.New("scoring engine has no catalog")

// Engine evaluates questionnaires against one immutable catalog. It holds no
// per-call state: concurrent Evaluate calls are safe and identical inputs
// always produce identical results.
type Engine struct {
	catalog *Catalog
}

// NewEngine builds an engine over an already-validated catalog.
func NewEngine(catalog *Catalog) (*Engine, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrNoCatalog
	}
	return &Engine{catalog: catalog}, nil
}

// Catalog returns the engine's item catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Evaluate runs the full pipeline: normalize, aggregate, check consistency,
// derive the type code and classify the archetype. Data-quality problems in
// the input never fail the call; only a missing catalog does.
func (e *Engine) Evaluate(in Input) (Result, error) {
	if e == nil || e.catalog == nil {
		return Result{}, ErrNoCatalog
	}

	scores := e.aggregate(in.Answers, resolveSlider(in))

	return Result{
		Scores:          scores,
		Inconsistencies: e.checkConsistency(in.Answers),
		Type:            deriveType(scores),
		Archetype:       classifyArchetype(scores),
	}, nil
}

// normalize maps a raw answer onto the 1..5 trait scale: sign-flip for
// reverse items, then a linear map sending -5 to 1.0 and +5 to 5.0. Raw
// values are deliberately not clamped, so out-of-range input extrapolates.
func normalize(raw int, reverse bool) float64 {
	v := raw
	if reverse {
		v = -v
	}
	return (float64(v)+5)*0.4 + 1
}

func resolveSlider(in Input) int {
	if in.SliderValue != nil {
		return *in.SliderValue
	}
	return conditionSliders[in.ConditionPreference]
}

// aggregate averages normalized scale-item contributions per dimension
// (missing answers count as neutral 0), then applies the slider adjustment
// to Openness only. The visual item never enters the plain averaging.
func (e *Engine) aggregate(answers map[string]int, slider int) DimensionScores {
	sums := make(map[Dimension]float64, 5)
	counts := make(map[Dimension]int, 5)

	for _, it := range e.catalog.items {
		if it.Kind != KindScale {
			continue
		}
		sums[it.Dimension] += normalize(answers[it.ID], it.Reverse)
		counts[it.Dimension]++
	}

	mean := func(d Dimension) float64 {
		if counts[d] == 0 {
			return neutralScore
		}
		return round2(sums[d] / float64(counts[d]))
	}

	scores := DimensionScores{
		O: mean(DimOpenness),
		C: mean(DimConscientiousness),
		E: mean(DimExtraversion),
		A: mean(DimAgreeableness),
		N: mean(DimRiskAversion),
	}
	scores.O = round2(clamp(scores.O+float64(slider)/sliderDivisor, scaleFloor, scaleCeil))
	return scores
}

// checkConsistency walks declared control pairs over the raw answers and
// flags pairs whose reverse-adjusted values diverge by 6 or more. Each pair
// is evaluated exactly once, in catalog order.
func (e *Engine) checkConsistency(answers map[string]int) []string {
	flags := []string{}
	visited := make(map[string]bool)

	for _, it := range e.catalog.items {
		if it.ControlPairID == "" || visited[it.ID] {
			continue
		}
		pair, ok := e.catalog.byID[it.ControlPairID]
		if !ok {
			continue
		}
		visited[it.ID] = true
		visited[pair.ID] = true

		adjA := adjustRaw(answers[it.ID], it.Reverse)
		adjB := adjustRaw(answers[pair.ID], pair.Reverse)
		if abs(adjA-adjB) >= consistencyBound {
			flags = append(flags, it.ID+"/"+pair.ID)
		}
	}
	return flags
}

func adjustRaw(raw int, reverse bool) int {
	if reverse {
		return -raw
	}
	return raw
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
