package scoring

// Archetype is one of six coarse buyer labels.
type Archetype string

const (
	ArchetypeVisionaryHost           Archetype = "Visionary Host"
	ArchetypeSteadyPlanner           Archetype = "Steady Planner"
	ArchetypeRiskGuardedNestBuilder  Archetype = "Risk-Guarded Nest-Builder"
	ArchetypeFamilyFirstOptimizer    Archetype = "Family-First Optimizer"
	ArchetypeDesignForwardAdventurer Archetype = "Design-Forward Adventurer"
	ArchetypeBalancedExplorer        Archetype = "Balanced Explorer"
)

type archetypeRule struct {
	match func(s DimensionScores) bool
	label Archetype
}

func hi(x float64) bool { return x >= 4.0 }
func lo(x float64) bool { return x <= 2.5 }

// archetypeRules is evaluated top to bottom; the first match wins. The order
// is a contract: several rule conditions overlap, and earlier rules shadow
// later ones on purpose.
var archetypeRules = []archetypeRule{
	{func(s DimensionScores) bool { return hi(s.O) && hi(s.E) }, ArchetypeVisionaryHost},
	{func(s DimensionScores) bool { return hi(s.C) && !hi(s.O) && !hi(s.E) }, ArchetypeSteadyPlanner},
	{func(s DimensionScores) bool { return hi(s.N) && lo(s.E) }, ArchetypeRiskGuardedNestBuilder},
	{func(s DimensionScores) bool { return hi(s.A) && hi(s.C) }, ArchetypeFamilyFirstOptimizer},
	{func(s DimensionScores) bool { return hi(s.O) && s.N < 3.3 }, ArchetypeDesignForwardAdventurer},
}

func classifyArchetype(scores DimensionScores) Archetype {
	for _, rule := range archetypeRules {
		if rule.match(scores) {
			return rule.label
		}
	}
	return ArchetypeBalancedExplorer
}
