package narrative

// strengthUnit is the number of characters that make one unit of world strength.
const strengthUnit = 1000.0

const (
	VerdictWellBalanced = "well_balanced"
	VerdictUneven       = "uneven"
	VerdictLopsided     = "lopsided"

	// placeholder until real sequence analysis exists
	PlaceholderFlow = 0.85
)

// PlaceholderTransitions is reported for every world.
var PlaceholderTransitions = Transitions{Clarity: 0.8, Impact: 0.7, Smoothness: 0.9}

// Completeness is the mean stage score, 0 for no stages.
func Completeness(stages []StageAnalysis) float64 {
	if len(stages) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range stages {
		total += s.Score
	}
	return total / float64(len(stages))
}

// Balance compares two world strengths as weaker/stronger. Two empty worlds
// are treated as balanced.
func Balance(a, b float64) float64 {
	low, high := a, b
	if low > high {
		low, high = high, low
	}
	if high == 0 {
		return 1
	}
	return low / high
}

func BalanceVerdict(balance float64) string {
	switch {
	case balance >= 0.75:
		return VerdictWellBalanced
	case balance >= 0.4:
		return VerdictUneven
	}
	return VerdictLopsided
}

// AnalyzeWorld measures how much of the text falls into stages of the world.
func AnalyzeWorld(c Catalog, windows Windows, world World) WorldAnalysis {
	stages := c.ByWorld(world)
	share := 0.0
	if c.Len() > 0 {
		share = float64(len(stages)) / float64(c.Len())
	}
	return WorldAnalysis{
		World:       world,
		Strength:    float64(windows.Length(stages)) / strengthUnit,
		Share:       share,
		Transitions: PlaceholderTransitions,
	}
}

// EvaluateWorlds builds the overall verdict for catalogs that contrast the
// ordinary and special worlds.
func EvaluateWorlds(c Catalog, windows Windows, stages []StageAnalysis) ([]WorldAnalysis, Overall) {
	ordinary := AnalyzeWorld(c, windows, WorldOrdinary)
	special := AnalyzeWorld(c, windows, WorldSpecial)
	balance := Balance(ordinary.Strength, special.Strength)
	completeness := Completeness(stages)

	overall := Overall{
		Completeness:   completeness,
		Complete:       completeness == 1,
		Balance:        balance,
		BalanceVerdict: BalanceVerdict(balance),
		Flow:           PlaceholderFlow,
		Suggestions:    suggestionsFor(stages),
	}
	return []WorldAnalysis{ordinary, special}, overall
}

// EvaluateFixed is the constant verdict paired with FixedJudgment.
func EvaluateFixed(stages []StageAnalysis) Overall {
	return Overall{
		Completeness:   Completeness(stages),
		Complete:       true,
		Balance:        1,
		BalanceVerdict: VerdictWellBalanced,
		Flow:           PlaceholderFlow,
		Suggestions:    []string{},
	}
}

func suggestionsFor(stages []StageAnalysis) []string {
	out := make([]string, 0)
	for _, s := range stages {
		if s.Score == 0 {
			out = append(out, "Develop the "+s.Name+" stage")
		}
	}
	return out
}
