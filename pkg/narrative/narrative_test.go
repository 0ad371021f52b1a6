package narrative

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStage(number int, act Act, world World, keywords ...string) Stage {
	return Stage{
		Number:      number,
		Name:        "Stage " + string(rune('A'+number-1)),
		Description: "test stage",
		Act:         act,
		World:       world,
		Color:       "#abcdef",
		Elements: []Element{
			{Name: "first", Keywords: keywords, Importance: 5},
			{Name: "second", Keywords: []string{"zzz"}, Importance: 5},
		},
	}
}

func testCatalog() Catalog {
	return MustCatalog(
		testStage(1, ActBeginning, WorldOrdinary, "home"),
		testStage(2, ActMiddle, WorldSpecial, "dragon"),
		testStage(3, ActMiddle, WorldSpecial, "sword"),
		testStage(4, ActEnd, WorldOrdinary, "return"),
	)
}

// #region catalog

func TestMustCatalogRejectsGaps(t *testing.T) {
	assert.Panics(t, func() {
		MustCatalog(testStage(1, ActBeginning, WorldNone), testStage(3, ActEnd, WorldNone))
	})
}

func TestMustCatalogRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		MustCatalog(testStage(1, ActBeginning, WorldNone), testStage(1, ActEnd, WorldNone))
	})
}

func TestValidateStagesFieldRules(t *testing.T) {
	bad := testStage(1, ActBeginning, WorldNone)
	bad.Color = "red"
	assert.Error(t, ValidateStages([]Stage{bad}))

	bad = testStage(1, "Prologue", WorldNone)
	assert.Error(t, ValidateStages([]Stage{bad}))

	bad = testStage(1, ActBeginning, WorldNone)
	bad.Elements[0].Importance = 11
	assert.Error(t, ValidateStages([]Stage{bad}))

	bad = testStage(1, ActBeginning, WorldNone, "")
	assert.Error(t, ValidateStages([]Stage{bad}))

	bad = testStage(1, ActBeginning, WorldNone)
	bad.Elements = nil
	assert.Error(t, ValidateStages([]Stage{bad}))

	assert.Error(t, ValidateStages(nil))
	assert.NoError(t, ValidateStages([]Stage{testStage(1, ActBeginning, WorldSpecial, "x")}))
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := testCatalog()

	stages := c.Stages()
	stages[0].Name = "changed"
	stages[0].Elements[0].Keywords[0] = "changed"

	assert.Equal(t, "Stage A", c.Stage(1).Name)
	assert.Equal(t, "home", c.Stage(1).Elements[0].Keywords[0])
}

func TestCatalogLookups(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, 4, c.Len())
	assert.Len(t, c.ByAct(ActMiddle), 2)
	assert.Len(t, c.ByWorld(WorldOrdinary), 2)
	assert.True(t, c.HasWorlds())
	assert.Panics(t, func() { c.Stage(0) })
	assert.Panics(t, func() { c.Stage(5) })
}

// #endregion catalog

// #region layout

func TestPositionFirstStageAtTop(t *testing.T) {
	assert.Equal(t, -90.0, AngleFor(1, 8))
	assert.Equal(t, -45.0, AngleFor(2, 8))

	x, y := Position(1, 8, 150)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -150, y, 1e-9)
}

func TestPositionOnCircle(t *testing.T) {
	for _, r := range []float64{1, 150, 400} {
		for n := 1; n <= 12; n++ {
			x, y := Position(n, 12, r)
			assert.InDelta(t, r*r, x*x+y*y, 1e-6)
		}
	}
}

func TestPositionOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Position(0, 8, 10) })
	assert.Panics(t, func() { Position(9, 8, 10) })
}

func TestStoredAngleIsUsedAsIs(t *testing.T) {
	stage := testStage(1, ActBeginning, WorldNone)
	angle := 0.0
	stage.Angle = &angle
	c := MustCatalog(stage, testStage(2, ActEnd, WorldNone))

	assert.Equal(t, 0.0, c.StageAngle(1))
	assert.Equal(t, 90.0, c.StageAngle(2))

	x, y := c.StagePosition(1, 100)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

// #endregion layout

// #region partition

func TestPartitionReconstructsText(t *testing.T) {
	texts := []string{"", "a", "abcdefg", strings.Repeat("x", 803), "Зона комфорта и желание", "caf\xe9 normal day", "\xff\xfe\xfd"}
	for _, text := range texts {
		for count := 1; count <= 12; count++ {
			windows := Partition(text, count)
			require.Len(t, windows, count)
			assert.Equal(t, text, strings.Join(windows, ""), "text %q count %d", text, count)
		}
	}
}

func TestPartitionEqualWindows(t *testing.T) {
	windows := Partition(strings.Repeat("a", 800), 8)
	for _, w := range windows {
		assert.Len(t, w, 100)
	}
}

func TestPartitionLastWindowAbsorbsRemainder(t *testing.T) {
	windows := Partition("abcdefghij", 3)
	assert.Equal(t, Windows{"abc", "def", "ghij"}, windows)
}

func TestPartitionShortText(t *testing.T) {
	windows := Partition("abc", 5)
	assert.Equal(t, Windows{"", "", "", "", "abc"}, windows)
	assert.Equal(t, "", windows.Window(0))
	assert.Equal(t, "", windows.Window(6))
}

func TestPartitionKeepsInvalidBytes(t *testing.T) {
	text := "caf\xe9 normal day"
	windows := Partition(text, 4)

	assert.Equal(t, text, strings.Join(windows, ""))
	assert.Equal(t, Windows{"caf", "\xe9 n", "orm", "al day"}, windows)
	assert.Equal(t, 15, windows.Length([]Stage{{Number: 1}, {Number: 2}, {Number: 3}, {Number: 4}}))
}

func TestPartitionKeepsRunesWhole(t *testing.T) {
	windows := Partition("жжжж", 2)
	assert.Equal(t, Windows{"жж", "жж"}, windows)
}

func TestWindowsByKey(t *testing.T) {
	c := testCatalog()
	keyed := Partition("aabbccdd", 4).ByKey(c)
	assert.Equal(t, "aa", keyed["stage_a"])
	assert.Equal(t, "dd", keyed["stage_d"])
	assert.Equal(t, "return_with_the_elixir", StageKey("Return with the Elixir"))
}

// #endregion partition

// #region analyzer

func TestKeywordMatchEmptyWindow(t *testing.T) {
	a := KeywordMatch{}.AnalyzeStage(testStage(1, ActBeginning, WorldNone, "home"), "")

	assert.Equal(t, 0.0, a.Score)
	assert.False(t, a.Present)
	for _, e := range a.Elements {
		assert.False(t, e.Present)
	}
	assert.Len(t, a.Weaknesses, 2)
	assert.Empty(t, a.Strengths)
}

func TestKeywordMatchFirstKeyword(t *testing.T) {
	stage := testStage(1, ActBeginning, WorldNone, "home", "house")
	a := KeywordMatch{}.AnalyzeStage(stage, "She left HOME at dawn")

	assert.True(t, a.Elements[0].Present)
	assert.False(t, a.Elements[1].Present)
	assert.Equal(t, 0.5, a.Score)
	assert.Equal(t, []string{"first is well established"}, a.Strengths)
	assert.Equal(t, []string{"second needs more development"}, a.Weaknesses)
	assert.Equal(t, []string{"first"}, a.CriteriaMet)
}

func TestKeywordMatchNoKeywords(t *testing.T) {
	stage := testStage(1, ActBeginning, WorldNone)
	stage.Elements = []Element{{Name: "status quo"}}
	a := KeywordMatch{}.AnalyzeStage(stage, "status quo")
	assert.Equal(t, 0.0, a.Score)
}

func TestFixedJudgmentIgnoresText(t *testing.T) {
	stage := testStage(2, ActMiddle, WorldNone, "dragon")
	for _, text := range []string{"", "nothing relevant", "dragon"} {
		a := FixedJudgment{}.AnalyzeStage(stage, text)
		assert.True(t, a.Present)
		assert.Equal(t, StrengthMedium, a.Strength)
		assert.Empty(t, a.Suggestions)
		assert.Equal(t, []string{"first", "second"}, a.CriteriaMet)
		assert.Equal(t, 1.0, a.Score)
	}
}

func TestAnalyzeStagesInCatalogOrder(t *testing.T) {
	c := testCatalog()
	stages := AnalyzeStages(c, Partition("home----dragon--", 4), KeywordMatch{})

	require.Len(t, stages, 4)
	for i, s := range stages {
		assert.Equal(t, i+1, s.Number)
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
	assert.Equal(t, 0.5, stages[0].Score)
	assert.Equal(t, 0.0, stages[1].Score)
}

// #endregion analyzer

// #region evaluator

func TestBalance(t *testing.T) {
	assert.Equal(t, 1.0, Balance(0.4, 0.4))
	assert.Equal(t, 0.5, Balance(0.2, 0.4))
	assert.Equal(t, 0.5, Balance(0.4, 0.2))
	assert.Equal(t, 1.0, Balance(0, 0))
	assert.Equal(t, 0.0, Balance(0, 0.3))
	assert.False(t, math.IsNaN(Balance(0, 0)))
}

func TestEvaluateWorldsEqualLengths(t *testing.T) {
	c := testCatalog()
	// ordinary = stages 1 and 4, special = 2 and 3
	windows := Partition(strings.Repeat("a", 400), 4)
	worlds, overall := EvaluateWorlds(c, windows, AnalyzeStages(c, windows, KeywordMatch{}))

	require.Len(t, worlds, 2)
	assert.Equal(t, WorldOrdinary, worlds[0].World)
	assert.InDelta(t, 0.2, worlds[0].Strength, 1e-9)
	assert.InDelta(t, 0.5, worlds[0].Share, 1e-9)
	assert.Equal(t, PlaceholderTransitions, worlds[0].Transitions)
	assert.Equal(t, 1.0, overall.Balance)
	assert.Equal(t, VerdictWellBalanced, overall.BalanceVerdict)
	assert.Equal(t, PlaceholderFlow, overall.Flow)
}

func TestEvaluateWorldsEmptyText(t *testing.T) {
	c := testCatalog()
	windows := Partition("", 4)
	stages := AnalyzeStages(c, windows, KeywordMatch{})
	_, overall := EvaluateWorlds(c, windows, stages)

	assert.Equal(t, 1.0, overall.Balance)
	assert.Equal(t, 0.0, overall.Completeness)
	assert.False(t, overall.Complete)
	assert.Len(t, overall.Suggestions, 4)
}

func TestCompleteness(t *testing.T) {
	assert.Equal(t, 0.0, Completeness(nil))
	assert.Equal(t, 0.5, Completeness([]StageAnalysis{{Score: 1}, {Score: 0}}))
}

func TestEvaluateFixed(t *testing.T) {
	overall := EvaluateFixed([]StageAnalysis{{Score: 1}})
	assert.True(t, overall.Complete)
	assert.Equal(t, VerdictWellBalanced, overall.BalanceVerdict)
}

// #endregion evaluator

// #region render

func TestScoreColor(t *testing.T) {
	assert.Equal(t, "rgb(200, 0, 200)", ScoreColor(0))
	assert.Equal(t, "rgb(200, 127, 200)", ScoreColor(0.5))
	assert.Equal(t, "rgb(200, 255, 200)", ScoreColor(1))
	assert.Equal(t, "rgb(200, 255, 200)", ScoreColor(3))
}

func TestPx(t *testing.T) {
	assert.Equal(t, "0.00", Px(-1e-14))
	assert.Equal(t, "-150.00", Px(-150))
	assert.Equal(t, "106.07", Px(106.066))
}

func TestAnalysisLookups(t *testing.T) {
	a := Analysis{Stages: []StageAnalysis{{Number: 1, Name: "One"}, {Number: 2, Name: "Two"}}}

	s, ok := a.Stage(2)
	assert.True(t, ok)
	assert.Equal(t, "Two", s.Name)
	_, ok = a.Stage(3)
	assert.False(t, ok)
	assert.Contains(t, a.Steps(), "One")
}

func TestResultSchema(t *testing.T) {
	s := ResultSchema()
	require.NotNil(t, s)
	_, ok := s.Properties.Get("visualization")
	assert.True(t, ok)
}

// #endregion render
