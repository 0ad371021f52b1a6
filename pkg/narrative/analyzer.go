package narrative

import (
	"fmt"
	"strings"
)

const StrengthMedium = "medium"

// StageAnalyzer judges one stage against the text window assigned to it.
type StageAnalyzer interface {
	AnalyzeStage(stage Stage, window string) StageAnalysis
}

// FixedJudgment is the placeholder policy: it never reads the window and
// reports every element present with medium strength.
type FixedJudgment struct{}

func (FixedJudgment) AnalyzeStage(stage Stage, _ string) StageAnalysis {
	checks := make([]ElementCheck, 0, len(stage.Elements))
	criteria := make([]string, 0, len(stage.Elements))
	for _, e := range stage.Elements {
		checks = append(checks, ElementCheck{Name: e.Name, Present: true})
		criteria = append(criteria, e.Name)
	}

	return StageAnalysis{
		Number:      stage.Number,
		Name:        stage.Name,
		Present:     true,
		Strength:    StrengthMedium,
		Elements:    checks,
		CriteriaMet: criteria,
		Score:       score(checks),
		Strengths:   []string{},
		Weaknesses:  []string{},
		Suggestions: []string{},
	}
}

// KeywordMatch marks an element present when any of its keywords occurs in
// the window, ignoring case.
type KeywordMatch struct{}

func (KeywordMatch) AnalyzeStage(stage Stage, window string) StageAnalysis {
	content := strings.ToLower(window)

	result := StageAnalysis{
		Number:      stage.Number,
		Name:        stage.Name,
		Elements:    make([]ElementCheck, 0, len(stage.Elements)),
		CriteriaMet: []string{},
		Strengths:   []string{},
		Weaknesses:  []string{},
		Suggestions: []string{},
	}

	for _, e := range stage.Elements {
		present := containsAny(content, e.Keywords)
		result.Elements = append(result.Elements, ElementCheck{Name: e.Name, Present: present})
		if present {
			result.CriteriaMet = append(result.CriteriaMet, e.Name)
			result.Strengths = append(result.Strengths, fmt.Sprintf("%s is well established", e.Name))
		} else {
			result.Weaknesses = append(result.Weaknesses, fmt.Sprintf("%s needs more development", e.Name))
		}
	}

	result.Score = score(result.Elements)
	result.Present = len(result.CriteriaMet) > 0
	result.Strength = strengthFor(result.Score)
	return result
}

func containsAny(content string, keywords []string) bool {
	if content == "" {
		return false
	}
	for _, k := range keywords {
		if k != "" && strings.Contains(content, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// score is the fraction of checks judged present; 0 when there are none.
func score(checks []ElementCheck) float64 {
	if len(checks) == 0 {
		return 0
	}
	present := 0
	for _, c := range checks {
		if c.Present {
			present++
		}
	}
	return float64(present) / float64(len(checks))
}

func strengthFor(score float64) string {
	switch {
	case score >= 0.75:
		return "strong"
	case score >= 0.5:
		return StrengthMedium
	case score > 0:
		return "weak"
	}
	return "absent"
}

// AnalyzeStages runs the analyzer over every stage of the catalog.
func AnalyzeStages(c Catalog, windows Windows, analyzer StageAnalyzer) []StageAnalysis {
	out := make([]StageAnalysis, 0, c.Len())
	for _, s := range c.stages {
		out = append(out, analyzer.AnalyzeStage(cloneStage(s), windows.Window(s.Number)))
	}
	return out
}
