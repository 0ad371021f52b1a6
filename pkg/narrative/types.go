package narrative

import (
	"github.com/andrejsstepanovs/storyshape/pkg/utils"
)

type StructureType string

const (
	HarmonCircle      StructureType = "harmon_circle"
	VoglerHeroJourney StructureType = "vogler_hero_journey"
)

type Act string

const (
	ActBeginning Act = "Beginning"
	ActMiddle    Act = "Middle"
	ActEnd       Act = "End"
)

type World string

const (
	WorldNone     World = ""
	WorldOrdinary World = "Ordinary World"
	WorldSpecial  World = "Special World"
)

// Class returns the css class prefix used by the world indicator.
func (w World) Class() string {
	switch w {
	case WorldOrdinary:
		return "ordinary"
	case WorldSpecial:
		return "special"
	}
	return ""
}

// Structure is implemented by every narrative template.
type Structure interface {
	Type() StructureType
	DisplayName() string
	Catalog() Catalog
	Analyze(text string) AnalysisResult
	Visualize(analysis Analysis) string
	Prompt() string
}

type Element struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty" validate:"dive,required"`
	Importance  int      `json:"importance,omitempty" validate:"omitempty,min=1,max=10"`
	World       World    `json:"world,omitempty" validate:"omitempty,oneof='Ordinary World' 'Special World'"`
}

type Stage struct {
	Number      int       `json:"number" validate:"min=1"`
	Name        string    `json:"name" validate:"required"`
	LocalName   string    `json:"local_name,omitempty"`
	Description string    `json:"description" validate:"required"`
	Act         Act       `json:"act" validate:"oneof=Beginning Middle End"`
	World       World     `json:"world,omitempty" validate:"omitempty,oneof='Ordinary World' 'Special World'"`
	Color       string    `json:"color" validate:"required,hexcolor"`
	Angle       *float64  `json:"angle,omitempty" validate:"omitempty,min=0,max=360"`
	Elements    []Element `json:"elements" validate:"required,min=1,dive"`
}

type ElementCheck struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

type StageAnalysis struct {
	Number      int            `json:"number"`
	Name        string         `json:"name"`
	Present     bool           `json:"presence"`
	Strength    string         `json:"strength,omitempty"`
	Elements    []ElementCheck `json:"elements_present"`
	CriteriaMet []string       `json:"criteria_met"`
	Score       float64        `json:"score"`
	Strengths   []string       `json:"strengths"`
	Weaknesses  []string       `json:"weaknesses"`
	Suggestions []string       `json:"suggestions"`
}

type Transitions struct {
	Clarity    float64 `json:"clarity"`
	Impact     float64 `json:"impact"`
	Smoothness float64 `json:"smoothness"`
}

type WorldAnalysis struct {
	World       World       `json:"world"`
	Strength    float64     `json:"strength"`
	Share       float64     `json:"balance"`
	Transitions Transitions `json:"transitions"`
}

type Overall struct {
	Completeness   float64  `json:"completeness"`
	Complete       bool     `json:"circle_completion"`
	Balance        float64  `json:"balance"`
	BalanceVerdict string   `json:"balance_verdict,omitempty"`
	Flow           float64  `json:"flow"`
	Suggestions    []string `json:"suggestions"`
}

// Analysis holds per-stage judgments in catalog order plus the aggregate verdict.
type Analysis struct {
	Stages  []StageAnalysis `json:"steps"`
	Worlds  []WorldAnalysis `json:"worlds,omitempty"`
	Overall Overall         `json:"overall_evaluation"`
}

// Stage returns the analysis recorded for the given stage ordinal.
func (a Analysis) Stage(number int) (StageAnalysis, bool) {
	for _, s := range a.Stages {
		if s.Number == number {
			return s, true
		}
	}
	return StageAnalysis{}, false
}

// Steps keys the stage analyses by display name.
func (a Analysis) Steps() map[string]StageAnalysis {
	steps := make(map[string]StageAnalysis, len(a.Stages))
	for _, s := range a.Stages {
		steps[s.Name] = s
	}
	return steps
}

type AnalysisMetadata struct {
	RunID          string        `json:"run_id"`
	ModelName      string        `json:"model_name"`
	ModelVersion   string        `json:"model_version"`
	Confidence     float64       `json:"confidence"`
	ProcessingTime float64       `json:"processing_time"`
	StructureType  StructureType `json:"structure_type"`
	DisplayName    string        `json:"display_name"`
}

type AnalysisResult struct {
	Structure     Analysis         `json:"structure"`
	Summary       string           `json:"summary"`
	Visualization string           `json:"visualization"`
	Metadata      AnalysisMetadata `json:"metadata"`
}

// ToJson renders the result as a single line of JSON.
func (r *AnalysisResult) ToJson() (string, error) {
	return utils.ToJsonStr(r)
}
