// Package harmon implements Dan Harmon's eight step Story Circle.
package harmon

import (
	"fmt"
	"strings"

	"github.com/andrejsstepanovs/storyshape/pkg/narrative"
)

const (
	DisplayName = "Dan Harmon's Story Circle"
	Summary     = "Analysis of narrative structure using Harmon's Story Circle"

	// Radius of the step ring in pixels.
	Radius = 150
)

const css = `
        .harmon-circle {
            width: 400px;
            height: 400px;
            border-radius: 50%;
            border: 2px solid #333;
            position: relative;
            margin: 50px auto;
        }
        .step {
            position: absolute;
            width: 100px;
            text-align: center;
            transform-origin: center;
            transition: all 0.3s ease;
        }
        .step:hover {
            transform-origin: center;
            transform: scale(1.1);
        }
        .step-number {
            font-weight: bold;
            font-size: 18px;
            margin-bottom: 5px;
        }
        .step-name {
            font-size: 12px;
        }
        .circle-center {
            position: absolute;
            width: 100px;
            height: 100px;
            border-radius: 50%;
            top: 150px;
            left: 150px;
            display: flex;
            align-items: center;
            justify-content: center;
            background: rgba(255,255,255,0.9);
            border: 1px solid #333;
        }
    `

// Circle has no real text heuristic yet, so it judges steps with the
// fixed-judgment policy unless another analyzer is supplied.
type Circle struct {
	analyzer narrative.StageAnalyzer
}

var _ narrative.Structure = (*Circle)(nil)

func New() *Circle {
	return &Circle{analyzer: narrative.FixedJudgment{}}
}

// NewWithAnalyzer swaps the step analyzer.
func NewWithAnalyzer(analyzer narrative.StageAnalyzer) *Circle {
	return &Circle{analyzer: analyzer}
}

func (c *Circle) Type() narrative.StructureType {
	return narrative.HarmonCircle
}

func (c *Circle) DisplayName() string {
	return DisplayName
}

func (c *Circle) Catalog() narrative.Catalog {
	return steps
}

// CSS returns the static style block body.
func (c *Circle) CSS() string {
	return css
}

func (c *Circle) Analyze(text string) narrative.AnalysisResult {
	windows := narrative.Partition(text, steps.Len())
	stages := narrative.AnalyzeStages(steps, windows, c.analyzer)

	analysis := narrative.Analysis{
		Stages:  stages,
		Overall: narrative.EvaluateFixed(stages),
	}

	return narrative.AnalysisResult{
		Structure:     analysis,
		Summary:       Summary,
		Visualization: c.Visualize(analysis),
		Metadata:      narrative.NewMetadata(c),
	}
}

func (c *Circle) Visualize(analysis narrative.Analysis) string {
	parts := []string{
		fmt.Sprintf("<h1>%s</h1>", narrative.Text(DisplayName)),
		"<div class='harmon-circle'>",
	}

	for _, step := range steps.Stages() {
		x, y := steps.StagePosition(step.Number, Radius)
		angle := steps.StageAngle(step.Number)

		style := fmt.Sprintf("transform: rotate(%sdeg) translate(%spx, %spx) rotate(%sdeg); color: %s;",
			narrative.Deg(angle), narrative.Px(x), narrative.Px(y), narrative.Deg(-angle), step.Color)
		if a, ok := analysis.Stage(step.Number); ok {
			style += fmt.Sprintf(" background-color: %s;", narrative.ScoreColor(a.Score))
		}

		parts = append(parts,
			fmt.Sprintf("<div class='step step-%d' style='%s'>", step.Number, style),
			fmt.Sprintf("<div class='step-number'>%d</div>", step.Number),
			fmt.Sprintf("<div class='step-name'>%s</div>", narrative.Text(step.Name)),
			"</div>",
		)
	}

	parts = append(parts,
		"<div class='circle-center'>",
		"Story<br>Circle",
		"</div>",
		"</div>",
		narrative.StyleBlock(css),
	)

	return strings.Join(parts, "\n")
}

func (c *Circle) Prompt() string {
	parts := []string{
		"Analyze the following narrative structure based on Dan Harmon's Story Circle:\n",
	}

	var act narrative.Act
	for _, step := range steps.Stages() {
		if step.Act != act {
			act = step.Act
			parts = append(parts, fmt.Sprintf("\nAct - %s:", act))
		}

		names := make([]string, 0, len(step.Elements))
		for _, e := range step.Elements {
			names = append(names, e.Name)
		}
		name := step.Name
		if step.LocalName != "" {
			name += " / " + step.LocalName
		}
		parts = append(parts,
			fmt.Sprintf("%d. %s (%s)", step.Number, name, step.Description),
			"   Criteria: "+strings.Join(names, ", "),
		)
	}

	return strings.Join(parts, "\n")
}
