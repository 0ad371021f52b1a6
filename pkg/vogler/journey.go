// Package vogler implements Chris Vogler's twelve stage Hero's Journey.
//
// Stages are split between the Ordinary and the Special World. Each stage
// element carries a keyword list; analysis slices the text into one window
// per stage and checks the window for those keywords.
package vogler

import (
	"fmt"
	"strings"

	"github.com/andrejsstepanovs/storyshape/pkg/narrative"
)

const (
	DisplayName = "Chris Vogler's Hero's Journey"
	Summary     = "Analysis of narrative using Vogler's Hero's Journey"

	// Radius of the stage ring in pixels.
	Radius = 400
)

const css = `
        .vogler-journey {
            width: 800px;
            height: 800px;
            position: relative;
            margin: 50px auto;
        }
        .journey-circle {
            width: 100%;
            height: 100%;
            border-radius: 50%;
            border: 3px solid #333;
            position: absolute;
            background: radial-gradient(circle, #fff, #f5f5f5);
        }
        .stage {
            position: absolute;
            width: 120px;
            text-align: center;
            left: 50%;
            top: 50%;
            font-size: 14px;
            line-height: 1.3;
            transform-origin: 0 0;
            transition: all 0.3s ease;
        }
        .stage-content {
            background: rgba(255, 255, 255, 0.9);
            padding: 10px;
            border-radius: 8px;
            box-shadow: 0 2px 5px rgba(0,0,0,0.1);
            transition: all 0.3s ease;
        }
        .stage-content:hover {
            transform: scale(1.1);
            box-shadow: 0 5px 15px rgba(0,0,0,0.2);
        }
        .stage-number {
            font-weight: bold;
            color: #666;
        }
        .stage-name {
            font-weight: bold;
            margin: 5px 0;
        }
        .stage-description {
            font-size: 12px;
            color: #666;
        }
        .world-indicator {
            width: 10px;
            height: 10px;
            border-radius: 50%;
            display: inline-block;
            margin-right: 5px;
        }
        .ordinary-world {
            background-color: #4CAF50;
        }
        .special-world {
            background-color: #2196F3;
        }
        .connection-line {
            position: absolute;
            height: 2px;
            background: #ddd;
            transform-origin: 0 0;
        }
    `

type Journey struct {
	analyzer narrative.StageAnalyzer
}

var _ narrative.Structure = (*Journey)(nil)

func New() *Journey {
	return &Journey{analyzer: narrative.KeywordMatch{}}
}

func NewWithAnalyzer(analyzer narrative.StageAnalyzer) *Journey {
	return &Journey{analyzer: analyzer}
}

func (j *Journey) Type() narrative.StructureType {
	return narrative.VoglerHeroJourney
}

func (j *Journey) DisplayName() string {
	return DisplayName
}

func (j *Journey) Catalog() narrative.Catalog {
	return stages
}

func (j *Journey) CSS() string {
	return css
}

func (j *Journey) Analyze(text string) narrative.AnalysisResult {
	windows := narrative.Partition(text, stages.Len())
	analyses := narrative.AnalyzeStages(stages, windows, j.analyzer)
	worlds, overall := narrative.EvaluateWorlds(stages, windows, analyses)

	analysis := narrative.Analysis{
		Stages:  analyses,
		Worlds:  worlds,
		Overall: overall,
	}

	return narrative.AnalysisResult{
		Structure:     analysis,
		Summary:       Summary,
		Visualization: j.Visualize(analysis),
		Metadata:      narrative.NewMetadata(j),
	}
}

func (j *Journey) Visualize(analysis narrative.Analysis) string {
	parts := []string{
		"<div class='vogler-journey'>",
		"<div class='journey-circle'>",
	}

	for _, stage := range stages.Stages() {
		x, y := stages.StagePosition(stage.Number, Radius)
		rotation := stages.StageAngle(stage.Number)

		score := 0.0
		if a, ok := analysis.Stage(stage.Number); ok {
			score = a.Score
		}

		parts = append(parts, strings.Join([]string{
			fmt.Sprintf("<div class='stage' style='transform: translate(%spx, %spx) rotate(%sdeg); background-color: %s;'>",
				narrative.Px(x), narrative.Px(y), narrative.Deg(rotation), narrative.ScoreColor(score)),
			"<div class='stage-content'>",
			fmt.Sprintf("<div class='stage-number'>%d</div>", stage.Number),
			fmt.Sprintf("<div class='stage-name'>%s</div>", narrative.Text(stage.Name)),
			fmt.Sprintf("<div class='world-indicator %s-world'></div>", stage.World.Class()),
			fmt.Sprintf("<div class='stage-description'>%s</div>", narrative.Text(stage.Description)),
			"</div>",
			"</div>",
		}, "\n"))
	}

	parts = append(parts,
		"</div>",
		"</div>",
		narrative.StyleBlock(css),
	)

	return strings.Join(parts, "\n")
}

func (j *Journey) Prompt() string {
	parts := []string{
		"Analyze the following narrative structure based on Chris Vogler's Hero's Journey:\n",
	}

	var (
		act   narrative.Act
		world narrative.World
	)
	for _, stage := range stages.Stages() {
		if stage.Act != act {
			act = stage.Act
			parts = append(parts, fmt.Sprintf("\nAct - %s:", act))
		}
		if stage.World != world {
			world = stage.World
			parts = append(parts, fmt.Sprintf("\n%s:", world))
		}

		parts = append(parts,
			fmt.Sprintf("\n%d. %s", stage.Number, stage.Name),
			fmt.Sprintf("   Description: %s", stage.Description),
		)
		for _, e := range stage.Elements {
			parts = append(parts, fmt.Sprintf("   - %s (Importance: %d/10)", e.Name, e.Importance))
		}
	}

	return strings.Join(parts, "\n")
}
