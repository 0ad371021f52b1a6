package pkg

import (
	"fmt"
	"strings"

	"github.com/andrejsstepanovs/storyshape/pkg/narrative"
	"github.com/andrejsstepanovs/storyshape/pkg/utils"
	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	goodColor   = color.New(color.FgGreen)
	midColor    = color.New(color.FgYellow)
	badColor    = color.New(color.FgRed)
)

func scoreColor(score float64) *color.Color {
	switch {
	case score >= 0.75:
		return goodColor
	case score > 0:
		return midColor
	}
	return badColor
}

// textReport renders a result for terminals.
func textReport(result narrative.AnalysisResult, windows narrative.Windows) string {
	var b strings.Builder
	analysis := result.Structure

	b.WriteString(headerColor.Sprintf("%s\n", result.Metadata.DisplayName))
	b.WriteString(result.Summary + "\n\n")

	for _, s := range analysis.Stages {
		b.WriteString(fmt.Sprintf("%2d. %-30s %s  words=%d\n",
			s.Number, s.Name,
			scoreColor(s.Score).Sprintf("%.2f", s.Score),
			utils.WordCount(windows.Window(s.Number)),
		))
		for _, note := range s.Strengths {
			b.WriteString(goodColor.Sprintf("      + %s\n", note))
		}
		for _, note := range s.Weaknesses {
			b.WriteString(badColor.Sprintf("      - %s\n", note))
		}
	}

	for _, w := range analysis.Worlds {
		b.WriteString(fmt.Sprintf("\n%s: strength=%.3f share=%.2f", w.World, w.Strength, w.Share))
	}
	if len(analysis.Worlds) > 0 {
		b.WriteString("\n")
	}

	o := analysis.Overall
	b.WriteString(fmt.Sprintf("\nCompleteness: %s\n", scoreColor(o.Completeness).Sprintf("%.2f", o.Completeness)))
	b.WriteString(fmt.Sprintf("Balance: %.2f (%s)\n", o.Balance, o.BalanceVerdict))
	b.WriteString(fmt.Sprintf("Flow: %.2f\n", o.Flow))
	for _, s := range o.Suggestions {
		b.WriteString(midColor.Sprintf("* %s\n", s))
	}

	return b.String()
}

func structureList(list []narrative.Structure) string {
	var b strings.Builder
	for _, s := range list {
		c := s.Catalog()
		worlds := ""
		if c.HasWorlds() {
			worlds = ", ordinary/special worlds"
		}
		b.WriteString(fmt.Sprintf("%s  %s (%d stages%s)\n", headerColor.Sprint(s.Type()), s.DisplayName(), c.Len(), worlds))
	}
	return b.String()
}
