package structures

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrejsstepanovs/storyshape/pkg/harmon"
	"github.com/andrejsstepanovs/storyshape/pkg/narrative"
	"github.com/andrejsstepanovs/storyshape/pkg/vogler"
	"github.com/sourcegraph/conc/iter"
)

var ErrUnknownStructure = errors.New("unknown narrative structure")

// GetAvailableStructures returns one instance of every supported structure.
func GetAvailableStructures() []narrative.Structure {
	return []narrative.Structure{
		harmon.New(),
		vogler.New(),
	}
}

// Find looks a structure up by its type tag. Short aliases are accepted.
func Find(name string) (narrative.Structure, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "harmon", "circle", "story-circle":
		key = string(narrative.HarmonCircle)
	case "vogler", "journey", "hero-journey":
		key = string(narrative.VoglerHeroJourney)
	}

	for _, s := range GetAvailableStructures() {
		if string(s.Type()) == key {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStructure, name)
}

// AnalyzeAll runs every given structure over the same text in parallel.
// Results keep the order of the input.
func AnalyzeAll(list []narrative.Structure, text string) []narrative.AnalysisResult {
	return iter.Map(list, func(s *narrative.Structure) narrative.AnalysisResult {
		return (*s).Analyze(text)
	})
}
