package narrative

import (
	"github.com/google/uuid"
)

// No model is invoked during analysis; these describe the model the
// prompts are written for.
const (
	PlaceholderModelName      = "gpt-4"
	PlaceholderModelVersion   = "1.0"
	PlaceholderConfidence     = 0.85
	PlaceholderProcessingTime = 1.0
)

func NewMetadata(s Structure) AnalysisMetadata {
	return AnalysisMetadata{
		RunID:          uuid.NewString(),
		ModelName:      PlaceholderModelName,
		ModelVersion:   PlaceholderModelVersion,
		Confidence:     PlaceholderConfidence,
		ProcessingTime: PlaceholderProcessingTime,
		StructureType:  s.Type(),
		DisplayName:    s.DisplayName(),
	}
}
