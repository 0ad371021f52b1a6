package narrative

import (
	"github.com/invopop/jsonschema"
)

// ResultSchema describes the JSON form of AnalysisResult.
func ResultSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&AnalysisResult{})
	s.Title = "Narrative structure analysis"
	return s
}
