package narrative

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStages checks struct rules on every stage and that stage numbers
// run 1..N without gaps or duplicates.
func ValidateStages(stages []Stage) error {
	if len(stages) == 0 {
		return errors.New("catalog has no stages")
	}
	for i, s := range stages {
		if s.Number != i+1 {
			return fmt.Errorf("stage %q has number %d, expected %d", s.Name, s.Number, i+1)
		}
		if err := validate.Struct(s); err != nil {
			return fmt.Errorf("stage %d %q: %w", s.Number, s.Name, err)
		}
	}
	return nil
}
