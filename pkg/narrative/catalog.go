package narrative

import (
	"fmt"
)

// Catalog is an ordered, read-only list of stages. Build it once with
// MustCatalog at package init.
type Catalog struct {
	stages []Stage
}

// MustCatalog validates the stages and panics when they break the catalog
// contract: numbers 1..N in order, required fields present.
func MustCatalog(stages ...Stage) Catalog {
	if err := ValidateStages(stages); err != nil {
		panic(fmt.Sprintf("narrative: invalid catalog: %v", err))
	}
	return Catalog{stages: cloneStages(stages)}
}

func (c Catalog) Len() int {
	return len(c.stages)
}

// Stages returns a copy of all stages in catalog order.
func (c Catalog) Stages() []Stage {
	return cloneStages(c.stages)
}

// Stage returns the stage with the given 1-based number.
func (c Catalog) Stage(number int) Stage {
	c.mustContain(number)
	return cloneStage(c.stages[number-1])
}

func (c Catalog) ByAct(act Act) []Stage {
	return c.filter(func(s Stage) bool { return s.Act == act })
}

func (c Catalog) ByWorld(world World) []Stage {
	return c.filter(func(s Stage) bool { return s.World == world })
}

// HasWorlds reports whether any stage carries a world classification.
func (c Catalog) HasWorlds() bool {
	for _, s := range c.stages {
		if s.World != WorldNone {
			return true
		}
	}
	return false
}

func (c Catalog) mustContain(number int) {
	if number < 1 || number > len(c.stages) {
		panic(fmt.Sprintf("narrative: stage %d out of range 1..%d", number, len(c.stages)))
	}
}

func (c Catalog) filter(keep func(Stage) bool) []Stage {
	out := make([]Stage, 0)
	for _, s := range c.stages {
		if keep(s) {
			out = append(out, cloneStage(s))
		}
	}
	return out
}

func cloneStages(stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	for i, s := range stages {
		out[i] = cloneStage(s)
	}
	return out
}

func cloneStage(s Stage) Stage {
	if s.Angle != nil {
		angle := *s.Angle
		s.Angle = &angle
	}
	elements := make([]Element, len(s.Elements))
	for i, e := range s.Elements {
		e.Keywords = append([]string(nil), e.Keywords...)
		elements[i] = e
	}
	s.Elements = elements
	return s
}
