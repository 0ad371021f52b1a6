package narrative

import (
	"fmt"
	"math"
)

const circleDegrees = 360.0

// AngleFor spreads count stages evenly around the circle, stage 1 at the top.
func AngleFor(ordinal, count int) float64 {
	if count < 1 || ordinal < 1 || ordinal > count {
		panic(fmt.Sprintf("narrative: stage %d out of range 1..%d", ordinal, count))
	}
	return float64(ordinal-1)*(circleDegrees/float64(count)) - 90
}

// Project turns an angle in degrees into an offset from the circle centre.
func Project(angle, radius float64) (x, y float64) {
	rad := angle * math.Pi / 180
	return radius * math.Cos(rad), radius * math.Sin(rad)
}

// Position returns the offset of the stage with the given ordinal.
func Position(ordinal, count int, radius float64) (x, y float64) {
	return Project(AngleFor(ordinal, count), radius)
}

// StageAngle uses the stage's stored angle when it has one, the derived
// angle otherwise. Stored angles are already rotated.
func (c Catalog) StageAngle(number int) float64 {
	c.mustContain(number)
	if a := c.stages[number-1].Angle; a != nil {
		return *a
	}
	return AngleFor(number, len(c.stages))
}

func (c Catalog) StagePosition(number int, radius float64) (x, y float64) {
	return Project(c.StageAngle(number), radius)
}
