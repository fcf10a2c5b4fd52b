package mds

import "fmt"

// Quality is Kruskal's verbal rating of a stress value.
type Quality int

const (
	// Perfect is stress exactly 0.
	Perfect Quality = iota
	// Excellent is stress in (0, 0.025].
	Excellent
	// Good is stress in (0.025, 0.05].
	Good
	// Fair is stress in (0.05, 0.10].
	Fair
	// Poor is stress above 0.10 (or NaN).
	Poor
)

// Stress boundaries of the quality classes, inclusive.
const (
	ExcellentStress = 0.025
	GoodStress      = 0.05
	FairStress      = 0.10
)

// Classify maps a stress value to its Quality.
func Classify(stress float64) Quality {
	switch {
	case stress == 0:
		return Perfect
	case stress <= ExcellentStress:
		return Excellent
	case stress <= GoodStress:
		return Good
	case stress <= FairStress:
		return Fair
	default:
		return Poor
	}
}

// String returns the lower-case class name.
func (q Quality) String() string {
	switch q {
	case Perfect:
		return "perfect"
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Fair:
		return "fair"
	case Poor:
		return "poor"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}
