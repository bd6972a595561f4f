package catalog

// Difficulty represents a content difficulty tier.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Rank returns the tier's position for ordering (beginner first).
// Unknown values rank as beginner.
func (d Difficulty) Rank() int {
	switch d {
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return 0
	}
}

// StepUp returns the next harder tier, saturating at advanced.
func (d Difficulty) StepUp() Difficulty {
	switch d {
	case Beginner:
		return Intermediate
	default:
		return Advanced
	}
}

// StepDown returns the next easier tier, saturating at beginner.
func (d Difficulty) StepDown() Difficulty {
	switch d {
	case Advanced:
		return Intermediate
	default:
		return Beginner
	}
}
