package domain

// ExperienceLevel is the self-reported skill level used for compatibility
// filtering. It is a closed enum: anything outside the three known values is
// treated as missing, never defaulted.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// Rank maps levels onto the 1..3 scale used by the adjacency rule.
// Unknown levels rank 0 and never pass CompatibleWith.
func (l ExperienceLevel) Rank() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 0
	}
}

func (l ExperienceLevel) Valid() bool {
	return l.Rank() != 0
}

// CompatibleWith reports whether two levels are within one step of each
// other. This permits beginner↔intermediate and intermediate↔advanced but
// never beginner↔advanced. Invalid levels are compatible with nothing.
func (l ExperienceLevel) CompatibleWith(other ExperienceLevel) bool {
	if !l.Valid() || !other.Valid() {
		return false
	}
	diff := l.Rank() - other.Rank()
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}
