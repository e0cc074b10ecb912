package domain

// CandidateRaw is a geo query hit: a nearby user annotated with great-circle
// distance, before any eligibility filtering.
type CandidateRaw struct {
	UserID        string
	DistanceMiles float64
}

// Candidate is a filtered, fully annotated candidate. Computed per request
// and discarded after selection; never persisted.
type Candidate struct {
	UserID          string
	DistanceMiles   float64
	ExperienceLevel ExperienceLevel
}
