package domain

// DefaultKeyPrefix namespaces every key the service writes to Redis/Valkey.
const DefaultKeyPrefix = "jobmatch:"

// Scoring constants shared by the ranker and its callers.
const (
	// MaxScore is the upper bound of a match score.
	MaxScore = 100.0
	// MinScore is the lower bound of a match score.
	MinScore = 0.0
	// ExperienceBonus is added when the seeker meets the minimum experience.
	ExperienceBonus = 12.0
	// ExperiencePenaltyPerYear is subtracted for every missing year of experience.
	ExperiencePenaltyPerYear = 6.0
)
