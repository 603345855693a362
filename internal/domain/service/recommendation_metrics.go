package service

import "time"

// Recommendation modes reported to RecommendationMetrics.
const (
	ModePersonalized = "personalized"
	ModeAdvanced     = "advanced"
)

// RecommendationMetrics records the cost and outcome of recommendation requests.
type RecommendationMetrics interface {
	ObserveRecommendation(mode string, candidates, results int, elapsed time.Duration)
}
