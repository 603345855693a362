// Package rating aggregates user ratings of a restaurant.
package rating

import (
	"math"

	"gusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ValidScore reports whether score is an accepted rating value.
func ValidScore(score int) bool {
	return score >= entity.MinRatingScore && score <= entity.MaxRatingScore
}

// RoundAverage rounds avg to two decimal places.
func RoundAverage(avg float64) float64 {
	return math.Round(avg*100) / 100
}

// NewSummary builds a summary from a precomputed mean and count. The mean is
// ignored when count is zero so an unrated restaurant reports no average.
func NewSummary(restaurantID uuid.UUID, avg float64, count int64) *entity.RatingSummary {
	summary := &entity.RatingSummary{
		RestaurantID: restaurantID,
		Count:        count,
	}
	if count > 0 {
		rounded := RoundAverage(avg)
		summary.Average = &rounded
	}

	return summary
}

// Summarize aggregates the given ratings of one restaurant.
func Summarize(restaurantID uuid.UUID, ratings []entity.Rating) *entity.RatingSummary {
	if len(ratings) == 0 {
		return NewSummary(restaurantID, 0, 0)
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}

	return NewSummary(restaurantID, float64(sum)/float64(len(ratings)), int64(len(ratings)))
}
