package recommend

import (
	"cmp"
	"slices"
	"strings"

	"gusto/internal/domain/entity"
)

const (
	// AcceptanceThreshold is the minimum score a recommendation must reach.
	AcceptanceThreshold = 1
	// MaxResults caps the personalized recommendation list.
	MaxResults = 10
)

// Scored pairs a candidate with its compatibility score.
type Scored struct {
	Restaurant *entity.Restaurant
	Score      int
}

// Rank drops entries below AcceptanceThreshold, orders the rest by score
// descending then price ascending, and keeps at most MaxResults.
func Rank(scored []Scored) []Scored {
	ranked := make([]Scored, 0, len(scored))
	for _, s := range scored {
		if s.Restaurant == nil || s.Score < AcceptanceThreshold {
			continue
		}
		ranked = append(ranked, s)
	}

	slices.SortStableFunc(ranked, func(a, b Scored) int {
		return cmp.Or(
			cmp.Compare(b.Score, a.Score),
			cmp.Compare(a.Restaurant.Price, b.Restaurant.Price),
			strings.Compare(a.Restaurant.Name, b.Restaurant.Name),
		)
	})

	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}

	return ranked
}

// SortByServiceLevel orders advanced-search results by service level
// descending then price ascending. It sorts in place.
func SortByServiceLevel(restaurants []*entity.Restaurant) {
	slices.SortStableFunc(restaurants, func(a, b *entity.Restaurant) int {
		return cmp.Or(
			cmp.Compare(b.ServiceLevel, a.ServiceLevel),
			cmp.Compare(a.Price, b.Price),
			strings.Compare(a.Name, b.Name),
		)
	})
}
