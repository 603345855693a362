// Package recommend implements the restaurant recommendation pipeline:
// a candidate filter, a rule-based compatibility scorer and a ranker.
// Every function here is pure; data is fetched by the caller.
package recommend

import (
	"slices"
	"strings"

	"gusto/internal/domain/entity"
)

// Constraints are the optional hard predicates of an advanced search. The
// zero value constrains nothing. Boolean amenities only constrain when true,
// Categories matches when any one of them is present and a MinServiceLevel of
// zero is unconstrained.
type Constraints struct {
	Zone            string
	Categories      []string
	PetFriendly     bool
	KidsGames       bool
	Accessible      bool
	Promotions      bool
	MinServiceLevel int
}

// Match reports whether r satisfies every constraint that is set.
func (c Constraints) Match(r *entity.Restaurant) bool {
	if c.Zone != "" && !strings.EqualFold(c.Zone, r.Zone) {
		return false
	}
	if len(c.Categories) > 0 && !intersects(c.Categories, r.Categories) {
		return false
	}
	if c.PetFriendly && !r.Amenities.PetFriendly {
		return false
	}
	if c.KidsGames && !r.Amenities.KidsGames {
		return false
	}
	if c.Accessible && !r.Amenities.Accessible {
		return false
	}
	if c.Promotions && !r.Amenities.Promotions {
		return false
	}
	if c.MinServiceLevel > 0 && r.ServiceLevel < c.MinServiceLevel {
		return false
	}

	return true
}

// FilterCandidates keeps the restaurants priced within budget that satisfy c.
// The result preserves input order and is never nil.
func FilterCandidates(budget float64, c Constraints, restaurants []*entity.Restaurant) []*entity.Restaurant {
	candidates := make([]*entity.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r == nil || r.Price > budget {
			continue
		}
		if !c.Match(r) {
			continue
		}
		candidates = append(candidates, r)
	}

	return candidates
}

// intersects reports whether a and b share a value, ignoring case.
func intersects(a, b []string) bool {
	return slices.ContainsFunc(a, func(x string) bool {
		return slices.ContainsFunc(b, func(y string) bool {
			return strings.EqualFold(x, y)
		})
	})
}
