package recommend

import (
	"gusto/internal/domain/entity"
)

// Rule is one independent scoring criterion. Contribution must not depend on
// the outcome of any other rule.
type Rule struct {
	Name         string
	Contribution func(p *entity.Profile, r *entity.Restaurant) int
}

// Contribution is the score a single rule produced for a pair.
type Contribution struct {
	Rule  string `json:"rule"`
	Score int    `json:"score"`
}

// DefaultRules is the compatibility table, evaluated in order and summed.
var DefaultRules = []Rule{
	matchRule("category", 2, func(p *entity.Profile, r *entity.Restaurant) bool {
		return intersects(p.PreferredCategories, r.Categories)
	}),
	matchRule("ambiance", 2, func(p *entity.Profile, r *entity.Restaurant) bool {
		return intersects(p.PreferredAmbiance, r.Ambiance)
	}),
	matchRule("zone", 1, func(p *entity.Profile, r *entity.Restaurant) bool {
		return r.Zone != "" && intersects(p.PreferredZones, []string{r.Zone})
	}),
	needRule("pet", 1, func(p *entity.Profile) bool { return p.HasPet },
		func(r *entity.Restaurant) bool { return r.Amenities.PetFriendly }),
	needRule("kids", 1, func(p *entity.Profile) bool { return p.HasChildren },
		func(r *entity.Restaurant) bool { return r.Amenities.KidsGames }),
	needRule("accessibility", 2, func(p *entity.Profile) bool { return p.NeedsAccessibility },
		func(r *entity.Restaurant) bool { return r.Amenities.Accessible }),
	matchRule("promotions", 1, func(p *entity.Profile, r *entity.Restaurant) bool {
		return p.WantsPromotions && r.Amenities.Promotions
	}),
	{
		Name: "capacity",
		Contribution: func(p *entity.Profile, r *entity.Restaurant) int {
			if r.Capacity >= p.GroupSize {
				return 0
			}

			return -3
		},
	},
}

// matchRule awards weight when pred holds and nothing otherwise.
func matchRule(name string, weight int, pred func(*entity.Profile, *entity.Restaurant) bool) Rule {
	return Rule{
		Name: name,
		Contribution: func(p *entity.Profile, r *entity.Restaurant) int {
			if pred(p, r) {
				return weight
			}

			return 0
		},
	}
}

// needRule awards weight when the user needs a facility the restaurant offers,
// subtracts it when the facility is missing, and is neutral when not needed.
func needRule(name string, weight int, needs func(*entity.Profile) bool, offers func(*entity.Restaurant) bool) Rule {
	return Rule{
		Name: name,
		Contribution: func(p *entity.Profile, r *entity.Restaurant) int {
			switch {
			case !needs(p):
				return 0
			case offers(r):
				return weight
			default:
				return -weight
			}
		},
	}
}

// Scorer computes compatibility scores from an ordered rule list.
type Scorer struct {
	rules []Rule
}

// NewScorer builds a scorer over rules, or DefaultRules when none are given.
func NewScorer(rules ...Rule) *Scorer {
	if len(rules) == 0 {
		rules = DefaultRules
	}

	return &Scorer{rules: rules}
}

// Score sums every rule's contribution for the pair.
func (s *Scorer) Score(p *entity.Profile, r *entity.Restaurant) int {
	total := 0
	for _, rule := range s.rules {
		total += rule.Contribution(p, r)
	}

	return total
}

// Explain lists each rule's contribution in evaluation order.
func (s *Scorer) Explain(p *entity.Profile, r *entity.Restaurant) []Contribution {
	contributions := make([]Contribution, 0, len(s.rules))
	for _, rule := range s.rules {
		contributions = append(contributions, Contribution{
			Rule:  rule.Name,
			Score: rule.Contribution(p, r),
		})
	}

	return contributions
}

// ScoreAll scores every candidate for p.
func (s *Scorer) ScoreAll(p *entity.Profile, candidates []*entity.Restaurant) []Scored {
	scored := make([]Scored, 0, len(candidates))
	for _, r := range candidates {
		scored = append(scored, Scored{Restaurant: r, Score: s.Score(p, r)})
	}

	return scored
}

// Recommend runs the full pipeline for p: budget filter, scoring, ranking.
func (s *Scorer) Recommend(p *entity.Profile, restaurants []*entity.Restaurant) []Scored {
	candidates := FilterCandidates(p.Budget, Constraints{}, restaurants)

	return Rank(s.ScoreAll(p, candidates))
}
