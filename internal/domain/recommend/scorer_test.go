package recommend

import (
	"testing"

	"gusto/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioUser() *entity.Profile {
	return &entity.Profile{
		Budget:              20,
		HasPet:              true,
		WantsPromotions:     true,
		GroupSize:           2,
		PreferredCategories: []string{"Italian"},
	}
}

func contributionOf(t *testing.T, contributions []Contribution, rule string) int {
	t.Helper()

	for _, c := range contributions {
		if c.Rule == rule {
			return c.Score
		}
	}
	t.Fatalf("rule %q not evaluated", rule)

	return 0
}

func TestScorer_Score_ItalianPetFriendlyScenario(t *testing.T) {
	scorer := NewScorer()
	restaurant := &entity.Restaurant{
		Name:       "Trattoria",
		Price:      15,
		Capacity:   4,
		Categories: []string{"Italian"},
		Amenities:  entity.Amenities{PetFriendly: true, Promotions: true},
	}

	assert.Equal(t, 4, scorer.Score(scenarioUser(), restaurant))

	explained := scorer.Explain(scenarioUser(), restaurant)
	require.Len(t, explained, 8)
	assert.Equal(t, 2, contributionOf(t, explained, "category"))
	assert.Equal(t, 0, contributionOf(t, explained, "ambiance"))
	assert.Equal(t, 0, contributionOf(t, explained, "zone"))
	assert.Equal(t, 1, contributionOf(t, explained, "pet"))
	assert.Equal(t, 0, contributionOf(t, explained, "kids"))
	assert.Equal(t, 0, contributionOf(t, explained, "accessibility"))
	assert.Equal(t, 1, contributionOf(t, explained, "promotions"))
	assert.Equal(t, 0, contributionOf(t, explained, "capacity"))

	ranked := scorer.Recommend(scenarioUser(), []*entity.Restaurant{restaurant})
	require.Len(t, ranked, 1)
	assert.Equal(t, 4, ranked[0].Score)
}

func TestScorer_Score_PenaltiesExcludeRestaurant(t *testing.T) {
	scorer := NewScorer()
	restaurant := &entity.Restaurant{
		Name:     "Tiny Bar",
		Price:    15,
		Capacity: 1,
	}

	explained := scorer.Explain(scenarioUser(), restaurant)
	assert.Equal(t, -1, contributionOf(t, explained, "pet"))
	assert.Equal(t, -3, contributionOf(t, explained, "capacity"))
	assert.LessOrEqual(t, scorer.Score(scenarioUser(), restaurant), 0)

	assert.Empty(t, scorer.Recommend(scenarioUser(), []*entity.Restaurant{restaurant}))
}

func TestScorer_Recommend_OverBudgetNeverScored(t *testing.T) {
	scored := 0
	counting := Rule{
		Name: "counting",
		Contribution: func(*entity.Profile, *entity.Restaurant) int {
			scored++

			return 5
		},
	}
	scorer := NewScorer(counting)

	ranked := scorer.Recommend(scenarioUser(), []*entity.Restaurant{{Name: "Steakhouse", Price: 25, Capacity: 10}})
	assert.Empty(t, ranked)
	assert.Zero(t, scored)
}

func TestNeedRule_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		profile  entity.Profile
		amenity  entity.Amenities
		rule     string
		expected int
	}{
		{name: "pet and pet friendly", profile: entity.Profile{HasPet: true}, amenity: entity.Amenities{PetFriendly: true}, rule: "pet", expected: 1},
		{name: "pet without pet friendly", profile: entity.Profile{HasPet: true}, rule: "pet", expected: -1},
		{name: "no pet and not pet friendly", rule: "pet", expected: 0},
		{name: "no pet but pet friendly", amenity: entity.Amenities{PetFriendly: true}, rule: "pet", expected: 0},
		{name: "children and games", profile: entity.Profile{HasChildren: true}, amenity: entity.Amenities{KidsGames: true}, rule: "kids", expected: 1},
		{name: "children without games", profile: entity.Profile{HasChildren: true}, rule: "kids", expected: -1},
		{name: "no children", rule: "kids", expected: 0},
		{name: "needs access and accessible", profile: entity.Profile{NeedsAccessibility: true}, amenity: entity.Amenities{Accessible: true}, rule: "accessibility", expected: 2},
		{name: "needs access not accessible", profile: entity.Profile{NeedsAccessibility: true}, rule: "accessibility", expected: -2},
		{name: "no access need", rule: "accessibility", expected: 0},
		{name: "promotions wanted and offered", profile: entity.Profile{WantsPromotions: true}, amenity: entity.Amenities{Promotions: true}, rule: "promotions", expected: 1},
		{name: "promotions wanted not offered", profile: entity.Profile{WantsPromotions: true}, rule: "promotions", expected: 0},
	}

	scorer := NewScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			restaurant := &entity.Restaurant{Capacity: 10, Amenities: tt.amenity}
			got := contributionOf(t, scorer.Explain(&tt.profile, restaurant), tt.rule)
			if got != tt.expected {
				t.Fatalf("%s contribution = %d, want %d", tt.rule, got, tt.expected)
			}
		})
	}
}

func TestScorer_CapacityIsZeroOrMinusThree(t *testing.T) {
	t.Parallel()

	scorer := NewScorer()
	for groupSize := 1; groupSize <= 8; groupSize++ {
		for capacity := 0; capacity <= 8; capacity++ {
			got := contributionOf(t, scorer.Explain(&entity.Profile{GroupSize: groupSize}, &entity.Restaurant{Capacity: capacity}), "capacity")
			if capacity >= groupSize {
				assert.Equal(t, 0, got)
			} else {
				assert.Equal(t, -3, got)
			}
		}
	}
}

func TestScorer_NoPreferencesNotPenalized(t *testing.T) {
	t.Parallel()

	scorer := NewScorer()
	restaurant := &entity.Restaurant{
		Capacity:   30,
		Categories: []string{"Sushi"},
		Ambiance:   []string{"Quiet"},
		Zone:       "Centro",
	}

	assert.Equal(t, 0, scorer.Score(&entity.Profile{GroupSize: 2}, restaurant))
}

func TestScorer_MatchesIgnoreCaseAndZoneNeedsValue(t *testing.T) {
	t.Parallel()

	scorer := NewScorer()
	profile := &entity.Profile{
		GroupSize:           1,
		PreferredCategories: []string{"mexican"},
		PreferredAmbiance:   []string{"Family"},
		PreferredZones:      []string{"Norte"},
	}

	full := &entity.Restaurant{Capacity: 5, Categories: []string{"Mexican"}, Ambiance: []string{"family"}, Zone: "norte"}
	assert.Equal(t, 5, scorer.Score(profile, full))

	noZone := &entity.Restaurant{Capacity: 5}
	assert.Equal(t, 0, contributionOf(t, scorer.Explain(profile, noZone), "zone"))
}

func TestScorer_ScoreWithinBounds(t *testing.T) {
	t.Parallel()

	scorer := NewScorer()
	bools := []bool{false, true}

	best := &entity.Restaurant{
		Capacity:   10,
		Categories: []string{"A"},
		Ambiance:   []string{"B"},
		Zone:       "C",
		Amenities:  entity.Amenities{PetFriendly: true, KidsGames: true, Accessible: true, Promotions: true},
	}
	worst := &entity.Restaurant{Capacity: 0}

	for _, pet := range bools {
		for _, kids := range bools {
			for _, access := range bools {
				for _, promo := range bools {
					profile := &entity.Profile{
						GroupSize:           4,
						HasPet:              pet,
						HasChildren:         kids,
						NeedsAccessibility:  access,
						WantsPromotions:     promo,
						PreferredCategories: []string{"A"},
						PreferredAmbiance:   []string{"B"},
						PreferredZones:      []string{"C"},
					}
					for _, r := range []*entity.Restaurant{best, worst} {
						score := scorer.Score(profile, r)
						assert.GreaterOrEqual(t, score, -10)
						assert.LessOrEqual(t, score, 10)
						assert.Equal(t, score, scorer.Score(profile, r))
					}
				}
			}
		}
	}

	maxProfile := &entity.Profile{
		GroupSize: 4, HasPet: true, HasChildren: true, NeedsAccessibility: true, WantsPromotions: true,
		PreferredCategories: []string{"A"}, PreferredAmbiance: []string{"B"}, PreferredZones: []string{"C"},
	}
	assert.Equal(t, 10, scorer.Score(maxProfile, best))
	assert.Equal(t, -7, scorer.Score(maxProfile, worst))
}
