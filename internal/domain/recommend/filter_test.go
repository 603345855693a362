package recommend

import (
	"testing"

	"gusto/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFilterCandidates(t *testing.T) {
	t.Parallel()

	cheapItalian := &entity.Restaurant{
		Name:         "cheap italian",
		Price:        12,
		ServiceLevel: 4,
		Categories:   []string{"Italian", "Pizza"},
		Zone:         "Centro",
		Amenities:    entity.Amenities{PetFriendly: true, Accessible: true},
	}
	priceyItalian := &entity.Restaurant{Name: "pricey italian", Price: 80, ServiceLevel: 5, Categories: []string{"Italian"}}
	budgetSushi := &entity.Restaurant{
		Name:         "budget sushi",
		Price:        20,
		ServiceLevel: 2,
		Categories:   []string{"Sushi"},
		Zone:         "Norte",
		Amenities:    entity.Amenities{KidsGames: true, Promotions: true},
	}
	all := []*entity.Restaurant{cheapItalian, priceyItalian, budgetSushi, nil}

	tests := []struct {
		name        string
		budget      float64
		constraints Constraints
		expected    []*entity.Restaurant
	}{
		{name: "budget only", budget: 20, expected: []*entity.Restaurant{cheapItalian, budgetSushi}},
		{name: "price equal to budget kept", budget: 12, expected: []*entity.Restaurant{cheapItalian}},
		{name: "zone", budget: 100, constraints: Constraints{Zone: "norte"}, expected: []*entity.Restaurant{budgetSushi}},
		{name: "any category", budget: 100, constraints: Constraints{Categories: []string{"Pizza", "Sushi"}}, expected: []*entity.Restaurant{cheapItalian, budgetSushi}},
		{name: "amenities are and-ed", budget: 100, constraints: Constraints{PetFriendly: true, Accessible: true}, expected: []*entity.Restaurant{cheapItalian}},
		{name: "kids and promotions", budget: 100, constraints: Constraints{KidsGames: true, Promotions: true}, expected: []*entity.Restaurant{budgetSushi}},
		{name: "min service level", budget: 100, constraints: Constraints{MinServiceLevel: 4}, expected: []*entity.Restaurant{cheapItalian, priceyItalian}},
		{name: "nothing matches", budget: 5, expected: []*entity.Restaurant{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FilterCandidates(tt.budget, tt.constraints, all)
			assert.Equal(t, tt.expected, got)
		})
	}
}
