package recommend

import (
	"fmt"
	"testing"

	"gusto/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredRestaurant(name string, price float64, score int) Scored {
	return Scored{Restaurant: &entity.Restaurant{Name: name, Price: price}, Score: score}
}

func TestRank_FiltersSortsAndTies(t *testing.T) {
	t.Parallel()

	ranked := Rank([]Scored{
		scoredRestaurant("zero", 5, 0),
		scoredRestaurant("negative", 5, -4),
		scoredRestaurant("expensive three", 30, 3),
		scoredRestaurant("cheap three", 10, 3),
		scoredRestaurant("five", 40, 5),
		scoredRestaurant("one", 1, 1),
	})

	names := make([]string, 0, len(ranked))
	for _, s := range ranked {
		names = append(names, s.Restaurant.Name)
	}
	assert.Equal(t, []string{"five", "cheap three", "expensive three", "one"}, names)
}

func TestRank_TruncatesToMaxResults(t *testing.T) {
	t.Parallel()

	scored := make([]Scored, 0, 25)
	for i := range 25 {
		scored = append(scored, scoredRestaurant(fmt.Sprintf("r%02d", i), float64(i), 1+i%4))
	}

	ranked := Rank(scored)
	require.Len(t, ranked, MaxResults)

	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		assert.GreaterOrEqual(t, cur.Score, AcceptanceThreshold)
		if prev.Score == cur.Score {
			assert.LessOrEqual(t, prev.Restaurant.Price, cur.Restaurant.Price)
		} else {
			assert.Greater(t, prev.Score, cur.Score)
		}
	}
}

func TestRank_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	ranked := Rank(nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)

	assert.Empty(t, Rank([]Scored{scoredRestaurant("meh", 1, 0)}))
}

func TestSortByServiceLevel(t *testing.T) {
	t.Parallel()

	restaurants := []*entity.Restaurant{
		{Name: "a", ServiceLevel: 3, Price: 10},
		{Name: "b", ServiceLevel: 5, Price: 40},
		{Name: "c", ServiceLevel: 5, Price: 20},
		{Name: "d", ServiceLevel: 1, Price: 5},
	}

	SortByServiceLevel(restaurants)

	names := []string{restaurants[0].Name, restaurants[1].Name, restaurants[2].Name, restaurants[3].Name}
	assert.Equal(t, []string{"c", "b", "a", "d"}, names)
}
