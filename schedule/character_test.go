package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrainee() *Character {
	released := false
	return &Character{
		ID:   "oguri",
		Name: "Oguri Cap",
		Aptitudes: Aptitudes{
			CategoryDistance: {Short: "E", Mile: "A", Medium: "A", Long: "B"},
			CategorySurface:  {Turf: "A", Dirt: "B"},
			CategoryStrategy: {"Front": "G", "Pace": "A", "Late": "?"},
		},
		Objectives: []Objective{
			{Objective: "Place 1st in the Junior Stakes", Timing: "Junior Year Early July", RaceID: "r1"},
			{Objective: "Win the unknown one"},
			{Objective: "Place 3rd or better in the Senior Sho", RaceID: "r3"},
		},
		Released: &released,
		BaseStats: map[string]Stats{
			"fiveStar": {Speed: 100, Stamina: 90, Power: 110, Guts: 80, Wit: 95},
		},
	}
}

func TestHasAptitude(t *testing.T) {
	c := sampleTrainee()

	assert.True(t, HasAptitude(c, CategoryDistance, Mile, RatingC))
	assert.True(t, HasAptitude(c, CategoryDistance, Long, RatingB))
	assert.False(t, HasAptitude(c, CategoryDistance, Short, RatingC))
	assert.False(t, HasAptitude(c, CategoryStrategy, "Late", RatingG))
	assert.False(t, HasAptitude(c, CategoryStrategy, "End", RatingG))
	assert.False(t, HasAptitude(&Character{}, CategoryDistance, Mile, RatingG))
}

func TestBestAptitude(t *testing.T) {
	c := sampleTrainee()

	best, ok := BestAptitude(c, CategoryDistance)
	require.True(t, ok)
	assert.Equal(t, Aptitude{Type: Medium, Rating: RatingA}, best)

	best, ok = BestAptitude(c, CategoryStrategy)
	require.True(t, ok)
	assert.Equal(t, Aptitude{Type: "Pace", Rating: RatingA}, best)

	_, ok = BestAptitude(&Character{}, CategorySurface)
	assert.False(t, ok)

	assert.Equal(t, []string{Medium, Mile}, RatedDistances(c, RatingA))
}

func TestRecommendedRaces(t *testing.T) {
	c := sampleTrainee()
	races := []Race{
		{ID: "mile", Distance: Mile, Surface: Turf},
		{ID: "short", Distance: Short, Surface: Turf},
		{ID: "dirt", Distance: Long, Surface: Dirt},
	}

	assert.Equal(t, []string{"mile", "dirt"}, raceIDs(RecommendedRaces(c, races, RatingB)))
	assert.Equal(t, []string{"mile"}, raceIDs(RecommendedRaces(c, races, RatingA)))
	assert.Len(t, RecommendedRaces(&Character{}, races, RatingS), 3)
}

func TestObjectiveHelpers(t *testing.T) {
	c := sampleTrainee()
	races := exampleCatalog()

	objs := ObjectiveRaces(c, races)
	require.Len(t, objs, 2)
	assert.Equal(t, "r1", objs[0].ID)
	assert.Equal(t, "Junior Year Early July", objs[0].ObjectiveTiming)
	assert.Equal(t, "r3", objs[1].ID)

	p := CareerProgress(c, []int{0, 0, 2, 9})
	assert.Equal(t, Progress{Total: 3, Completed: 2, Percentage: 67, Remaining: 1}, p)
	assert.Equal(t, Progress{}, CareerProgress(&Character{}, nil))

	next, ok := FirstIncomplete(c, []int{0}, races)
	require.True(t, ok)
	assert.Equal(t, 1, next.Index)
	assert.Nil(t, next.Race)

	next, ok = FirstIncomplete(c, []int{0, 1}, races)
	require.True(t, ok)
	require.NotNil(t, next.Race)
	assert.Equal(t, "r3", next.Race.ID)

	_, ok = FirstIncomplete(c, []int{0, 1, 2}, races)
	assert.False(t, ok)
}

func TestTotalStatsAndRelease(t *testing.T) {
	c := sampleTrainee()

	total, ok := TotalStats(c, "fiveStar")
	require.True(t, ok)
	assert.Equal(t, 475, total)
	_, ok = TotalStats(c, "threeStar")
	assert.False(t, ok)

	assert.False(t, c.IsReleased())
	assert.True(t, (&Character{}).IsReleased())
}

func TestWithDistanceOverrides(t *testing.T) {
	c := sampleTrainee()

	got := WithDistanceOverrides(c, map[string]string{Short: "a", Long: " ", Mile: ""})

	assert.Equal(t, RatingA, got.Aptitudes[CategoryDistance][Short])
	assert.Equal(t, RatingB, got.Aptitudes[CategoryDistance][Long])
	assert.Equal(t, Rating("E"), c.Aptitudes[CategoryDistance][Short], "original must not change")

	bare := WithDistanceOverrides(&Character{Name: "x"}, map[string]string{Long: "G"})
	assert.Equal(t, RatingG, bare.Aptitudes[CategoryDistance][Long])
	assert.Nil(t, WithDistanceOverrides(nil, nil))
}

func raceIDs(races []Race) []string {
	out := make([]string, len(races))
	for i, r := range races {
		out[i] = r.ID
	}
	return out
}
