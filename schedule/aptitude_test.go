package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingRank(t *testing.T) {
	assert.Equal(t, 0, RatingS.Rank())
	assert.Equal(t, 2, RatingB.Rank())
	assert.Equal(t, 7, RatingG.Rank())
	assert.Greater(t, Rating("X").Rank(), RatingG.Rank())
	assert.Greater(t, Rating("").Rank(), RatingG.Rank())

	assert.True(t, RatingA.AtLeast(RatingB))
	assert.True(t, RatingB.AtLeast(RatingB))
	assert.False(t, RatingC.AtLeast(RatingB))
	assert.False(t, Rating("b").AtLeast(RatingG))
	assert.Equal(t, RatingB, ParseRating(" b "))
}

func TestFilterEligible(t *testing.T) {
	f := Filter{MinRating: RatingB}
	turfMile := Race{Distance: Mile, Surface: Turf}
	dirtLong := Race{Distance: Long, Surface: Dirt}
	noSurface := Race{Distance: Long}

	tests := []struct {
		name string
		c    *Character
		race Race
		want bool
	}{
		{"nil character", nil, dirtLong, true},
		{"no aptitudes", &Character{}, dirtLong, true},
		{"good distance and surface", &Character{Aptitudes: Aptitudes{
			CategoryDistance: {Mile: "A"}, CategorySurface: {Turf: "S"},
		}}, turfMile, true},
		{"exactly minimum", &Character{Aptitudes: Aptitudes{
			CategoryDistance: {Mile: "B"}, CategorySurface: {Turf: "B"},
		}}, turfMile, true},
		{"weak distance", &Character{Aptitudes: Aptitudes{
			CategoryDistance: {Long: "C"},
		}}, dirtLong, false},
		{"weak surface", &Character{Aptitudes: Aptitudes{
			CategoryDistance: {Long: "A"}, CategorySurface: {Dirt: "E"},
		}}, dirtLong, false},
		{"missing distance entry", &Character{Aptitudes: Aptitudes{
			CategoryDistance: {Mile: "A"},
		}}, dirtLong, true},
		{"blank rating", &Character{Aptitudes: Aptitudes{
			CategoryDistance: {Long: ""},
		}}, dirtLong, true},
		{"unknown letter", &Character{Aptitudes: Aptitudes{
			CategoryDistance: {Long: "Z"},
		}}, dirtLong, false},
		{"surface ignored without race surface", &Character{Aptitudes: Aptitudes{
			CategoryDistance: {Long: "A"}, CategorySurface: {Turf: "G", Dirt: "G"},
		}}, noSurface, true},
		{"only strategy data", &Character{Aptitudes: Aptitudes{
			CategoryStrategy: {"Front": "G"},
		}}, dirtLong, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Eligible(tt.c, tt.race))
		})
	}
}

func TestFilterCustomThreshold(t *testing.T) {
	c := &Character{Aptitudes: Aptitudes{CategoryDistance: {Mile: "D"}}}
	r := Race{Distance: Mile}

	assert.False(t, Filter{MinRating: RatingB}.Eligible(c, r))
	assert.True(t, Filter{MinRating: RatingD}.Eligible(c, r))
}

func TestParseBonus(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{" 7.5 ", 7.5},
		{"12%", 12},
		{"", 0},
		{"abc", 0},
		{"-5", -5},
		{".5", 0.5},
		{"1e1", 10},
		{"NaN", 0},
		{"Inf", 0},
		{"1e400", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseBonus(tt.in), 1e-9)
		})
	}
	assert.InDelta(t, 1.35, Multiplier([]string{"10", "20", "0", "", "5", "0"}), 1e-9)
	assert.Equal(t, 1.0, Multiplier(nil))
}

func TestTurnOrdering(t *testing.T) {
	a := Race{Year: 1, Month: "December", Week: "Late"}
	b := Race{Year: 2, Month: "January", Week: "Early"}
	c := Race{Year: 2, Month: "January", Week: "Late"}
	bad := Race{Year: 2, Month: "Janvier", Week: "Early"}

	assert.True(t, RaceBefore(a, b))
	assert.True(t, RaceBefore(b, c))
	assert.False(t, RaceBefore(c, b))
	assert.False(t, RaceBefore(b, b))
	assert.True(t, RaceBefore(c, bad))
	assert.Equal(t, 13, MonthIndex("Janvier"))
	assert.Equal(t, 3, WeekIndex("Mid"))
}

func TestMultiplierSumsBeforeDividing(t *testing.T) {
	bonuses := []string{"10", "20", "0.1", "", "x", "5"}
	assert.Equal(t, 1+TotalBonus(bonuses)/100, Multiplier(bonuses))
	assert.InDelta(t, 1.351, Multiplier(bonuses), 1e-12)
	assert.Equal(t, 1.0, Multiplier(nil))
}
