package linker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/umaplan/schedule"
)

func meters(n int) *int { return &n }

func testRaces() []schedule.Race {
	return []schedule.Race{
		{ID: "tokyo-yushun-y2", Name: "Tokyo Yushun (Japanese Derby)", Year: 2, Month: "May", Week: "Late", Meters: meters(2400), Surface: schedule.Turf},
		{ID: "arima-kinen-y2", Name: "Arima Kinen", Year: 2, Month: "December", Week: "Late", Meters: meters(2500), Surface: schedule.Turf},
		{ID: "arima-kinen-y3", Name: "Arima Kinen", Year: 3, Month: "December", Week: "Late", Meters: meters(2500), Surface: schedule.Turf},
		{ID: "mile-cs-y2", Name: "Mile Championship", Year: 2, Month: "November", Week: "Late", Meters: meters(1600), Surface: schedule.Turf},
		{ID: "mile-cs-dirt", Name: "Mile Championship", Year: 2, Month: "November", Week: "Late", Meters: meters(1600), Surface: schedule.Dirt},
	}
}

func TestRaceName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Place 3rd or better in the Satsuki Sho", "Satsuki Sho"},
		{"Win at the Arima Kinen (G1)", "Arima Kinen"},
		{"Participate in the Hopeful Stakes", "Hopeful Stakes"},
		{"Race in the Japan Cup", "Japan Cup"},
		{"Finish in top 5 in the Kikuka Sho", "Kikuka Sho"},
		{"Get 3000 fans", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RaceName(tt.in))
		})
	}
}

func TestParseTiming(t *testing.T) {
	assert.Equal(t, Timing{Year: 2, Month: "May", Week: "Late"}, ParseTiming("Classic Year Late May"))
	assert.Equal(t, Timing{Year: 1, Month: "December", Week: "Early"}, ParseTiming("Junior Year Early Dec (December)"))
	assert.Equal(t, Timing{Week: "Late"}, ParseTiming(""))
	assert.Equal(t, 2400, Meters("Tokyo Turf 2400m (Long) Left"))
	assert.Equal(t, 0, Meters("Tokyo"))
	assert.Equal(t, schedule.Dirt, Surface("Oi Dirt 2000m"))
	assert.Equal(t, "", Surface("2000m"))
}

func TestMatch(t *testing.T) {
	l := New(testRaces())

	tests := []struct {
		name   string
		obj    schedule.Objective
		wantID string
		wantOK bool
	}{
		{"parenthesised alias", schedule.Objective{Objective: "Place 1st in the Japanese Derby"}, "tokyo-yushun-y2", true},
		{"bare name", schedule.Objective{Objective: "Win the Tokyo Yushun"}, "", false},
		{"bare name with in", schedule.Objective{Objective: "Place 1st in the Tokyo Yushun"}, "tokyo-yushun-y2", true},
		{"year narrows", schedule.Objective{Objective: "Place 3rd or better in the Arima Kinen", Timing: "Senior Year Late December"}, "arima-kinen-y3", true},
		{"no timing keeps first", schedule.Objective{Objective: "Place 3rd or better in the Arima Kinen"}, "arima-kinen-y2", true},
		{"surface narrows", schedule.Objective{Objective: "Win at the Mile Championship", Timing: "Classic Year Late November", RaceDetails: "Kyoto Dirt 1600m"}, "mile-cs-dirt", true},
		{"unknown race", schedule.Objective{Objective: "Place 1st in the Moon Cup"}, "", false},
		{"no race in text", schedule.Objective{Objective: "Reach 10000 fans"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := l.Match(tt.obj)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, r.ID)
		})
	}
}

func TestLink(t *testing.T) {
	l := New(testRaces())
	chars := []schedule.Character{
		{Name: "Symboli Rudolf", Objectives: []schedule.Objective{
			{Objective: "Place 1st in the Japanese Derby", RaceID: "stale"},
			{Objective: "Place 1st in the Moon Cup", RaceID: "stale"},
		}},
		{Name: "No Objectives"},
	}

	linked, rep := l.Link(chars)

	require.Len(t, linked, 2)
	assert.Equal(t, "tokyo-yushun-y2", linked[0].Objectives[0].RaceID)
	assert.Equal(t, "", linked[0].Objectives[1].RaceID)
	assert.Equal(t, 1, rep.Linked)
	assert.Equal(t, []Unlinked{{Character: "Symboli Rudolf", Objective: "Place 1st in the Moon Cup"}}, rep.Unlinked)
	assert.Equal(t, "stale", chars[0].Objectives[0].RaceID, "input must not change")
}
