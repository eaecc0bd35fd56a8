package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/umaplan/schedule"
)

const racesJSON = `[
  {"id":"tokyo-yushun-y2","name":"Tokyo Yushun (Japanese Derby)","year":2,"month":"May","week":"Late","fans":30000,"distance":"Long","meters":2400,"surface":"Turf"},
  {"id":"hopeful-stakes-y1","name":"Hopeful Stakes","year":1,"month":"December","week":"Late","fans":30000,"meters":2000,"surface":"Turf"},
  {"id":"february-stakes-y3","name":"February Stakes","year":3,"month":"February","week":"Late","fans":30000,"distance":"Mile","meters":1600,"surface":"Dirt"}
]`

const charactersJSON = `[
  {"id":"special-week","name":"Special Week","preferredDistance":"Medium",
   "aptitudes":{"Distance":{"Mile":"C","Medium":"A","Long":"A"},"Surface":{"Turf":"A","Dirt":"G"}},
   "objectives":[{"objective":"Place 1st in the Tokyo Yushun","timing":"Classic Year Late May","raceId":"tokyo-yushun-y2"}]},
  {"id":"summer-special-week","name":"Summer Special Week","preferredDistance":"Medium"},
  {"id":"haru-urara","name":"Haru Urara","preferredDistance":"Short","released":false}
]`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	races := filepath.Join(dir, "races.json")
	chars := filepath.Join(dir, "characters.json")
	require.NoError(t, os.WriteFile(races, []byte(racesJSON), 0o644))
	require.NoError(t, os.WriteFile(chars, []byte(charactersJSON), 0o644))
	return races, chars
}

func TestLoadFiles(t *testing.T) {
	cat, err := LoadFiles(writeFixtures(t))
	require.NoError(t, err)

	require.Len(t, cat.Races, 3)
	require.Len(t, cat.Characters, 3)

	hopeful, ok := cat.Race("hopeful-stakes-y1")
	require.True(t, ok)
	assert.Equal(t, schedule.Medium, hopeful.Distance, "distance filled from meters")

	sw, ok := cat.Character("Special Week")
	require.True(t, ok)
	assert.Equal(t, schedule.RatingA, sw.Aptitudes[schedule.CategoryDistance][schedule.Long])
	assert.Equal(t, "tokyo-yushun-y2", sw.Objectives[0].RaceID)

	_, err = LoadFiles("missing.json", "missing.json")
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeRaces(strings.NewReader("{"))
	assert.Error(t, err)
	_, err = DecodeCharacters(strings.NewReader("nope"))
	assert.Error(t, err)
}

func TestFilterCharacters(t *testing.T) {
	cat, err := LoadFiles(writeFixtures(t))
	require.NoError(t, err)

	names := func(q Query) []string {
		var out []string
		for _, c := range cat.FilterCharacters(q) {
			out = append(out, c.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Special Week", "Summer Special Week"}, names(Query{}))
	assert.Equal(t, []string{"Special Week", "Summer Special Week", "Haru Urara"}, names(Query{IncludeUnreleased: true}))
	assert.Equal(t, []string{"Special Week", "Summer Special Week"}, names(Query{Search: "special"}))
	assert.Equal(t, []string{"Special Week"}, names(Query{Variant: "base"}))
	assert.Equal(t, []string{"Summer Special Week"}, names(Query{Variant: "Summer"}))
	assert.Equal(t, []string{"Haru Urara"}, names(Query{Distance: "Short", IncludeUnreleased: true}))
	assert.Empty(t, names(Query{Distance: "Short"}))
	assert.Equal(t, []string{"Summer"}, cat.Variants())
}

func TestFilterRaces(t *testing.T) {
	cat, err := LoadFiles(writeFixtures(t))
	require.NoError(t, err)

	all := cat.FilterRaces(RaceQuery{})
	require.Len(t, all, 3)
	assert.Equal(t, "hopeful-stakes-y1", all[0].ID)
	assert.Equal(t, "february-stakes-y3", all[2].ID)

	assert.Len(t, cat.FilterRaces(RaceQuery{Surface: schedule.Dirt}), 1)
	assert.Len(t, cat.FilterRaces(RaceQuery{Year: 2, Distance: schedule.Long}), 1)
	assert.Empty(t, cat.FilterRaces(RaceQuery{Year: 3, Surface: schedule.Turf}))
}

func TestMemorySource(t *testing.T) {
	cat, err := LoadFiles(writeFixtures(t))
	require.NoError(t, err)
	src := NewMemorySource(cat)
	ctx := context.Background()

	ch, err := src.Character(ctx, "haru-urara")
	require.NoError(t, err)
	assert.Equal(t, "Haru Urara", ch.Name)

	_, err = src.Character(ctx, "Gold Ship")
	assert.ErrorIs(t, err, ErrNotFound)

	races, err := src.Races(ctx)
	require.NoError(t, err)
	assert.Len(t, races, 3)
}

func TestVariantHelpers(t *testing.T) {
	assert.Equal(t, "Summer", Variant("Summer Special Week"))
	assert.Equal(t, "Great Food Festival", Variant("Great Food Festival Oguri Cap"))
	assert.Equal(t, "", Variant("Summerland"))
	assert.Equal(t, "Special Week", BaseName("Summer Special Week"))
	assert.Equal(t, "Gold Ship", BaseName("Gold Ship"))

	assert.Equal(t, schedule.Short, DistanceCategory(1200))
	assert.Equal(t, schedule.Mile, DistanceCategory(1400))
	assert.Equal(t, schedule.Medium, DistanceCategory(2000))
	assert.Equal(t, schedule.Long, DistanceCategory(2400))
}
