package catalog

import (
	"strings"

	"github.com/padraicbc/umaplan/schedule"
)

// variantPrefixes are the costume names that prefix alternate versions of a
// character, e.g. "Summer Special Week".
var variantPrefixes = []string{
	"Fantasy",
	"Halloween",
	"Wedding",
	"Anime Collab",
	"Alt Version",
	"Grand Live",
	"Summer",
	"Deserted Island",
	"Christmas",
	"New Year",
	"Valentine",
	"Sports Festival",
	"Camping",
	"Festival",
	"Cheerleader",
	"Autumn",
	"Spring",
	"Ballroom",
	"Mecha",
	"Parade",
	"Steampunk",
	"Blaze",
	"Dream Journey",
	"Commander",
	"Full Armor",
	"Seeking the Pearl",
	"Transcend",
	"Sounds of Earth",
	"Project L'Arc",
	"The Twinkle Legends",
	"U.A.F.",
	"Great Food Festival",
	"Win Variation",
	"No Reason",
	"Warfare",
}

// Variant returns the costume prefix of a character name, or "" for a base
// character.
func Variant(name string) string {
	for _, p := range variantPrefixes {
		if strings.HasPrefix(name, p+" ") {
			return p
		}
	}
	return ""
}

// BaseName strips the costume prefix from a character name.
func BaseName(name string) string {
	if v := Variant(name); v != "" {
		return strings.TrimPrefix(name, v+" ")
	}
	return name
}

// DistanceCategory buckets a race length in meters.
func DistanceCategory(meters int) string {
	switch {
	case meters < 1400:
		return schedule.Short
	case meters < 1800:
		return schedule.Mile
	case meters < 2400:
		return schedule.Medium
	default:
		return schedule.Long
	}
}
