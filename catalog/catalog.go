// Package catalog holds the static race and character data the planner works
// from, and the sources it can be read from.
package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/padraicbc/umaplan/schedule"
)

// ErrNotFound is returned when a character or race lookup has no match.
var ErrNotFound = errors.New("catalog: not found")

// Source provides read access to a catalog.
type Source interface {
	Races(ctx context.Context) ([]schedule.Race, error)
	Characters(ctx context.Context) ([]schedule.Character, error)
	// Character looks a character up by ID or exact name.
	Character(ctx context.Context, key string) (*schedule.Character, error)
}

// Catalog is an in-memory snapshot of races and characters.
type Catalog struct {
	Races      []schedule.Race
	Characters []schedule.Character
}

// Race returns the race with the given ID.
func (c *Catalog) Race(id string) (schedule.Race, bool) {
	for _, r := range c.Races {
		if r.ID == id {
			return r, true
		}
	}
	return schedule.Race{}, false
}

// Character finds a character by ID, falling back to an exact name match.
func (c *Catalog) Character(key string) (*schedule.Character, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	for i := range c.Characters {
		if c.Characters[i].ID == key {
			ch := c.Characters[i]
			return &ch, true
		}
	}
	for i := range c.Characters {
		if c.Characters[i].Name == key {
			ch := c.Characters[i]
			return &ch, true
		}
	}
	return nil, false
}

// Query narrows a character listing.
type Query struct {
	// Search is a case-insensitive substring of the name.
	Search string
	// Distance must equal the preferred distance when set.
	Distance string
	// Variant is "" or "all" for any, "base" for no costume prefix, or a
	// costume prefix such as "Summer".
	Variant string
	// IncludeUnreleased also lists characters flagged as unreleased.
	IncludeUnreleased bool
}

// FilterCharacters returns the characters matching q, in catalog order.
func (c *Catalog) FilterCharacters(q Query) []schedule.Character {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]schedule.Character, 0, len(c.Characters))
	for _, ch := range c.Characters {
		if search != "" && !strings.Contains(strings.ToLower(ch.Name), search) {
			continue
		}
		if q.Distance != "" && ch.PreferredDistance != q.Distance {
			continue
		}
		switch q.Variant {
		case "", "all":
		case "base":
			if Variant(ch.Name) != "" {
				continue
			}
		default:
			if !strings.HasPrefix(ch.Name, q.Variant+" ") {
				continue
			}
		}
		if !q.IncludeUnreleased && !ch.IsReleased() {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// RaceQuery narrows a race listing. Zero values match everything.
type RaceQuery struct {
	Year     int
	Distance string
	Surface  string
}

// FilterRaces returns the races matching q, in calendar order.
func (c *Catalog) FilterRaces(q RaceQuery) []schedule.Race {
	out := make([]schedule.Race, 0, len(c.Races))
	for _, r := range c.Races {
		if q.Year != 0 && r.Year != q.Year {
			continue
		}
		if q.Distance != "" && r.Distance != q.Distance {
			continue
		}
		if q.Surface != "" && r.Surface != q.Surface {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return schedule.RaceBefore(out[i], out[j]) })
	return out
}

// Variants lists the costume prefixes present in the catalog, sorted.
func (c *Catalog) Variants() []string {
	seen := make(map[string]bool)
	var out []string
	for _, ch := range c.Characters {
		if v := Variant(ch.Name); v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
