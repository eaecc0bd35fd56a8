package schedule

import (
	"fmt"
	"sort"
)

// Defaults for the URA Finale career.
const (
	DefaultTargetFans = 240000
	DefaultMinRating  = RatingB
)

// Score multipliers applied to candidate races.
const (
	secondYearBonus = 1.5
	thirdYearBonus  = 1.3
	preferenceBonus = 1.1
)

// Config holds the tunable parameters of a Builder.
type Config struct {
	// TargetFans is the fan count to reach before the finale.
	TargetFans int
	// MinRating is the worst aptitude a race may require.
	MinRating Rating
}

// DefaultConfig returns the URA Finale settings.
func DefaultConfig() Config {
	return Config{TargetFans: DefaultTargetFans, MinRating: DefaultMinRating}
}

// Validate checks that the config can drive a Builder.
func (c Config) Validate() error {
	if c.TargetFans < 0 {
		return fmt.Errorf("schedule: target fans must not be negative, got %d", c.TargetFans)
	}
	if !c.MinRating.Valid() {
		return fmt.Errorf("schedule: invalid minimum rating %q", c.MinRating)
	}
	return nil
}

// Input is everything a schedule computation reads. None of it is modified.
type Input struct {
	// Bonuses are the support card fan bonus fields, blank or not.
	Bonuses []string
	// DistancePreference nudges scoring towards one distance category.
	DistancePreference string
	Races              []Race
	// Character is optional; without one there are no objectives and no
	// aptitude filtering.
	Character *Character
}

// Builder computes schedules. It holds no mutable state and is safe for
// concurrent use.
type Builder struct {
	cfg    Config
	filter Filter
}

// New returns a Builder for cfg.
func New(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, filter: Filter{MinRating: cfg.MinRating}}, nil
}

// Config returns the builder's configuration.
func (b *Builder) Config() Config { return b.cfg }

// Build places the character's objective races, fills the calendar greedily
// by score until the target is reached and returns the entries in calendar
// order.
func (b *Builder) Build(in Input) Result {
	multiplier := Multiplier(in.Bonuses)
	target := float64(b.cfg.TargetFans)

	entries, taken, objectiveFans := b.objectiveEntries(in, multiplier)
	remaining := target - objectiveFans

	cumulative := objectiveFans
	for _, c := range b.candidates(in, taken) {
		if cumulative >= target {
			break
		}
		gained := float64(c.race.Fans) * multiplier
		cumulative += gained
		entries = append(entries, Entry{Race: c.race, FansWithBonus: roundHalfUp(gained)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return RaceBefore(entries[i].Race, entries[j].Race)
	})

	total := roundHalfUp(cumulative)
	res := Result{
		Schedule:             entries,
		TotalFans:            total,
		ObjectiveFans:        roundHalfUp(objectiveFans),
		AdditionalFansNeeded: roundHalfUp(max(0, remaining)),
		PreFinalFans:         total,
		Multiplier:           multiplier,
		TargetFans:           b.cfg.TargetFans,
		TargetReached:        total >= b.cfg.TargetFans,
		Shortfall:            max(0, b.cfg.TargetFans-total),
	}
	if res.Schedule == nil {
		res.Schedule = []Entry{}
	}
	return res
}

func (b *Builder) objectiveEntries(in Input, multiplier float64) ([]Entry, map[string]bool, float64) {
	taken := make(map[string]bool)
	if in.Character == nil || len(in.Character.Objectives) == 0 {
		return nil, taken, 0
	}

	byID := indexRaces(in.Races)
	var (
		entries []Entry
		fans    float64
	)
	for _, obj := range in.Character.Objectives {
		if obj.RaceID == "" || taken[obj.RaceID] {
			continue
		}
		race, ok := byID[obj.RaceID]
		if !ok {
			continue
		}
		gained := float64(race.Fans) * multiplier
		fans += gained
		taken[race.ID] = true
		entries = append(entries, Entry{
			Race:            race,
			FansWithBonus:   roundHalfUp(gained),
			IsObjective:     true,
			ObjectiveText:   obj.Objective,
			ObjectiveTiming: obj.Timing,
		})
	}
	return entries, taken, fans
}

type candidate struct {
	race  Race
	score float64
}

func (b *Builder) candidates(in Input, taken map[string]bool) []candidate {
	out := make([]candidate, 0, len(in.Races))
	seen := make(map[string]bool, len(in.Races))
	for _, r := range in.Races {
		if taken[r.ID] || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		if in.Character != nil && !b.filter.Eligible(in.Character, r) {
			continue
		}
		out = append(out, candidate{race: r, score: Score(r, in.DistancePreference)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].score > out[j].score
	})
	return out
}

// Score ranks a candidate race: base fans, weighted towards the second and
// third year and towards the preferred distance.
func Score(r Race, distancePreference string) float64 {
	score := float64(r.Fans)
	switch r.Year {
	case 2:
		score *= secondYearBonus
	case 3:
		score *= thirdYearBonus
	}
	if distancePreference != "" && r.Distance == distancePreference {
		score *= preferenceBonus
	}
	return score
}
