package schedule

import "sort"

// HasAptitude reports whether c holds a known rating of at least min for the
// given category and type. Missing data counts as not having the aptitude.
func HasAptitude(c *Character, category, kind string, min Rating) bool {
	if c == nil || c.Aptitudes == nil {
		return false
	}
	rating, ok := c.Aptitudes[category][kind]
	if !ok || !rating.Valid() {
		return false
	}
	return rating.AtLeast(min)
}

// Aptitude is a single type/rating pair.
type Aptitude struct {
	Type   string `json:"type"`
	Rating Rating `json:"rating"`
}

// BestAptitude returns the best known rating within a category. Ties go to
// the alphabetically first type.
func BestAptitude(c *Character, category string) (Aptitude, bool) {
	if c == nil || c.Aptitudes == nil {
		return Aptitude{}, false
	}
	ratings := c.Aptitudes[category]
	kinds := make([]string, 0, len(ratings))
	for k := range ratings {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	var (
		best  Aptitude
		found bool
	)
	for _, k := range kinds {
		r := ratings[k]
		if !r.Valid() {
			continue
		}
		if !found || r.Rank() < best.Rating.Rank() {
			best = Aptitude{Type: k, Rating: r}
			found = true
		}
	}
	return best, found
}

// RatedDistances returns the distance types rated exactly r, sorted.
func RatedDistances(c *Character, r Rating) []string {
	if c == nil || c.Aptitudes == nil {
		return nil
	}
	var out []string
	for kind, rating := range c.Aptitudes[CategoryDistance] {
		if rating == r {
			out = append(out, kind)
		}
	}
	sort.Strings(out)
	return out
}

// RecommendedRaces keeps the races for which c has a known rating of at least
// min on both surface and distance. Unlike Filter, missing ratings exclude.
func RecommendedRaces(c *Character, races []Race, min Rating) []Race {
	if c == nil || c.Aptitudes == nil {
		return races
	}
	var out []Race
	for _, r := range races {
		if r.Surface != "" && !HasAptitude(c, CategorySurface, r.Surface, min) {
			continue
		}
		if r.Distance != "" && !HasAptitude(c, CategoryDistance, r.Distance, min) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ObjectiveRace is an objective resolved against the catalog.
type ObjectiveRace struct {
	Race
	ObjectiveText   string `json:"objectiveText"`
	ObjectiveTiming string `json:"objectiveTiming,omitempty"`
}

// ObjectiveRaces resolves the character's linked objectives, in objective order.
func ObjectiveRaces(c *Character, races []Race) []ObjectiveRace {
	if c == nil {
		return nil
	}
	byID := indexRaces(races)
	var out []ObjectiveRace
	for _, obj := range c.Objectives {
		if obj.RaceID == "" {
			continue
		}
		if r, ok := byID[obj.RaceID]; ok {
			out = append(out, ObjectiveRace{Race: r, ObjectiveText: obj.Objective, ObjectiveTiming: obj.Timing})
		}
	}
	return out
}

// Progress summarises how far through its objectives a career is.
type Progress struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

// CareerProgress counts completed objectives given their indices.
func CareerProgress(c *Character, completed []int) Progress {
	if c == nil || len(c.Objectives) == 0 {
		return Progress{}
	}
	total := len(c.Objectives)
	done := 0
	for _, i := range completedSet(completed) {
		if i >= 0 && i < total {
			done++
		}
	}
	return Progress{
		Total:      total,
		Completed:  done,
		Percentage: roundHalfUp(float64(done) / float64(total) * 100),
		Remaining:  total - done,
	}
}

// NextObjective is the first objective not yet completed.
type NextObjective struct {
	Objective
	Index int   `json:"index"`
	Race  *Race `json:"race,omitempty"`
}

// FirstIncomplete returns the earliest objective whose index is not in
// completed, with its race when it resolves against races.
func FirstIncomplete(c *Character, completed []int, races []Race) (NextObjective, bool) {
	if c == nil {
		return NextObjective{}, false
	}
	done := make(map[int]bool, len(completed))
	for _, i := range completed {
		done[i] = true
	}
	byID := indexRaces(races)
	for i, obj := range c.Objectives {
		if done[i] {
			continue
		}
		next := NextObjective{Objective: obj, Index: i}
		if r, ok := byID[obj.RaceID]; ok && obj.RaceID != "" {
			next.Race = &r
		}
		return next, true
	}
	return NextObjective{}, false
}

// TotalStats sums the base stats at the given star level.
func TotalStats(c *Character, level string) (int, bool) {
	if c == nil {
		return 0, false
	}
	s, ok := c.BaseStats[level]
	if !ok {
		return 0, false
	}
	return s.Speed + s.Stamina + s.Power + s.Guts + s.Wit, true
}

// WithDistanceOverrides returns a copy of c whose distance ratings are
// replaced by the non-blank overrides. c itself is left untouched.
func WithDistanceOverrides(c *Character, overrides map[string]string) *Character {
	if c == nil {
		return nil
	}
	cp := *c
	var changed bool
	apt := make(Aptitudes, len(c.Aptitudes)+1)
	for cat, ratings := range c.Aptitudes {
		inner := make(map[string]Rating, len(ratings))
		for k, v := range ratings {
			inner[k] = v
		}
		apt[cat] = inner
	}
	for kind, letter := range overrides {
		r := ParseRating(letter)
		if r == "" {
			continue
		}
		if apt[CategoryDistance] == nil {
			apt[CategoryDistance] = make(map[string]Rating)
		}
		apt[CategoryDistance][kind] = r
		changed = true
	}
	if !changed {
		return &cp
	}
	cp.Aptitudes = apt
	return &cp
}

func indexRaces(races []Race) map[string]Race {
	byID := make(map[string]Race, len(races))
	for _, r := range races {
		if _, ok := byID[r.ID]; !ok {
			byID[r.ID] = r
		}
	}
	return byID
}

func completedSet(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}
