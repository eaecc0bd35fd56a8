package schedule

// Filter decides whether a race suits a character's aptitudes.
type Filter struct {
	MinRating Rating
}

// Eligible reports whether c may be scheduled for r. Characters without any
// aptitude data are unrestricted, and a missing rating for the race's
// distance or surface does not exclude it.
func (f Filter) Eligible(c *Character, r Race) bool {
	if c == nil || len(c.Aptitudes) == 0 {
		return true
	}
	if !f.passes(c.Aptitudes[CategoryDistance], r.Distance) {
		return false
	}
	if r.Surface != "" && !f.passes(c.Aptitudes[CategorySurface], r.Surface) {
		return false
	}
	return true
}

func (f Filter) passes(ratings map[string]Rating, kind string) bool {
	rating, ok := ratings[kind]
	if !ok || rating == "" {
		return true
	}
	return rating.AtLeast(f.MinRating)
}
