// Package schedule builds race-entry schedules for a trainee: objective races
// first, then the highest scoring eligible races until the fan target is met.
package schedule

// Distance categories.
const (
	Short  = "Short"
	Mile   = "Mile"
	Medium = "Medium"
	Long   = "Long"
)

// Surfaces.
const (
	Turf = "Turf"
	Dirt = "Dirt"
)

// Aptitude categories.
const (
	CategoryDistance = "Distance"
	CategorySurface  = "Surface"
	CategoryStrategy = "Strategy"
)

// Race is a single entry of the race catalog.
type Race struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Year     int      `json:"year"`
	Month    string   `json:"month"`
	Week     string   `json:"week"`
	Distance string   `json:"distance"`
	Meters   *int     `json:"meters,omitempty"`
	Surface  string   `json:"surface,omitempty"`
	Fans     int      `json:"fans"`
	Grade    string   `json:"grade,omitempty"`
	Image    string   `json:"image,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// Aptitudes maps a category (Distance, Surface, Strategy) to per-type ratings.
type Aptitudes map[string]map[string]Rating

// Objective is a mandatory career race. RaceID is empty when the objective
// could not be linked to a catalog race.
type Objective struct {
	Objective   string `json:"objective"`
	Timing      string `json:"timing,omitempty"`
	RaceDetails string `json:"raceDetails,omitempty"`
	RaceID      string `json:"raceId,omitempty"`
}

// Stats are the five base stats at a given star level.
type Stats struct {
	Speed   int `json:"Speed"`
	Stamina int `json:"Stamina"`
	Power   int `json:"Power"`
	Guts    int `json:"Guts"`
	Wit     int `json:"Wit"`
}

// Character is a trainee.
type Character struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	PreferredDistance string           `json:"preferredDistance,omitempty"`
	Aptitudes         Aptitudes        `json:"aptitudes,omitempty"`
	Objectives        []Objective      `json:"objectives,omitempty"`
	Released          *bool            `json:"released,omitempty"`
	BaseStats         map[string]Stats `json:"baseStats,omitempty"`
}

// IsReleased reports whether the character is playable. Characters without
// release data are assumed released.
func (c *Character) IsReleased() bool {
	return c.Released == nil || *c.Released
}

// Entry is a race placed on the schedule.
type Entry struct {
	Race
	FansWithBonus   int    `json:"fansWithBonus"`
	IsObjective     bool   `json:"isObjective"`
	ObjectiveText   string `json:"objectiveText,omitempty"`
	ObjectiveTiming string `json:"objectiveTiming,omitempty"`
}

// Result is the outcome of a schedule computation.
// TotalFans and PreFinalFans carry the same value.
type Result struct {
	Schedule             []Entry `json:"schedule"`
	TotalFans            int     `json:"totalFans"`
	ObjectiveFans        int     `json:"objectiveFans"`
	AdditionalFansNeeded int     `json:"additionalFansNeeded"`
	PreFinalFans         int     `json:"preFinalFans"`

	Multiplier    float64 `json:"multiplier"`
	TargetFans    int     `json:"targetFans"`
	TargetReached bool    `json:"targetReached"`
	Shortfall     int     `json:"shortfall"`
}
