package models

import (
	"github.com/uptrace/bun"

	"github.com/padraicbc/umaplan/schedule"
)

// Character is a trainee with aptitude ratings and base stats stored as JSON.
type Character struct {
	bun.BaseModel `bun:"table:characters,alias:ch"`

	CharacterID       string                    `bun:"character_id,pk" json:"characterID"`
	Name              string                    `bun:"name,notnull,unique" json:"name"`
	PreferredDistance string                    `bun:"preferred_distance" json:"preferredDistance"`
	Aptitudes         schedule.Aptitudes        `bun:"aptitudes,type:jsonb" json:"aptitudes,omitempty"`
	Released          *bool                     `bun:"released" json:"released,omitempty"`
	BaseStats         map[string]schedule.Stats `bun:"base_stats,type:jsonb" json:"baseStats,omitempty"`

	Objectives []*Objective `bun:"rel:has-many,join:character_id=character_id" json:"objectives,omitempty"`
}

// Objective is one career objective of a character, in position order.
type Objective struct {
	bun.BaseModel `bun:"table:objectives,alias:o"`

	ID          int     `bun:"id,pk,autoincrement" json:"id"`
	CharacterID string  `bun:"character_id,notnull,unique:objectives_no_dupes" json:"characterID"`
	Position    int     `bun:"position,notnull,unique:objectives_no_dupes" json:"position"`
	Objective   string  `bun:"objective,notnull" json:"objective"`
	Timing      *string `bun:"timing" json:"timing,omitempty"`
	RaceDetails *string `bun:"race_details" json:"raceDetails,omitempty"`
	RaceID      *string `bun:"race_id" json:"raceID,omitempty"`
}

// ToSchedule converts the row and its loaded objectives into the planner's
// character type. Objectives must already be ordered by position.
func (c *Character) ToSchedule() schedule.Character {
	out := schedule.Character{
		ID:                c.CharacterID,
		Name:              c.Name,
		PreferredDistance: c.PreferredDistance,
		Aptitudes:         c.Aptitudes,
		Released:          c.Released,
		BaseStats:         c.BaseStats,
	}
	for _, o := range c.Objectives {
		out.Objectives = append(out.Objectives, schedule.Objective{
			Objective:   o.Objective,
			Timing:      deref(o.Timing),
			RaceDetails: deref(o.RaceDetails),
			RaceID:      deref(o.RaceID),
		})
	}
	return out
}

// CharacterFromSchedule splits a planner character into its row and
// objective rows.
func CharacterFromSchedule(c schedule.Character) (Character, []Objective) {
	row := Character{
		CharacterID:       c.ID,
		Name:              c.Name,
		PreferredDistance: c.PreferredDistance,
		Aptitudes:         c.Aptitudes,
		Released:          c.Released,
		BaseStats:         c.BaseStats,
	}
	objs := make([]Objective, len(c.Objectives))
	for i, o := range c.Objectives {
		objs[i] = Objective{
			CharacterID: c.ID,
			Position:    i,
			Objective:   o.Objective,
			Timing:      ptr(o.Timing),
			RaceDetails: ptr(o.RaceDetails),
			RaceID:      ptr(o.RaceID),
		}
	}
	return row, objs
}
