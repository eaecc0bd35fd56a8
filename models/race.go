package models

import (
	"github.com/uptrace/bun"

	"github.com/padraicbc/umaplan/schedule"
)

// Race is a catalog race in the URA career calendar.
type Race struct {
	bun.BaseModel `bun:"table:races,alias:rc"`

	RaceID   string   `bun:"race_id,pk" json:"raceID"`
	Position int      `bun:"position,notnull,default:0" json:"position"`
	Name     string   `bun:"name,notnull" json:"name"`
	Year     int      `bun:"year,notnull" json:"year"`
	Month    string   `bun:"month,notnull" json:"month"`
	Week     string   `bun:"week,notnull" json:"week"`
	Distance string   `bun:"distance,notnull" json:"distance"`
	Meters   *int     `bun:"meters" json:"meters,omitempty"`
	Surface  *string  `bun:"surface" json:"surface,omitempty"`
	Fans     int      `bun:"fans,notnull,default:0" json:"fans"`
	Grade    *string  `bun:"grade" json:"grade,omitempty"`
	Image    *string  `bun:"image" json:"image,omitempty"`
	Notes    []string `bun:"notes,type:jsonb" json:"notes,omitempty"`
}

// ToSchedule converts the row into the planner's race type.
func (r *Race) ToSchedule() schedule.Race {
	return schedule.Race{
		ID:       r.RaceID,
		Name:     r.Name,
		Year:     r.Year,
		Month:    r.Month,
		Week:     r.Week,
		Distance: r.Distance,
		Meters:   r.Meters,
		Surface:  deref(r.Surface),
		Fans:     r.Fans,
		Grade:    deref(r.Grade),
		Image:    deref(r.Image),
		Notes:    r.Notes,
	}
}

// RaceFromSchedule builds a row from a planner race.
func RaceFromSchedule(r schedule.Race) Race {
	return Race{
		RaceID:   r.ID,
		Name:     r.Name,
		Year:     r.Year,
		Month:    r.Month,
		Week:     r.Week,
		Distance: r.Distance,
		Meters:   r.Meters,
		Surface:  ptr(r.Surface),
		Fans:     r.Fans,
		Grade:    ptr(r.Grade),
		Image:    ptr(r.Image),
		Notes:    r.Notes,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
