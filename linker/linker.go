// Package linker resolves free-text career objectives to catalog races. It is
// run when a catalog is imported; the scheduler only reads the resulting
// race IDs.
package linker

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/padraicbc/umaplan/schedule"
)

var (
	parenText   = regexp.MustCompile(`\([^)]+\)`)
	parenInner  = regexp.MustCompile(`\(([^)]+)\)`)
	metersRe    = regexp.MustCompile(`(\d+)m`)
	racePattern = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:place|win|finish).*?(?:in|at) the ([^(]+?)(?:\(|$)`),
		regexp.MustCompile(`(?i)participate in the ([^(]+?)(?:\(|$)`),
		regexp.MustCompile(`(?i)(?:race|run) (?:in|at) the ([^(]+?)(?:\(|$)`),
	}
)

// Linker matches objectives against an indexed race list.
type Linker struct {
	byName map[string][]schedule.Race
}

// New indexes races under their full name, their name without any
// parenthesised part and the parenthesised part alone, all lower-cased.
func New(races []schedule.Race) *Linker {
	l := &Linker{byName: make(map[string][]schedule.Race)}
	for _, r := range races {
		for _, name := range nameVariants(r.Name) {
			l.byName[name] = append(l.byName[name], r)
		}
	}
	return l
}

func nameVariants(name string) []string {
	full := strings.ToLower(strings.TrimSpace(name))
	names := []string{full}
	if bare := strings.TrimSpace(parenText.ReplaceAllString(full, "")); bare != full {
		names = append(names, bare)
	}
	if m := parenInner.FindStringSubmatch(full); m != nil {
		names = append(names, strings.TrimSpace(m[1]))
	}
	return names
}

// RaceName extracts the race name from objective text such as
// "Place 3rd or better in the Satsuki Sho". It returns "" when no known
// phrasing matches.
func RaceName(objective string) string {
	for _, p := range racePattern {
		if m := p.FindStringSubmatch(objective); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// Timing is the calendar slot parsed from an objective's timing hint.
type Timing struct {
	Year  int
	Month string
	Week  string
}

// ParseTiming reads hints like "Classic Year Late May". Week defaults to
// Late when "early" is absent.
func ParseTiming(timing string) Timing {
	var t Timing
	switch {
	case strings.Contains(timing, "Junior"):
		t.Year = 1
	case strings.Contains(timing, "Classic"):
		t.Year = 2
	case strings.Contains(timing, "Senior"):
		t.Year = 3
	}
	lower := strings.ToLower(timing)
	for _, m := range schedule.Months {
		if strings.Contains(lower, strings.ToLower(m)) {
			t.Month = m
			break
		}
	}
	t.Week = "Late"
	if strings.Contains(lower, "early") {
		t.Week = "Early"
	}
	return t
}

// Meters extracts a distance like "2400m" from race details.
func Meters(details string) int {
	m := metersRe.FindStringSubmatch(details)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// Surface extracts Turf or Dirt from race details.
func Surface(details string) string {
	lower := strings.ToLower(details)
	switch {
	case strings.Contains(lower, "turf"):
		return schedule.Turf
	case strings.Contains(lower, "dirt"):
		return schedule.Dirt
	}
	return ""
}

// Match returns the catalog race an objective refers to. When several races
// share the name, the timing, meters and surface hints narrow the choice,
// each applied only if it leaves at least one candidate.
func (l *Linker) Match(obj schedule.Objective) (schedule.Race, bool) {
	name := RaceName(obj.Objective)
	if name == "" {
		return schedule.Race{}, false
	}

	var candidates []schedule.Race
	for _, n := range nameVariants(name) {
		if rs, ok := l.byName[n]; ok {
			candidates = rs
			break
		}
	}
	switch len(candidates) {
	case 0:
		return schedule.Race{}, false
	case 1:
		return candidates[0], true
	}

	timing := ParseTiming(obj.Timing)
	meters := Meters(obj.RaceDetails)
	surface := Surface(obj.RaceDetails)

	filtered := candidates
	filtered = narrow(filtered, timing.Year != 0, func(r schedule.Race) bool { return r.Year == timing.Year })
	filtered = narrow(filtered, timing.Month != "", func(r schedule.Race) bool { return r.Month == timing.Month })
	filtered = narrow(filtered, timing.Week != "", func(r schedule.Race) bool { return r.Week == timing.Week })
	filtered = narrow(filtered, meters != 0, func(r schedule.Race) bool { return r.Meters != nil && *r.Meters == meters })
	filtered = narrow(filtered, surface != "", func(r schedule.Race) bool { return r.Surface == surface })
	return filtered[0], true
}

func narrow(races []schedule.Race, apply bool, keep func(schedule.Race) bool) []schedule.Race {
	if !apply {
		return races
	}
	var out []schedule.Race
	for _, r := range races {
		if keep(r) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return races
	}
	return out
}

// Unlinked names an objective that matched no race.
type Unlinked struct {
	Character string `json:"character"`
	Objective string `json:"objective"`
}

// Report summarises a Link run.
type Report struct {
	Linked   int        `json:"linked"`
	Unlinked []Unlinked `json:"unlinked"`
}

// Link returns copies of chars with every objective's RaceID set to its
// match, or cleared when nothing matches. The input is not modified.
func (l *Linker) Link(chars []schedule.Character) ([]schedule.Character, Report) {
	var rep Report
	out := make([]schedule.Character, len(chars))
	for i, ch := range chars {
		if len(ch.Objectives) > 0 {
			objs := make([]schedule.Objective, len(ch.Objectives))
			for j, obj := range ch.Objectives {
				if r, ok := l.Match(obj); ok {
					obj.RaceID = r.ID
					rep.Linked++
				} else {
					obj.RaceID = ""
					rep.Unlinked = append(rep.Unlinked, Unlinked{Character: ch.Name, Objective: obj.Objective})
				}
				objs[j] = obj
			}
			ch.Objectives = objs
		}
		out[i] = ch
	}
	return out, rep
}
