package schedule

var monthOrder = map[string]int{
	"January":   1,
	"February":  2,
	"March":     3,
	"April":     4,
	"May":       5,
	"June":      6,
	"July":      7,
	"August":    8,
	"September": 9,
	"October":   10,
	"November":  11,
	"December":  12,
}

var weekOrder = map[string]int{
	"Early": 1,
	"Late":  2,
}

// Months lists the canonical month names in calendar order.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex returns 1..12 for a canonical month name and 13 otherwise.
func MonthIndex(month string) int {
	if i, ok := monthOrder[month]; ok {
		return i
	}
	return len(monthOrder) + 1
}

// WeekIndex returns 1 for Early, 2 for Late and 3 otherwise.
func WeekIndex(week string) int {
	if i, ok := weekOrder[week]; ok {
		return i
	}
	return len(weekOrder) + 1
}

// Turn is the position of a race on the career calendar.
type Turn struct {
	Year  int
	Month int
	Week  int
}

// TurnOf returns the calendar position of r.
func TurnOf(r Race) Turn {
	return Turn{Year: r.Year, Month: MonthIndex(r.Month), Week: WeekIndex(r.Week)}
}

// Before reports whether t comes strictly earlier than o.
func (t Turn) Before(o Turn) bool {
	if t.Year != o.Year {
		return t.Year < o.Year
	}
	if t.Month != o.Month {
		return t.Month < o.Month
	}
	return t.Week < o.Week
}

// RaceBefore orders races chronologically.
func RaceBefore(a, b Race) bool {
	return TurnOf(a).Before(TurnOf(b))
}
