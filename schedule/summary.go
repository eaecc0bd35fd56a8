package schedule

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Summary is the one-line verdict shown above a schedule.
func (r Result) Summary() string {
	if r.TargetReached {
		return printer.Sprintf("Target reached! %d fans before the URA Finale meets the %d requirement.",
			r.PreFinalFans, r.TargetFans)
	}
	return printer.Sprintf("Short of target: %d more fans are needed to reach %d before the URA Finale.",
		r.Shortfall, r.TargetFans)
}

// YearName returns the career year label for 1, 2 or 3.
func YearName(year int) string {
	switch year {
	case 1:
		return "Junior"
	case 2:
		return "Classic"
	case 3:
		return "Senior"
	}
	return ""
}
