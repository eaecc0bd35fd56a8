package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	assert.Equal(t, "Target reached! 250,000 fans before the URA Finale meets the 240,000 requirement.",
		Result{TargetReached: true, PreFinalFans: 250000, TargetFans: 240000}.Summary())
	assert.Equal(t, "Short of target: 1,234 more fans are needed to reach 240,000 before the URA Finale.",
		Result{Shortfall: 1234, TargetFans: 240000}.Summary())
}

func TestYearName(t *testing.T) {
	assert.Equal(t, "Junior", YearName(1))
	assert.Equal(t, "Classic", YearName(2))
	assert.Equal(t, "Senior", YearName(3))
	assert.Equal(t, "", YearName(4))
}
