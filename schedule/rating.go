package schedule

import "strings"

// Rating is an aptitude letter grade, S best and G worst.
type Rating string

// Known ratings in rank order.
const (
	RatingS Rating = "S"
	RatingA Rating = "A"
	RatingB Rating = "B"
	RatingC Rating = "C"
	RatingD Rating = "D"
	RatingE Rating = "E"
	RatingF Rating = "F"
	RatingG Rating = "G"
)

var ratingRanks = map[Rating]int{
	RatingS: 0,
	RatingA: 1,
	RatingB: 2,
	RatingC: 3,
	RatingD: 4,
	RatingE: 5,
	RatingF: 6,
	RatingG: 7,
}

// unknownRank sits below G so unmapped letters never pass a threshold.
const unknownRank = 8

// Rank returns the position of r on the S..G scale.
func (r Rating) Rank() int {
	if rank, ok := ratingRanks[r]; ok {
		return rank
	}
	return unknownRank
}

// Valid reports whether r is one of S..G.
func (r Rating) Valid() bool {
	_, ok := ratingRanks[r]
	return ok
}

// AtLeast reports whether r is as good as min or better.
func (r Rating) AtLeast(min Rating) bool {
	return r.Rank() <= min.Rank()
}

// ParseRating normalises a user supplied letter. Blank input yields "".
func ParseRating(s string) Rating {
	return Rating(strings.ToUpper(strings.TrimSpace(s)))
}
