package handicap

import (
	"fmt"
	"strings"
)

// NeutralSlope is the slope rating of a course of standard difficulty.
const NeutralSlope = 113.0

// Gender selects which set of tees a player plays from.
type Gender string

// Genders as stored on the roster and on each tee. Anything else has no tee.
const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Valid reports whether g is one of the two tee genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Tee carries the rating data of one set of tee boxes.
type Tee struct {
	Name         string
	Gender       Gender
	SlopeRating  int
	CourseRating float64
	Par          int
}

// CourseHandicap returns the course handicap for hi played from t.
// A nil tee or a nil index yields nil.
func (t *Tee) CourseHandicap(hi *float64) *float64 {
	if t == nil {
		return ComputeCH(hi, nil, nil, nil)
	}
	slope := float64(t.SlopeRating)
	par := float64(t.Par)
	rating := t.CourseRating
	return ComputeCH(hi, &slope, &rating, &par)
}

// ComputeCH converts a handicap index into a course handicap:
//
//	CH = (slope / 113) * hi + (rating - par)
//
// The result is not rounded. If any input is missing the result is nil;
// a missing input is the normal state before a player or tee is chosen.
func ComputeCH(hi, slope, rating, par *float64) *float64 {
	if hi == nil || slope == nil || rating == nil || par == nil {
		return nil
	}
	ch := (*slope/NeutralSlope)*(*hi) + (*rating - *par)
	return &ch
}

// ExplainCH shows the course handicap working for p on tee t, one step per line.
// The value printed is the same unrounded value ComputeCH returns.
func ExplainCH(p Player, t *Tee) string {
	return strings.Join(explainCH(p, t), "\n")
}

// explainCH builds the working as separate lines so NewRow can start a row's
// trace with them and the allocator can append the playing handicap steps.
func explainCH(p Player, t *Tee) []string {
	lines := []string{fmt.Sprintf("Course handicap for %s", displayName(p.Name))}
	switch {
	case t == nil:
		return append(lines, "No tee selected, course handicap unavailable")
	case p.HandicapIndex == nil:
		return append(lines, "No handicap index, course handicap unavailable")
	}

	ch := t.CourseHandicap(p.HandicapIndex)
	return append(lines,
		fmt.Sprintf("Tee: %s (slope %d, rating %s, par %d)", t.Name, t.SlopeRating, trim(t.CourseRating), t.Par),
		"CH = (slope / 113) x HI + (rating - par)",
		fmt.Sprintf("CH = (%d / 113) x %s + (%s - %d)", t.SlopeRating, trim(*p.HandicapIndex), trim(t.CourseRating), t.Par),
		fmt.Sprintf("CH = %s", dp4(*ch)),
	)
}

// displayName keeps the trace readable for a row whose name is still blank.
func displayName(name string) string {
	if name == "" {
		return "unnamed player"
	}
	return name
}
